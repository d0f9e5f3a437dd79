package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/pwcred/internal/config"
	"github.com/dmitrijs2005/pwcred/internal/logging"
	"github.com/dmitrijs2005/pwcred/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useStdinPipe(t *testing.T) {
	t.Helper()
	orig := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = orig })
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	useStdinPipe(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Workers = 2

	var out, errOut bytes.Buffer
	return newApp(cfg, logging.Nop(), strings.NewReader(input), &out, &errOut), &out, &errOut
}

func writeRecord(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "user.json")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestRun_Usage(t *testing.T) {
	app, out, errOut := newTestApp(t, "")

	assert.Equal(t, ExitError, app.Run(context.Background(), nil))
	assert.Contains(t, errOut.String(), "usage:")

	assert.Equal(t, ExitOK, app.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, errOut := newTestApp(t, "")

	assert.Equal(t, ExitError, app.Run(context.Background(), []string{"frobnicate"}))
	assert.Contains(t, errOut.String(), "Unknown command: frobnicate")
}

func TestCheck(t *testing.T) {
	tests := []struct {
		password string
		code     int
		verdict  string
		missing  string
	}{
		{"Passw1rd\n", ExitOK, "strong", "missing: special"},
		{"Password\n", ExitRejected, "weak", "missing: digit, special"},
		{"aB1!\n", ExitRejected, "weak", "missing: lowercase, uppercase, digit, special"},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.password), func(t *testing.T) {
			app, out, _ := newTestApp(t, tt.password)

			assert.Equal(t, tt.code, app.Run(context.Background(), []string{"check"}))
			assert.Contains(t, out.String(), tt.verdict)
			assert.Contains(t, out.String(), tt.missing)
		})
	}
}

func TestHash_PrintsRecord(t *testing.T) {
	app, out, _ := newTestApp(t, "Passw1rd\n")

	require.Equal(t, ExitOK, app.Run(context.Background(), []string{"hash", "-user", "alice"}))

	var u models.User
	require.NoError(t, json.Unmarshal(out.Bytes(), &u))
	assert.Equal(t, "alice", u.UserName)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, u.Hash)
	assert.NotEmpty(t, u.Salt)
}

func TestHash_LegacyToFile(t *testing.T) {
	app, out, _ := newTestApp(t, "Pass!23\n")
	path := filepath.Join(t.TempDir(), "legacy.json")

	require.Equal(t, ExitOK, app.Run(context.Background(), []string{"hash", "-legacy", "-o", path}))
	assert.Empty(t, out.String())

	var raw map[string]any
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Contains(t, raw, "pass")
	assert.Contains(t, raw, "salt")
	assert.NotContains(t, raw, "hash")
}

func TestHash_WeakPassword(t *testing.T) {
	app, out, errOut := newTestApp(t, "password\n")

	assert.Equal(t, ExitRejected, app.Run(context.Background(), []string{"hash"}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "minimum requirements")
}

func TestHash_EmptyPassword(t *testing.T) {
	app, _, errOut := newTestApp(t, "\n")

	assert.Equal(t, ExitError, app.Run(context.Background(), []string{"hash"}))
	assert.Contains(t, errOut.String(), "invalid input")
}

func TestPassword_EmptyStdinIsInvalid(t *testing.T) {
	for _, cmd := range []string{"check", "hash"} {
		t.Run(cmd, func(t *testing.T) {
			app, out, errOut := newTestApp(t, "")

			assert.Equal(t, ExitError, app.Run(context.Background(), []string{cmd}))
			assert.Empty(t, out.String())
			assert.Contains(t, errOut.String(), "invalid input")
		})
	}
}

func TestVerify(t *testing.T) {
	hashApp, out, _ := newTestApp(t, "Passw1rd\n")
	require.Equal(t, ExitOK, hashApp.Run(context.Background(), []string{"hash", "-user", "bob"}))
	path := filepath.Join(t.TempDir(), "bob.json")
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0o600))

	t.Run("match", func(t *testing.T) {
		app, out, _ := newTestApp(t, "Passw1rd\n")
		assert.Equal(t, ExitOK, app.Run(context.Background(), []string{"verify", "-in", path}))
		assert.Equal(t, "ok\n", out.String())
	})

	t.Run("mismatch", func(t *testing.T) {
		app, out, _ := newTestApp(t, "Passw0rd\n")
		assert.Equal(t, ExitRejected, app.Run(context.Background(), []string{"verify", "-in", path}))
		assert.Equal(t, "mismatch\n", out.String())
	})
}

func TestVerify_Errors(t *testing.T) {
	app, _, errOut := newTestApp(t, "Passw1rd\n")
	assert.Equal(t, ExitError, app.Run(context.Background(), []string{"verify"}))
	assert.Contains(t, errOut.String(), "-in is required")

	app, _, errOut = newTestApp(t, "Passw1rd\n")
	assert.Equal(t, ExitError, app.Run(context.Background(), []string{"verify", "-in", filepath.Join(t.TempDir(), "none.json")}))
	assert.Contains(t, errOut.String(), "verify:")

	noSalt := writeRecord(t, map[string]string{"hash": "abcd"})
	app, _, errOut = newTestApp(t, "Passw1rd\n")
	assert.Equal(t, ExitError, app.Run(context.Background(), []string{"verify", "-in", noSalt}))
	assert.Contains(t, errOut.String(), "invalid input")
}

func TestUpdate_RewritesRecordInPlace(t *testing.T) {
	path := writeRecord(t, models.LegacyUser{ID: "u-1", UserName: "carol", Pass: "old", Salt: "old"})

	app, out, _ := newTestApp(t, "HELP@2\n")
	require.Equal(t, ExitOK, app.Run(context.Background(), []string{"update", "-in", path}))
	assert.Equal(t, "updated\n", out.String())

	rec, err := loadRecord(path)
	require.NoError(t, err)
	legacy, ok := rec.(*models.LegacyUser)
	require.True(t, ok, "legacy field names must be preserved")
	assert.Equal(t, "u-1", legacy.ID)
	assert.Equal(t, "carol", legacy.UserName)
	assert.NotEqual(t, "old", legacy.Pass)
	assert.NotEqual(t, "old", legacy.Salt)

	app, out, _ = newTestApp(t, "HELP@2\n")
	assert.Equal(t, ExitOK, app.Run(context.Background(), []string{"verify", "-in", path}))
	assert.Equal(t, "ok\n", out.String())
}

func TestUpdate_WeakPasswordKeepsFile(t *testing.T) {
	path := writeRecord(t, models.User{ID: "u-2", Hash: "old", Salt: "old"})
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	app, _, _ := newTestApp(t, "Password\n")
	assert.Equal(t, ExitRejected, app.Run(context.Background(), []string{"update", "-in", path}))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGetPassword_UsesTerminalSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) { return []byte("Passw1rd"), nil }

	var w bytes.Buffer
	pw, err := GetPassword(&w)
	require.NoError(t, err)
	assert.Equal(t, "Passw1rd", string(pw))
	assert.Contains(t, w.String(), "Enter password: ")

	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }
	_, err = GetPassword(&w)
	assert.Error(t, err)
}

func TestCommandContext(t *testing.T) {
	app, _, _ := newTestApp(t, "")

	app.config.AcquireTimeout = time.Minute
	ctx, cancel := app.commandContext(context.Background())
	_, hasDeadline := ctx.Deadline()
	cancel()
	assert.True(t, hasDeadline)

	app.config.AcquireTimeout = 0
	ctx, cancel = app.commandContext(context.Background())
	_, hasDeadline = ctx.Deadline()
	cancel()
	assert.False(t, hasDeadline)
}
