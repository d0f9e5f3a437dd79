// Package auth is the outward facade over the credential pipeline: it checks
// arguments, delegates to a credential.Hasher and logs outcomes.
package auth

import (
	"context"
	"fmt"
	"reflect"

	"github.com/dmitrijs2005/pwcred/internal/common"
	"github.com/dmitrijs2005/pwcred/internal/credential"
	"github.com/dmitrijs2005/pwcred/internal/logging"
)

// Record is anything that stores a credential, whatever its field names.
// SetCredential must replace hash and salt together.
type Record interface {
	Credential() credential.Credential
	SetCredential(credential.Credential)
}

// Authenticator exposes Authenticate, Generate and Update.
type Authenticator struct {
	hasher *credential.Hasher
	log    logging.Logger
}

func NewAuthenticator(h *credential.Hasher, log logging.Logger) *Authenticator {
	if log == nil {
		log = logging.Nop()
	}
	return &Authenticator{hasher: h, log: log}
}

// Authenticate reports whether password matches the credential held by rec.
// A wrong password is false with a nil error.
func (a *Authenticator) Authenticate(ctx context.Context, password string, rec Record) (bool, error) {
	if password == "" || isNil(rec) {
		return false, fmt.Errorf("%w: password and user are required", common.ErrInvalidInput)
	}

	c := rec.Credential()
	ok, err := a.hasher.Verify(ctx, password, c.Hash, c.Salt)
	if err != nil {
		a.log.Warn(ctx, "authentication error", "class", common.Classify(err).String(), "error", err)
		return false, err
	}
	if !ok {
		a.log.Info(ctx, "authentication failed")
	}
	return ok, nil
}

// Generate returns a new credential for password. The caller persists it.
func (a *Authenticator) Generate(ctx context.Context, password string) (credential.Credential, error) {
	if password == "" {
		return credential.Credential{}, fmt.Errorf("%w: missing password", common.ErrInvalidInput)
	}

	c, err := a.hasher.Create(ctx, password)
	if err != nil {
		a.log.Warn(ctx, "credential generation failed", "class", common.Classify(err).String(), "error", err)
		return credential.Credential{}, err
	}
	a.log.Info(ctx, "credential generated")
	return c, nil
}

// Update generates a new credential for password and writes it into rec,
// replacing hash and salt together. It returns rec itself: the caller's
// record is modified in place. On error rec is left unchanged.
func (a *Authenticator) Update(ctx context.Context, password string, rec Record) (Record, error) {
	if password == "" || isNil(rec) {
		return rec, fmt.Errorf("%w: password and user are required", common.ErrInvalidInput)
	}

	c, err := a.Generate(ctx, password)
	if err != nil {
		return rec, err
	}
	rec.SetCredential(c)
	return rec, nil
}

func isNil(rec Record) bool {
	if rec == nil {
		return true
	}
	v := reflect.ValueOf(rec)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
