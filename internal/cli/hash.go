package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/dmitrijs2005/pwcred/internal/auth"
	"github.com/dmitrijs2005/pwcred/internal/common"
	"github.com/dmitrijs2005/pwcred/internal/models"
)

func (a *App) hash(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	userName := fs.String("user", "", "user name stored in the record")
	legacy := fs.Bool("legacy", false, "write the key under \"pass\" instead of \"hash\"")
	output := fs.String("o", "", "write the record to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return ExitError
	}

	pw, err := a.password()
	if err != nil {
		return a.fail(ctx, "hash", err)
	}

	ctx, cancel := a.commandContext(ctx)
	defer cancel()

	c, err := a.auth.Generate(ctx, pw)
	if err != nil {
		if errors.Is(err, common.ErrWeakPassword) {
			fmt.Fprintln(a.errOut, "hash:", err)
			return ExitRejected
		}
		return a.fail(ctx, "hash", err)
	}

	var rec auth.Record
	if *legacy {
		rec = &models.LegacyUser{UserName: *userName}
	} else {
		rec = models.NewUser(*userName)
	}
	rec.SetCredential(c)

	if *output != "" {
		if err := saveRecord(*output, rec); err != nil {
			return a.fail(ctx, "hash", err)
		}
		return ExitOK
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return a.fail(ctx, "hash", err)
	}
	return ExitOK
}
