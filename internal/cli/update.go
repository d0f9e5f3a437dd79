package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/dmitrijs2005/pwcred/internal/common"
)

// update rehashes the record in place and rewrites the file. Fields other
// than the credential are preserved.
func (a *App) update(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	input := fs.String("in", "", "user record file")
	if err := fs.Parse(args); err != nil {
		return ExitError
	}
	if *input == "" {
		return a.fail(ctx, "update", errors.New("-in is required"))
	}

	rec, err := loadRecord(*input)
	if err != nil {
		return a.fail(ctx, "update", err)
	}

	pw, err := a.password()
	if err != nil {
		return a.fail(ctx, "update", err)
	}

	ctx, cancel := a.commandContext(ctx)
	defer cancel()

	if _, err := a.auth.Update(ctx, pw, rec); err != nil {
		if errors.Is(err, common.ErrWeakPassword) {
			fmt.Fprintln(a.errOut, "update:", err)
			return ExitRejected
		}
		return a.fail(ctx, "update", err)
	}

	if err := saveRecord(*input, rec); err != nil {
		return a.fail(ctx, "update", err)
	}
	fmt.Fprintln(a.out, "updated")
	return ExitOK
}
