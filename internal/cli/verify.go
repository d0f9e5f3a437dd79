package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
)

func (a *App) verify(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	input := fs.String("in", "", "user record file")
	if err := fs.Parse(args); err != nil {
		return ExitError
	}
	if *input == "" {
		return a.fail(ctx, "verify", errors.New("-in is required"))
	}

	rec, err := loadRecord(*input)
	if err != nil {
		return a.fail(ctx, "verify", err)
	}

	pw, err := a.password()
	if err != nil {
		return a.fail(ctx, "verify", err)
	}

	ctx, cancel := a.commandContext(ctx)
	defer cancel()

	ok, err := a.auth.Authenticate(ctx, pw, rec)
	if err != nil {
		return a.fail(ctx, "verify", err)
	}
	if !ok {
		fmt.Fprintln(a.out, "mismatch")
		return ExitRejected
	}
	fmt.Fprintln(a.out, "ok")
	return ExitOK
}
