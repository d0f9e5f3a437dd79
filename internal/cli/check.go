package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pwcred/internal/strength"
)

func (a *App) check(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	if err := fs.Parse(args); err != nil {
		return ExitError
	}

	pw, err := a.password()
	if err != nil {
		return a.fail(ctx, "check", err)
	}

	rep := strength.Evaluate(pw)

	fmt.Fprintf(a.out, "length:  %d (minimum %d)\n", rep.Length, strength.MinLength)
	fmt.Fprintf(a.out, "classes: %s\n", joinClasses(rep.Classes))
	fmt.Fprintf(a.out, "missing: %s\n", joinClasses(rep.Missing()))
	fmt.Fprintf(a.out, "state:   %s\n", rep.State)

	if !rep.Valid {
		fmt.Fprintln(a.out, "weak")
		return ExitRejected
	}
	fmt.Fprintln(a.out, "strong")
	return ExitOK
}

func joinClasses(cs []strength.Class) string {
	if len(cs) == 0 {
		return "-"
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
