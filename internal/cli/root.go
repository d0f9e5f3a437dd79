package cli

import (
	"context"
	"fmt"
)

const usage = `usage: pwcred [-c file] [-w n] [-l level] [-f text|json] [-t seconds] <command> [flags]

commands:
  check                              report password strength
  hash [-user name] [-legacy] [-o file]
                                     create a credential record
  verify -in file                    check a password against a record
  update -in file                    replace the credential in a record
  help                               show this message
`

// Run executes the command in args and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return ExitError
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "help", "-h", "-help", "--help":
		fmt.Fprint(a.out, usage)
		return ExitOK
	case "check":
		return a.check(ctx, rest)
	case "hash":
		return a.hash(ctx, rest)
	case "verify":
		return a.verify(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	default:
		fmt.Fprintln(a.errOut, "Unknown command:", cmd)
		fmt.Fprint(a.errOut, usage)
		return ExitError
	}
}

// fail reports err on stderr and maps it to an exit code.
func (a *App) fail(ctx context.Context, cmd string, err error) int {
	a.log.Error(ctx, "command failed", "command", cmd, "error", err)
	fmt.Fprintf(a.errOut, "%s: %v\n", cmd, err)
	return ExitError
}
