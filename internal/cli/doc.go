// Package cli implements the pwcred command-line tool.
//
// Commands:
//   - check   report which character classes a password has and whether it passes
//   - hash    create a credential and print or write a user record
//   - verify  check a password against a stored user record
//   - update  replace the credential of a stored user record
//
// Passwords are read from the terminal without echo, or from the first line
// of stdin when it is not a terminal. Records are JSON files using either
// hash/salt or the legacy pass/salt field names; the format is detected on
// read and preserved on write.
package cli
