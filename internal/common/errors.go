// Package common defines the error taxonomy shared by the credential
// pipeline and its callers, plus small byte helpers. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (client caused). Never reach the KDF.
	ErrInvalidInput = errors.New("invalid input")
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// KDF or entropy failure (server caused). Wraps the underlying cause.
	ErrInternalCrypto = errors.New("could not hash password")
)
