package common

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorClass tells who is responsible for a failed operation.
type ErrorClass int

const (
	ClassNone ErrorClass = iota
	ClassClient
	ClassServer
)

func (c ErrorClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassClient:
		return "client"
	default:
		return "server"
	}
}

// Classify maps err onto the client/server split. Unknown errors are
// treated as server failures.
func Classify(err error) ErrorClass {
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrWeakPassword):
		return ClassClient
	default:
		return ClassServer
	}
}

// StatusError converts err into a gRPC status error so a host service can
// return it unchanged. Internal failures never leak their cause text.
func StatusError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrWeakPassword):
		return status.Error(codes.FailedPrecondition, ErrWeakPassword.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
