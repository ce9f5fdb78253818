package errors

import (
	"errors"
	"fmt"
)

// Error taxonomy for the middleware. Configuration errors are fatal at
// startup; everything else is a per-request condition handed to the host's
// error handler.
var (
	// Configuration errors
	ErrMissingClientID        = errors.New("missing client id")
	ErrMissingClientSecret    = errors.New("missing client secret")
	ErrMissingProviderOptions = errors.New("missing provider options")
	ErrMissingHostname        = errors.New("missing hostname")
	ErrMissingDefaultProvider = errors.New("missing default provider")

	// Request errors
	ErrAuthorizationDenied = errors.New("authorization denied by provider")
	ErrUpstreamExchange    = errors.New("upstream token exchange failed")
	ErrProviderNotFound    = errors.New("provider not found")
	ErrRefreshUnsupported  = errors.New("provider does not support refresh")
	ErrRefreshFailed       = errors.New("token refresh failed")

	// Session errors
	ErrSessionStore = errors.New("session store failure")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
