package cmd

import "errors"

// Exit codes. 0 is success whether or not anything matched.
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// exitError carries a process exit code alongside the error to print.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }

func (e exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	if err == nil {
		return nil
	}
	return exitError{code: ExitUsage, err: err}
}

// ExitCode extracts the exit code for err: 0 for nil, the carried code for an
// exitError, and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitRuntime
}
