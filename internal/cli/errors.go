package cli

// ExitCodeUsage is returned for malformed command lines and for missing
// template arguments when prompting is disabled.
const ExitCodeUsage = 2

// ExitError carries the process exit status for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) error {
	return &ExitError{Code: ExitCodeUsage, Err: err}
}
