package driver

// FatalError is an unrecoverable environment failure: provisioning cannot
// proceed until the operator fixes it. Library code returns it instead of
// exiting; the top-level entry point prints the remediation and exits.
type FatalError struct {
	Err         error
	Remediation string
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
