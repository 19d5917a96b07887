package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Input errors
	ErrNoInput         = fmt.Errorf("no input provided")
	ErrReadInput       = fmt.Errorf("cannot read input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Storage errors
	ErrSaveLibrary = fmt.Errorf("impossible to write library")
	ErrLockLibrary = fmt.Errorf("could not acquire library lock")
	ErrDatabase    = fmt.Errorf("database error")
	ErrRunNotFound = fmt.Errorf("sync run not found")
)
