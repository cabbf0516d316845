package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArgument is returned for user-supplied counts outside their
	// validated ranges. Raised before any child process is spawned.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrTaskLimitExceeded is returned when repetitions times manifest size
	// would exceed the task cap. Fatal; nothing is submitted.
	ErrTaskLimitExceeded = zerr.New("task limit exceeded")

	// ErrNoTestsFound is returned when dependency packaging produced no
	// isolated task definitions.
	ErrNoTestsFound = zerr.New("no tests found")

	// ErrExternalTool is returned when an external tool exits nonzero after
	// any local retries are exhausted.
	ErrExternalTool = zerr.New("external tool failed")

	// ErrTestsFailed marks the execution client's distinguished
	// tests-failed exit status. The job ran; this is not a tooling failure.
	ErrTestsFailed = zerr.New("some tests failed")

	// ErrMissingJobID is returned when result reporting was requested but
	// the client output carried no job identifier.
	ErrMissingJobID = zerr.New("no job id in client output")

	// ErrReportingFailed is returned when the result-reporting script exits
	// nonzero. The submission itself is already committed at that point.
	ErrReportingFailed = zerr.New("result reporting failed")
)
