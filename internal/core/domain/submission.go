package domain

// SubmissionResult captures one invocation of the execution client. It is
// created once per submission attempt; this layer never retries submissions.
type SubmissionResult struct {
	// ExitCode is the client's exit status. Zero means every test passed,
	// ExitTestsFailed means the job ran but some tests did not pass.
	ExitCode int

	// RawOutput is the client's captured standard output.
	RawOutput string

	// JobID is the identifier extracted from RawOutput, or empty when the
	// client printed none.
	JobID string
}

// SubmitOptions control a single execution-client invocation.
type SubmitOptions struct {
	// Artifacts requests that the client download per-task result files.
	Artifacts bool

	// OutputDir is where the client places downloaded artifacts.
	OutputDir string

	// Name is the human-readable job name shown by the remote scheduler.
	Name string
}
