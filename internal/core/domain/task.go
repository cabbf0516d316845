package domain

// ArchiveManifest maps a human-readable task description to the
// content-addressed hash of its dependency archive. It is produced by the
// archiving tool's --dump-json side channel, read once, and never mutated.
// Iteration order is undefined; consumers must not depend on it.
type ArchiveManifest map[string]string

// TaskDescriptor is one unit of remote-executable work. Once created it is
// immutable; the remote fabric owns its execution from submission onward.
type TaskDescriptor struct {
	IsolateHash   string   `json:"isolate_hash"`
	Description   string   `json:"description"`
	Timeout       int      `json:"timeout"`
	ArtifactGlobs []string `json:"artifact_archive_globs"`

	// MaxRetries is omitted from the wire format when zero. The execution
	// fabric treats an absent field as "use the fabric default", which is
	// not the same thing as an explicit zero.
	MaxRetries int `json:"max_retries,omitempty"`
}

// TaskList is the file-based handoff to the execution client. Order of tasks
// carries no execution meaning.
type TaskList struct {
	Tasks []TaskDescriptor `json:"tasks"`
}
