package ports

// Workspace is the per-run temporary directory, exclusively owned by the
// run that created it.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Path returns the absolute path of name inside the workspace.
	Path(name string) string
	// Cleanup deletes the workspace unless it was created with the leak
	// flag, in which case the directory is kept for debugging.
	Cleanup() error
}

// WorkspaceFactory creates per-run workspaces.
type WorkspaceFactory interface {
	New(leak bool) (Workspace, error)
}
