package ports

import "context"

// GitInfo holds git repository context captured at session start.
type GitInfo struct {
	Branch string
	Commit string
}

// GitDetector defines the interface for git context detection.
// This is a driven port (implemented by adapters).
type GitDetector interface {
	// Detect scans the working directory for git context.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)

	// IsAvailable checks if a git repository is reachable from the
	// current directory.
	IsAvailable() bool
}
