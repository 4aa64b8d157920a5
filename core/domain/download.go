// ABOUTME: Download task model and phase enum for the article download flow
// ABOUTME: Tracks one attempt from existence check through success or failure

package domain

import "github.com/google/uuid"

// DownloadPhase represents the state of a download attempt
type DownloadPhase string

const (
	// PhaseIdle means no download is in progress
	PhaseIdle DownloadPhase = "idle"

	// PhaseChecking means the existence check is in flight
	PhaseChecking DownloadPhase = "checking"

	// PhaseConfirmingOverwrite means the attempt is suspended waiting for
	// the user to accept or cancel overwriting an existing article
	PhaseConfirmingOverwrite DownloadPhase = "confirming-overwrite"

	// PhaseDownloading means the backend download request is in flight
	PhaseDownloading DownloadPhase = "downloading"

	// PhaseSucceeded means the backend confirmed the download
	PhaseSucceeded DownloadPhase = "succeeded"

	// PhaseFailed means the attempt failed
	PhaseFailed DownloadPhase = "failed"
)

// String returns the string representation of DownloadPhase
func (p DownloadPhase) String() string {
	return string(p)
}

// IsActive returns true while the attempt still has work in flight
func (p DownloadPhase) IsActive() bool {
	return p == PhaseChecking || p == PhaseConfirmingOverwrite || p == PhaseDownloading
}

// IsTerminal returns true once the attempt has resolved either way
func (p DownloadPhase) IsTerminal() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}

// DownloadTask represents a single download attempt. Tasks are ephemeral:
// they are never persisted and exist only for the lifetime of one attempt.
type DownloadTask struct {
	ID        string
	Title     string
	Language  string
	Overwrite bool
	Percent   int // 0 to 100, cosmetic until the backend resolves
	Phase     DownloadPhase
	Message   string // last user-facing message, set on failure
}

// NewDownloadTask creates a task in the idle phase for the given title.
func NewDownloadTask(title, language string) *DownloadTask {
	return &DownloadTask{
		ID:       uuid.NewString(),
		Title:    title,
		Language: language,
		Phase:    PhaseIdle,
	}
}
