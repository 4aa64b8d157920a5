// ABOUTME: Drives the article download flow against the backend
// ABOUTME: Existence check, overwrite confirmation, simulated progress ticker

package download

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"openwiki-client/core/domain"
	apperrors "openwiki-client/core/errors"
	"openwiki-client/core/interfaces"
	"openwiki-client/core/rest"
)

const (
	defaultTickInterval = 300 * time.Millisecond
	defaultTickStep     = 10
	progressCeiling     = 90
	defaultDisplayDelay = 3 * time.Second
)

// UpdateFunc receives a snapshot of the task after every state change.
type UpdateFunc func(task domain.DownloadTask)

// Service runs one download at a time. The progress percentage is
// simulated: it climbs on a fixed interval while the backend call is in
// flight, capped below completion until the call actually resolves.
type Service struct {
	deps       interfaces.Dependencies
	backendURL string

	tickInterval time.Duration
	tickStep     int
	displayDelay time.Duration

	mu       sync.Mutex
	task     *domain.DownloadTask
	onUpdate UpdateFunc
}

// NewService creates a new download service instance
func NewService(deps interfaces.Dependencies, backendURL string) *Service {
	return &Service{
		deps:         deps,
		backendURL:   backendURL,
		tickInterval: defaultTickInterval,
		tickStep:     defaultTickStep,
		displayDelay: defaultDisplayDelay,
	}
}

// OnUpdate registers the task snapshot callback.
func (s *Service) OnUpdate(fn UpdateFunc) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// Task returns a snapshot of the current task, nil when idle.
func (s *Service) Task() *domain.DownloadTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.task == nil {
		return nil
	}
	snapshot := *s.task
	return &snapshot
}

func (s *Service) notifyLocked() {
	if s.onUpdate != nil && s.task != nil {
		s.onUpdate(*s.task)
	}
}

// Check asks the backend whether an article with this title is already
// saved in the collection.
func (s *Service) Check(ctx context.Context, title string) (bool, error) {
	payload, err := json.Marshal(map[string]string{"title": title})
	if err != nil {
		return false, apperrors.WrapError(err, "failed to encode existence check")
	}

	resp, err := s.deps.HTTPClient.Post(ctx, s.backendURL+"/api/articles/check", bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	if !rest.Success(resp) {
		return false, rest.FailureFromResponse("articles", resp)
	}

	var decoded struct {
		Exists bool `json:"exists"`
	}
	if err := rest.DecodeJSON(resp, &decoded); err != nil {
		return false, err
	}
	return decoded.Exists, nil
}

// Download starts the flow for a title. When the article already exists
// the task suspends awaiting ConfirmOverwrite or Cancel; otherwise the
// download runs to a terminal phase before returning.
func (s *Service) Download(ctx context.Context, title, language string) error {
	if title == "" {
		return &apperrors.ValidationError{Field: "title", Message: "title cannot be empty"}
	}

	s.mu.Lock()
	if s.task != nil && s.task.Phase.IsActive() {
		s.mu.Unlock()
		return &apperrors.ConflictError{
			Resource: "download",
			Message:  "a download is already in progress",
		}
	}
	task := domain.NewDownloadTask(title, language)
	task.Phase = domain.PhaseChecking
	s.task = task
	s.notifyLocked()
	s.mu.Unlock()

	exists, err := s.Check(ctx, title)
	if err != nil {
		s.fail(err)
		return err
	}

	if exists {
		s.mu.Lock()
		s.task.Phase = domain.PhaseConfirmingOverwrite
		s.notifyLocked()
		s.mu.Unlock()
		s.deps.Logger.Debug("download awaiting overwrite confirmation", map[string]interface{}{
			"title": title,
		})
		return nil
	}

	return s.perform(ctx, false)
}

// ConfirmOverwrite resumes a suspended task, replacing the saved copy.
func (s *Service) ConfirmOverwrite(ctx context.Context) error {
	s.mu.Lock()
	if s.task == nil || s.task.Phase != domain.PhaseConfirmingOverwrite {
		s.mu.Unlock()
		return &apperrors.ValidationError{Field: "download", Message: "no download awaiting confirmation"}
	}
	s.mu.Unlock()
	return s.perform(ctx, true)
}

// Cancel abandons a task that is awaiting overwrite confirmation.
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.task == nil || s.task.Phase != domain.PhaseConfirmingOverwrite {
		return
	}
	s.task = nil
}

// perform issues the backend download while the ticker animates progress.
// The percentage is forced to completion only once the call succeeds.
func (s *Service) perform(ctx context.Context, overwrite bool) error {
	s.mu.Lock()
	s.task.Phase = domain.PhaseDownloading
	s.task.Overwrite = overwrite
	s.task.Percent = 0
	title := s.task.Title
	language := s.task.Language
	s.notifyLocked()
	s.mu.Unlock()

	tickCtx, stopTicker := context.WithCancel(ctx)
	done := make(chan struct{})
	go s.tick(tickCtx, done)

	payload, err := json.Marshal(map[string]interface{}{
		"title":     title,
		"lang":      language,
		"overwrite": overwrite,
	})
	if err != nil {
		stopTicker()
		<-done
		wrapped := apperrors.WrapError(err, "failed to encode download request")
		s.fail(wrapped)
		return wrapped
	}

	resp, err := s.deps.HTTPClient.Post(ctx, s.backendURL+"/api/articles/download", bytes.NewReader(payload))
	stopTicker()
	<-done
	if err != nil {
		s.fail(err)
		return err
	}
	if !rest.Success(resp) {
		failure := rest.FailureFromResponse("articles", resp)
		s.fail(failure)
		return failure
	}

	s.mu.Lock()
	s.task.Percent = 100
	s.task.Phase = domain.PhaseSucceeded
	taskID := s.task.ID
	s.notifyLocked()
	s.mu.Unlock()

	s.deps.Logger.Info("article downloaded", map[string]interface{}{
		"title":     title,
		"overwrite": overwrite,
	})

	// linger so the completed bar stays visible, then return to idle
	go func() {
		time.Sleep(s.displayDelay)
		s.mu.Lock()
		if s.task != nil && s.task.ID == taskID {
			s.task = nil
		}
		s.mu.Unlock()
	}()
	return nil
}

func (s *Service) tick(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.task != nil && s.task.Phase == domain.PhaseDownloading {
				s.task.Percent += s.tickStep
				if s.task.Percent > progressCeiling {
					s.task.Percent = progressCeiling
				}
				s.notifyLocked()
			}
			s.mu.Unlock()
		}
	}
}

func (s *Service) fail(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.task == nil {
		return
	}
	s.task.Percent = 0
	s.task.Phase = domain.PhaseFailed
	s.task.Message = fmt.Sprintf("download failed: %v", cause)
	s.notifyLocked()

	taskID := s.task.ID
	go func() {
		time.Sleep(s.displayDelay)
		s.mu.Lock()
		if s.task != nil && s.task.ID == taskID {
			s.task = nil
		}
		s.mu.Unlock()
	}()
}
