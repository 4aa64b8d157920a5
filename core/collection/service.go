// ABOUTME: In-memory view over the user's saved article collection
// ABOUTME: Groups articles by title, tracks expansion and a single edit draft

package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"openwiki-client/core/content"
	"openwiki-client/core/domain"
	apperrors "openwiki-client/core/errors"
	"openwiki-client/core/interfaces"
	"openwiki-client/core/rest"
)

// Draft holds the article being edited alongside its structured content.
type Draft struct {
	Article domain.Article
	Doc     *content.Document
}

// Service owns the grouped collection state. All state transitions happen
// only when the corresponding backend call resolves; a failed call leaves
// the grouping untouched.
type Service struct {
	deps       interfaces.Dependencies
	backendURL string
	policy     *content.Policy

	mu       sync.Mutex
	groups   map[string][]domain.Article
	order    []string
	expanded string
	draft    *Draft
}

// NewService creates a new collection service instance
func NewService(deps interfaces.Dependencies, backendURL string) *Service {
	return &Service{
		deps:       deps,
		backendURL: backendURL,
		policy:     content.DefaultPolicy(),
		groups:     make(map[string][]domain.Article),
	}
}

// Load fetches the user's saved articles filtered server-side by term and
// replaces the grouping with the result. An empty term clears the grouping
// without any network call.
func (s *Service) Load(ctx context.Context, term string) error {
	if term == "" {
		s.mu.Lock()
		s.groups = make(map[string][]domain.Article)
		s.order = nil
		s.expanded = ""
		s.mu.Unlock()
		return nil
	}

	resp, err := s.deps.HTTPClient.Get(ctx, fmt.Sprintf("%s/api/articles?search=%s", s.backendURL, url.QueryEscape(term)))
	if err != nil {
		return err
	}
	if !rest.Success(resp) {
		return rest.FailureFromResponse("articles", resp)
	}

	var articles []domain.Article
	if err := rest.DecodeJSON(resp, &articles); err != nil {
		return err
	}

	groups := make(map[string][]domain.Article)
	var order []string
	for _, article := range articles {
		if _, ok := groups[article.Title]; !ok {
			order = append(order, article.Title)
		}
		groups[article.Title] = append(groups[article.Title], article)
	}

	s.mu.Lock()
	s.groups = groups
	s.order = order
	s.expanded = ""
	s.mu.Unlock()

	s.deps.Logger.Debug("collection loaded", map[string]interface{}{
		"term":   term,
		"groups": len(order),
	})
	return nil
}

// Titles returns the group titles in server response order.
func (s *Service) Titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	titles := make([]string, len(s.order))
	copy(titles, s.order)
	return titles
}

// Group returns the articles saved under a title. The first element is the
// representative article for display and editing.
func (s *Service) Group(title string) ([]domain.Article, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	group, ok := s.groups[title]
	if !ok {
		return nil, false
	}
	out := make([]domain.Article, len(group))
	copy(out, group)
	return out, true
}

// ToggleExpand expands a group, collapsing whichever was expanded before.
// Toggling the expanded group collapses it.
func (s *Service) ToggleExpand(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded == title {
		s.expanded = ""
		return
	}
	s.expanded = title
}

// Expanded returns the currently expanded group title, empty if none.
func (s *Service) Expanded() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded
}

// Delete removes an article from the backend, then from its group. The
// group key is dropped the moment its list becomes empty. On failure the
// grouping is left unchanged.
func (s *Service) Delete(ctx context.Context, id, title string) error {
	resp, err := s.deps.HTTPClient.Delete(ctx, fmt.Sprintf("%s/api/articles/%s", s.backendURL, id))
	if err != nil {
		return err
	}
	if !rest.Success(resp) {
		return rest.FailureFromResponse("articles", resp)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	group := s.groups[title]
	kept := group[:0:0]
	for _, article := range group {
		if article.ID != id {
			kept = append(kept, article)
		}
	}
	if len(kept) == 0 {
		delete(s.groups, title)
		s.removeTitle(title)
		if s.expanded == title {
			s.expanded = ""
		}
	} else {
		s.groups[title] = kept
	}

	s.deps.Logger.Info("article deleted", map[string]interface{}{
		"id":    id,
		"title": title,
	})
	return nil
}

func (s *Service) removeTitle(title string) {
	for i, t := range s.order {
		if t == title {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// BeginEdit sanitizes the article's HTML and opens an edit draft. Only one
// draft may be open at a time.
func (s *Service) BeginEdit(article domain.Article) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft != nil {
		return nil, &apperrors.ConflictError{
			Resource: "edit",
			Message:  "an edit is already in progress",
		}
	}

	clean, err := s.policy.Sanitize(article.Content)
	if err != nil {
		return nil, err
	}
	doc, err := content.FromHTML(clean)
	if err != nil {
		return nil, err
	}

	s.draft = &Draft{Article: article, Doc: doc}
	return s.draft, nil
}

// Draft returns the open edit draft, nil if none.
func (s *Service) Draft() *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// CommitEdit serializes the draft back to HTML and sends it to the
// backend. On success the matching article inside its group is replaced
// with the server's returned representation and the draft closes.
func (s *Service) CommitEdit(ctx context.Context) error {
	s.mu.Lock()
	draft := s.draft
	s.mu.Unlock()
	if draft == nil {
		return &apperrors.ValidationError{Field: "edit", Message: "no edit in progress"}
	}

	payload, err := json.Marshal(map[string]string{
		"title":   draft.Article.Title,
		"content": draft.Doc.ToHTML(),
	})
	if err != nil {
		return apperrors.WrapError(err, "failed to encode article update")
	}

	resp, err := s.deps.HTTPClient.Put(ctx, fmt.Sprintf("%s/api/articles/%s", s.backendURL, draft.Article.ID), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if !rest.Success(resp) {
		return rest.FailureFromResponse("articles", resp)
	}

	var updated domain.Article
	if err := rest.DecodeJSON(resp, &updated); err != nil {
		return err
	}

	s.mu.Lock()
	group := s.groups[draft.Article.Title]
	for i, article := range group {
		if article.ID == updated.ID {
			group[i] = updated
			break
		}
	}
	s.draft = nil
	s.mu.Unlock()

	s.deps.Logger.Info("article updated", map[string]interface{}{
		"id":    updated.ID,
		"title": updated.Title,
	})
	return nil
}

// CancelEdit discards the draft without touching the backend.
func (s *Service) CancelEdit() {
	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()
}

// FetchHistory retrieves the version history for an article.
func (s *Service) FetchHistory(ctx context.Context, id string) ([]domain.ArticleHistory, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, fmt.Sprintf("%s/api/articles/history/%s", s.backendURL, id))
	if err != nil {
		return nil, err
	}
	if !rest.Success(resp) {
		return nil, rest.FailureFromResponse("articles", resp)
	}

	var history []domain.ArticleHistory
	if err := rest.DecodeJSON(resp, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// randomResponse covers both shapes of the random endpoint: an article
// when the collection has one, or a plain message when it is empty.
type randomResponse struct {
	domain.Article
	Message string `json:"message"`
}

// ArticleOfTheDay fetches a random saved article. When the collection is
// empty the backend answers with a message instead of an article; that is
// an empty outcome, not an error.
func (s *Service) ArticleOfTheDay(ctx context.Context) (*domain.Article, string, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, s.backendURL+"/api/articles/random")
	if err != nil {
		return nil, "", err
	}
	if !rest.Success(resp) {
		return nil, "", rest.FailureFromResponse("articles", resp)
	}

	var decoded randomResponse
	if err := rest.DecodeJSON(resp, &decoded); err != nil {
		return nil, "", err
	}
	if decoded.Message != "" {
		return nil, decoded.Message, nil
	}
	article := decoded.Article
	return &article, "", nil
}
