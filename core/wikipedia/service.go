// ABOUTME: Search and preview against the public encyclopedia API
// ABOUTME: Uncredentialed calls, title-deduplicated results, politeness rate limiting

package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"openwiki-client/core/domain"
	apperrors "openwiki-client/core/errors"
	"openwiki-client/core/interfaces"
	"openwiki-client/core/rest"
	"openwiki-client/pkg/config"
)

// Service handles encyclopedia search and preview operations
type Service struct {
	deps    interfaces.Dependencies
	limiter *rate.Limiter
}

// NewService creates a new encyclopedia service instance. All calls share
// one politeness limiter toward the public API.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps:    deps,
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

func endpoint(language string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", language)
}

func validateLanguage(language string) error {
	if !config.SupportedLanguage(language) {
		return &apperrors.ValidationError{
			Field:   "language",
			Message: fmt.Sprintf("unsupported language %q", language),
		}
	}
	return nil
}

// searchResponse matches the MediaWiki list=search payload
type searchResponse struct {
	Query struct {
		Search []struct {
			PageID  int64  `json:"pageid"`
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

// Search queries the encyclopedia. An empty query clears results without
// any network call. Results are deduplicated by title, first occurrence
// wins, server order preserved.
func (s *Service) Search(ctx context.Context, query, language string) ([]domain.SearchResult, error) {
	if query == "" {
		return []domain.SearchResult{}, nil
	}
	if err := validateLanguage(language); err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("origin", "*")

	resp, err := s.deps.HTTPClient.Get(ctx, endpoint(language)+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if !rest.Success(resp) {
		return nil, rest.FailureFromResponse("wikipedia", resp)
	}

	var decoded searchResponse
	if err := rest.DecodeJSON(resp, &decoded); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	results := make([]domain.SearchResult, 0, len(decoded.Query.Search))
	for _, hit := range decoded.Query.Search {
		if seen[hit.Title] {
			continue
		}
		seen[hit.Title] = true
		results = append(results, domain.SearchResult{
			PageID:  strconv.FormatInt(hit.PageID, 10),
			Title:   hit.Title,
			Snippet: hit.Snippet,
		})
	}

	s.deps.Logger.Debug("encyclopedia search", map[string]interface{}{
		"query":   query,
		"lang":    language,
		"results": len(results),
	})
	return results, nil
}

// pagesResponse matches the MediaWiki prop=extracts payload
type pagesResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID  int64     `json:"pageid"`
			Title   string    `json:"title"`
			Extract string    `json:"extract"`
			Missing *struct{} `json:"missing,omitempty"`
		} `json:"pages"`
	} `json:"query"`
}

// Preview fetches the full plain-text extract for exactly one title. The
// caller replaces any previous preview with the result.
func (s *Service) Preview(ctx context.Context, title, language string) (*domain.Page, error) {
	if title == "" {
		return nil, &apperrors.ValidationError{Field: "title", Message: "title cannot be empty"}
	}
	if err := validateLanguage(language); err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("titles", title)
	params.Set("origin", "*")

	resp, err := s.deps.HTTPClient.Get(ctx, endpoint(language)+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if !rest.Success(resp) {
		return nil, rest.FailureFromResponse("wikipedia", resp)
	}

	var decoded pagesResponse
	if err := rest.DecodeJSON(resp, &decoded); err != nil {
		return nil, err
	}

	for _, page := range decoded.Query.Pages {
		if page.Missing != nil {
			continue
		}
		return &domain.Page{
			PageID:  strconv.FormatInt(page.PageID, 10),
			Title:   page.Title,
			Extract: page.Extract,
		}, nil
	}

	return nil, &apperrors.ServerError{
		StatusCode: resp.StatusCode(),
		Message:    fmt.Sprintf("no page found for title %q", title),
		API:        "wikipedia",
	}
}
