// ABOUTME: Domain models for results coming from the public encyclopedia API
// ABOUTME: Search hits and full-page extracts used by the download flow

package domain

// SearchResult represents one hit from the encyclopedia search API.
type SearchResult struct {
	// PageID is the encyclopedia page identifier
	PageID string `json:"pageid"`

	// Title is the page title
	Title string `json:"title"`

	// Snippet is the highlighted match fragment
	Snippet string `json:"snippet"`
}

// Page represents a full plain-text extract of one encyclopedia page,
// used for previewing before download.
type Page struct {
	// PageID is the encyclopedia page identifier
	PageID string `json:"pageid"`

	// Title is the page title
	Title string `json:"title"`

	// Extract is the plain-text body of the page
	Extract string `json:"extract"`
}
