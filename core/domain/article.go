// ABOUTME: Article domain models for the user's saved collection
// ABOUTME: Provides validation logic to ensure article data integrity

package domain

import "errors"

// Article represents a saved article in the user's collection.
type Article struct {
	// ID is the unique identifier assigned by the backend
	ID string `json:"id"`

	// Title is the article title; articles sharing a title form one group
	Title string `json:"title"`

	// Content is the stored HTML body
	Content string `json:"content"`

	// Snippet is a short plain-text teaser
	Snippet string `json:"snippet"`

	// PageID is the identifier of the source encyclopedia page
	PageID string `json:"pageid"`
}

// Validate checks if the article has valid required fields
func (a *Article) Validate() error {
	if a.ID == "" {
		return errors.New("article ID cannot be empty")
	}

	if a.Title == "" {
		return errors.New("article title cannot be empty")
	}

	return nil
}

// ArticleHistory represents one prior version of an article. Entries are
// immutable and ordered by the backend; the client only reads them.
type ArticleHistory struct {
	// ID is the identifier of the history entry
	ID string `json:"id"`

	// Title is the article title at the time of the version
	Title string `json:"title"`

	// Content is the HTML body at the time of the version
	Content string `json:"content"`

	// AuthorID identifies who produced the version
	AuthorID string `json:"authorId"`

	// CreatedAt is the backend timestamp of the version
	CreatedAt string `json:"createdAt"`
}
