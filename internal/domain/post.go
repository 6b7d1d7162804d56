package domain

import (
	"time"
)

// Post is a published or draft article written by a user.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	AuthorID    string     `json:"author_id"`
	CategoryID  *string    `json:"category_id,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostFilter narrows post listings. Zero values mean "no constraint".
type PostFilter struct {
	CategorySlug string
	AuthorID     string
	Published    *bool
	Search       string
}
