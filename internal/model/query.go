package model

import "strings"

// SearchRequest is the payload for POST /api/search.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// Validate rejects empty or whitespace-only queries.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// SearchResponse is the payload returned by POST /api/search.
type SearchResponse struct {
	Query      string        `json:"query"`
	Results    []MatchResult `json:"results"`
	TotalFound int           `json:"total_found"`
}

// ChatRequest is the payload for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// Validate rejects empty or whitespace-only messages.
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}

// ChatResponse is the payload returned by POST /api/chat.
type ChatResponse struct {
	Message  string `json:"message"`
	Response string `json:"response"`
}
