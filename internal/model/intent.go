package model

// SearchIntent is what the query analyzer extracts from a free-text
// request: ingredients mentioned, macro requirements, and any residual
// search terms.
type SearchIntent struct {
	Ingredients []string    `json:"ingredients,omitempty"`
	Macros      MacroTarget `json:"macros,omitempty"`
	Query       string      `json:"query,omitempty"`
}
