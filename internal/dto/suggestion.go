package dto

// AddSuggestionRequest carries a new custom category suggestion.
type AddSuggestionRequest struct {
	Text string `json:"text" binding:"required"`
}

// SuggestionListResponse lists the combined default and custom suggestions
// for one transaction type.
type SuggestionListResponse struct {
	Type        string   `json:"type"`
	Suggestions []string `json:"suggestions"`
}
