package dto

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type SuggestTestCasesRequest struct {
	Feature     string `json:"feature" binding:"required,min=1,max=500"`
	Description string `json:"description" binding:"max=20000"`
}

// RawAssigneeSuggestion is returned when the assistant's reply was not valid JSON.
type RawAssigneeSuggestion struct {
	RawSuggestion string `json:"rawSuggestion"`
}

// RawTestCaseSuggestions is returned when the assistant's reply was not a valid JSON array.
type RawTestCaseSuggestions struct {
	RawSuggestions string `json:"rawSuggestions"`
}
