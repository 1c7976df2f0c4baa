package requests

// SearchRequest replaces the current search query
type SearchRequest struct {
	Query string `json:"query" maxLength:"256" doc:"Case-insensitive substring matched against recipe names; empty shows everything"`
}
