// ABOUTME: Response DTOs for recipe list endpoints
// ABOUTME: Optional recipe fields are omitted from JSON when absent

package responses

import "time"

// RecipeResponse represents a recipe in API responses
type RecipeResponse struct {
	ID             string  `json:"id" doc:"Stable recipe identifier"`
	Name           string  `json:"name" doc:"Display name"`
	Cuisine        string  `json:"cuisine" doc:"Cuisine label"`
	PhotoURLSmall  *string `json:"photo_url_small,omitempty" doc:"Small photo URL"`
	PhotoURLLarge  *string `json:"photo_url_large,omitempty" doc:"Large photo URL"`
	YouTubeURL     *string `json:"youtube_url,omitempty" doc:"Video URL"`
	YouTubeVideoID *string `json:"youtube_video_id,omitempty" doc:"Video id derived from the video URL"`
	SourceURL      *string `json:"source_url,omitempty" doc:"Original recipe URL"`
}

// ErrorResponse describes why the last load failed
type ErrorResponse struct {
	Kind       string `json:"kind" enum:"invalid_url,invalid_response,server_error,decoding_error" doc:"Failure category"`
	StatusCode int    `json:"status_code,omitempty" doc:"Upstream HTTP status for server_error"`
	Message    string `json:"message" doc:"Human readable description"`
}

// StateResponse is the render-ready controller state
type StateResponse struct {
	Phase      string           `json:"phase" enum:"idle,loading,loaded,failed" doc:"Load phase"`
	Generation uint64           `json:"generation" doc:"Load generation the state belongs to"`
	Endpoint   string           `json:"endpoint" doc:"Collection URL"`
	Query      string           `json:"query" doc:"Current search query"`
	Total      int              `json:"total" doc:"Number of recipes in the loaded collection"`
	Count      int              `json:"count" doc:"Number of visible recipes"`
	Recipes    []RecipeResponse `json:"recipes" doc:"Visible recipes after filtering"`
	Error      *ErrorResponse   `json:"error,omitempty" doc:"Set when phase is failed"`
}

// RecipeListResponse is the visible list for a query
type RecipeListResponse struct {
	Query   string           `json:"query" doc:"Search query applied"`
	Count   int              `json:"count" doc:"Number of visible recipes"`
	Recipes []RecipeResponse `json:"recipes" doc:"Visible recipes"`
}

// LoadStatusResponse is the last recorded load for an endpoint
type LoadStatusResponse struct {
	Endpoint    string         `json:"endpoint" doc:"Collection URL"`
	Generation  uint64         `json:"generation" doc:"Load generation"`
	Phase       string         `json:"phase" doc:"Outcome phase"`
	RecipeCount int            `json:"recipe_count" doc:"Recipes in the loaded collection"`
	Error       *ErrorResponse `json:"error,omitempty" doc:"Failure details"`
	StartedAt   time.Time      `json:"started_at" doc:"When the fetch started"`
	FinishedAt  time.Time      `json:"finished_at" doc:"When the fetch finished"`
	DurationMS  int64          `json:"duration_ms" doc:"Fetch duration in milliseconds"`
}
