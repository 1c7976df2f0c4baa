// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Failed states become an error description, never a transport failure

package mappers

import (
	"recipes-app-api/api/dto/responses"
	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"
)

// ToRecipeResponse converts a domain Recipe to a RecipeResponse DTO
func ToRecipeResponse(r domain.Recipe) responses.RecipeResponse {
	return responses.RecipeResponse{
		ID:             r.ID,
		Name:           r.Name,
		Cuisine:        r.Cuisine,
		PhotoURLSmall:  r.PhotoURLSmall,
		PhotoURLLarge:  r.PhotoURLLarge,
		YouTubeURL:     r.YouTubeURL,
		YouTubeVideoID: r.YouTubeVideoID,
		SourceURL:      r.SourceURL,
	}
}

// ToRecipeResponses converts a collection, never returning nil
func ToRecipeResponses(recipes domain.RecipeCollection) []responses.RecipeResponse {
	out := make([]responses.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, ToRecipeResponse(r))
	}
	return out
}

// ToErrorResponse describes err, or returns nil when err is nil
func ToErrorResponse(err error) *responses.ErrorResponse {
	if err == nil {
		return nil
	}
	return &responses.ErrorResponse{
		Kind:       string(coreerrors.KindOf(err)),
		StatusCode: coreerrors.StatusCodeOf(err),
		Message:    coreerrors.UserMessage(err),
	}
}

// ToStateResponse combines a state snapshot with the visible list
func ToStateResponse(state domain.LoadState, endpoint, query string, visible domain.RecipeCollection) responses.StateResponse {
	return responses.StateResponse{
		Phase:      state.Phase.String(),
		Generation: state.Generation,
		Endpoint:   endpoint,
		Query:      query,
		Total:      len(state.Recipes),
		Count:      len(visible),
		Recipes:    ToRecipeResponses(visible),
		Error:      ToErrorResponse(state.Err),
	}
}

// ToLoadStatusResponse converts a journal record
func ToLoadStatusResponse(rec domain.LoadRecord) responses.LoadStatusResponse {
	resp := responses.LoadStatusResponse{
		Endpoint:    rec.Endpoint,
		Generation:  rec.Generation,
		Phase:       rec.Phase,
		RecipeCount: rec.RecipeCount,
		StartedAt:   rec.StartedAt,
		FinishedAt:  rec.FinishedAt,
		DurationMS:  rec.Duration().Milliseconds(),
	}
	if rec.ErrorKind != "" {
		resp.Error = &responses.ErrorResponse{
			Kind:       rec.ErrorKind,
			StatusCode: rec.StatusCode,
			Message:    rec.Error,
		}
	}
	return resp
}
