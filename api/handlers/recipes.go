// ABOUTME: Recipe handlers for the Huma API
// ABOUTME: Exposes the list controller state, reloads, search and the last load status

package handlers

import (
	"context"
	"net/http"

	"recipes-app-api/api/dto/mappers"
	"recipes-app-api/api/dto/requests"
	"recipes-app-api/api/dto/responses"
	"recipes-app-api/core/domain"
	"recipes-app-api/core/errors"
	"recipes-app-api/core/search"

	"github.com/danielgtaylor/huma/v2"
)

// ListController is the part of the recipe controller the API drives
type ListController interface {
	Load(ctx context.Context) domain.LoadState
	State() domain.LoadState
	VisibleList() domain.RecipeCollection
	SetSearchQuery(query string)
	SearchQuery() string
	Endpoint() string
}

// StatusReader returns the last recorded load for an endpoint
type StatusReader interface {
	Last(ctx context.Context, endpoint string) (domain.LoadRecord, error)
}

// RecipeHandler handles recipe-related HTTP requests
type RecipeHandler struct {
	controller ListController
	status     StatusReader
}

// NewRecipeHandler creates a new recipe handler. status may be nil when
// the journal is disabled.
func NewRecipeHandler(controller ListController, status StatusReader) *RecipeHandler {
	return &RecipeHandler{
		controller: controller,
		status:     status,
	}
}

// RegisterRoutes registers all recipe-related routes
func (h *RecipeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getState",
		Method:      http.MethodGet,
		Path:        "/state",
		Summary:     "Get the list state",
		Description: "Returns the load phase, the visible recipes and the failure when the last load failed",
		Tags:        []string{"Recipes"},
	}, h.GetState)

	huma.Register(api, huma.Operation{
		OperationID: "loadRecipes",
		Method:      http.MethodPost,
		Path:        "/load",
		Summary:     "Load or reload the recipe collection",
		Description: "Fetches the collection again, replacing the current list. Concurrent calls share one fetch.",
		Tags:        []string{"Recipes"},
	}, h.Load)

	huma.Register(api, huma.Operation{
		OperationID: "setSearchQuery",
		Method:      http.MethodPut,
		Path:        "/search",
		Summary:     "Set the search query",
		Description: "Replaces the case-insensitive name filter and returns the visible recipes",
		Tags:        []string{"Recipes"},
	}, h.SetSearch)

	huma.Register(api, huma.Operation{
		OperationID: "listRecipes",
		Method:      http.MethodGet,
		Path:        "/recipes",
		Summary:     "List visible recipes",
		Tags:        []string{"Recipes"},
	}, h.ListRecipes)

	huma.Register(api, huma.Operation{
		OperationID: "getRecipe",
		Method:      http.MethodGet,
		Path:        "/recipes/{id}",
		Summary:     "Get one loaded recipe",
		Tags:        []string{"Recipes"},
	}, h.GetRecipe)

	huma.Register(api, huma.Operation{
		OperationID: "getLoadStatus",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Get the last recorded load",
		Tags:        []string{"Status"},
	}, h.GetStatus)
}

// StateOutput wraps the state response
type StateOutput struct {
	Body responses.StateResponse
}

// RecipeListOutput wraps the visible list
type RecipeListOutput struct {
	Body responses.RecipeListResponse
}

// SearchInput defines the input for SetSearch
type SearchInput struct {
	Body requests.SearchRequest
}

// GetRecipeInput defines the input for GetRecipe
type GetRecipeInput struct {
	ID string `path:"id" minLength:"1" doc:"Recipe identifier"`
}

// RecipeOutput wraps a single recipe
type RecipeOutput struct {
	Body responses.RecipeResponse
}

// LoadStatusOutput wraps the last load record
type LoadStatusOutput struct {
	Body responses.LoadStatusResponse
}

// GetState handles GET /state
func (h *RecipeHandler) GetState(ctx context.Context, _ *struct{}) (*StateOutput, error) {
	return h.stateOutput(h.controller.State()), nil
}

// Load handles POST /load. A failed fetch is reported in the body with 200.
func (h *RecipeHandler) Load(ctx context.Context, _ *struct{}) (*StateOutput, error) {
	return h.stateOutput(h.controller.Load(ctx)), nil
}

// SetSearch handles PUT /search
func (h *RecipeHandler) SetSearch(ctx context.Context, input *SearchInput) (*RecipeListOutput, error) {
	h.controller.SetSearchQuery(input.Body.Query)
	return h.listOutput(), nil
}

// ListRecipes handles GET /recipes
func (h *RecipeHandler) ListRecipes(ctx context.Context, _ *struct{}) (*RecipeListOutput, error) {
	return h.listOutput(), nil
}

// GetRecipe handles GET /recipes/{id}, looking through the whole loaded
// collection regardless of the search query
func (h *RecipeHandler) GetRecipe(ctx context.Context, input *GetRecipeInput) (*RecipeOutput, error) {
	recipe, ok := h.controller.State().Recipes.FindByID(input.ID)
	if !ok {
		return nil, toHumaError(&errors.NotFoundError{Resource: "recipe", ID: input.ID})
	}
	return &RecipeOutput{Body: mappers.ToRecipeResponse(recipe)}, nil
}

// GetStatus handles GET /status
func (h *RecipeHandler) GetStatus(ctx context.Context, _ *struct{}) (*LoadStatusOutput, error) {
	endpoint := h.controller.Endpoint()
	if h.status == nil {
		return nil, toHumaError(&errors.NotFoundError{Resource: "load status", ID: endpoint})
	}

	rec, err := h.status.Last(ctx, endpoint)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &LoadStatusOutput{Body: mappers.ToLoadStatusResponse(rec)}, nil
}

// stateOutput filters the snapshot itself so the list always matches the phase
func (h *RecipeHandler) stateOutput(state domain.LoadState) *StateOutput {
	query := h.controller.SearchQuery()
	visible := domain.RecipeCollection{}
	if state.IsLoaded() {
		visible = search.Filter(state.Recipes, query)
	}
	return &StateOutput{
		Body: mappers.ToStateResponse(state, h.controller.Endpoint(), query, visible),
	}
}

func (h *RecipeHandler) listOutput() *RecipeListOutput {
	visible := h.controller.VisibleList()
	return &RecipeListOutput{
		Body: responses.RecipeListResponse{
			Query:   h.controller.SearchQuery(),
			Count:   len(visible),
			Recipes: mappers.ToRecipeResponses(visible),
		},
	}
}
