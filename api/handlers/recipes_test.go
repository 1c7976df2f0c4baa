package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"recipes-app-api/api/dto/responses"
	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"
	"recipes-app-api/core/interfaces"
	"recipes-app-api/core/recipes"
	"recipes-app-api/core/status"
	"recipes-app-api/infrastructure/cache/memory"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://example.com/recipes.json"

// stubFetcher returns a fixed collection or error
type stubFetcher struct {
	mu      sync.Mutex
	recipes domain.RecipeCollection
	err     error
}

func (f *stubFetcher) FetchRecipes(ctx context.Context, endpoint string) (domain.RecipeCollection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recipes, f.err
}

func (f *stubFetcher) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes, f.err = nil, err
}

func sampleRecipes() domain.RecipeCollection {
	return domain.RecipeCollection{
		{ID: "1", Name: "Apple Pie", Cuisine: "American", SourceURL: domain.StringPtr("https://example.com/pie")},
		{ID: "2", Name: "Key Lime Pie", Cuisine: "American"},
		{ID: "3", Name: "Tiramisu", Cuisine: "Italian"},
	}
}

type testEnv struct {
	api     humatest.TestAPI
	fetcher *stubFetcher
	ctrl    *recipes.ListController
}

func setup(t *testing.T, withStatus bool) *testEnv {
	t.Helper()

	fetcher := &stubFetcher{recipes: sampleRecipes()}
	var opts []recipes.ControllerOption
	var reader StatusReader
	if withStatus {
		recorder := status.NewRecorder(interfaces.Dependencies{Cache: memory.NewMemoryCache()}, 0)
		opts = append(opts, recipes.WithRecorder(recorder))
		reader = recorder
	}
	ctrl := recipes.NewListController(fetcher, testEndpoint, opts...)
	t.Cleanup(ctrl.Close)

	_, api := humatest.New(t)
	NewRecipeHandler(ctrl, reader).RegisterRoutes(api)

	return &testEnv{api: api, fetcher: fetcher, ctrl: ctrl}
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestGetState_Idle(t *testing.T) {
	env := setup(t, false)

	resp := env.api.Get("/state")

	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[responses.StateResponse](t, resp.Body.String())
	assert.Equal(t, "idle", state.Phase)
	assert.Equal(t, testEndpoint, state.Endpoint)
	assert.Empty(t, state.Recipes)
	assert.Nil(t, state.Error)
	assert.Contains(t, resp.Body.String(), `"recipes":[]`)
}

func TestLoad_Success(t *testing.T) {
	env := setup(t, false)

	resp := env.api.Post("/load")

	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[responses.StateResponse](t, resp.Body.String())
	assert.Equal(t, "loaded", state.Phase)
	assert.EqualValues(t, 1, state.Generation)
	assert.Equal(t, 3, state.Total)
	assert.Equal(t, 3, state.Count)
	assert.Equal(t, "Apple Pie", state.Recipes[0].Name)
	assert.NotContains(t, resp.Body.String(), "photo_url_small")
}

func TestLoad_FailureIsReportedInBody(t *testing.T) {
	env := setup(t, false)
	env.fetcher.fail(coreerrors.NewServerError(503))

	resp := env.api.Post("/load")

	require.Equal(t, http.StatusOK, resp.Code)
	state := decode[responses.StateResponse](t, resp.Body.String())
	assert.Equal(t, "failed", state.Phase)
	require.NotNil(t, state.Error)
	assert.Equal(t, "server_error", state.Error.Kind)
	assert.Equal(t, 503, state.Error.StatusCode)
	assert.Equal(t, "The recipe source returned an error (503).", state.Error.Message)
	assert.Empty(t, state.Recipes)
}

func TestLoad_ReloadAfterFailure(t *testing.T) {
	env := setup(t, false)
	env.fetcher.fail(coreerrors.NewDecodingError(nil))
	env.api.Post("/load")

	env.fetcher.mu.Lock()
	env.fetcher.recipes, env.fetcher.err = sampleRecipes(), nil
	env.fetcher.mu.Unlock()

	state := decode[responses.StateResponse](t, env.api.Post("/load").Body.String())

	assert.Equal(t, "loaded", state.Phase)
	assert.EqualValues(t, 2, state.Generation)
	assert.Nil(t, state.Error)
}

func TestSetSearch(t *testing.T) {
	env := setup(t, false)
	env.api.Post("/load")

	resp := env.api.Put("/search", map[string]any{"query": "PIE"})

	require.Equal(t, http.StatusOK, resp.Code)
	list := decode[responses.RecipeListResponse](t, resp.Body.String())
	assert.Equal(t, "PIE", list.Query)
	assert.Equal(t, 2, list.Count)

	state := decode[responses.StateResponse](t, env.api.Get("/state").Body.String())
	assert.Equal(t, "PIE", state.Query)
	assert.Equal(t, 3, state.Total)
	assert.Equal(t, 2, state.Count)
}

func TestSetSearch_BeforeLoadIsEmpty(t *testing.T) {
	env := setup(t, false)

	resp := env.api.Put("/search", map[string]any{"query": "pie"})

	require.Equal(t, http.StatusOK, resp.Code)
	list := decode[responses.RecipeListResponse](t, resp.Body.String())
	assert.Equal(t, 0, list.Count)
	assert.Equal(t, "idle", env.ctrl.State().Phase.String(), "search must not trigger a load")
}

func TestSetSearch_QueryTooLong(t *testing.T) {
	env := setup(t, false)

	resp := env.api.Put("/search", map[string]any{"query": strings.Repeat("a", 257)})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "", env.ctrl.SearchQuery())
}

func TestListRecipes_NoMatches(t *testing.T) {
	env := setup(t, false)
	env.api.Post("/load")
	env.api.Put("/search", map[string]any{"query": "xyz"})

	resp := env.api.Get("/recipes")

	require.Equal(t, http.StatusOK, resp.Code)
	list := decode[responses.RecipeListResponse](t, resp.Body.String())
	assert.Equal(t, 0, list.Count)
	assert.NotNil(t, list.Recipes)
}

func TestGetRecipe(t *testing.T) {
	env := setup(t, false)
	env.api.Post("/load")
	env.api.Put("/search", map[string]any{"query": "tiramisu"})

	resp := env.api.Get("/recipes/1")

	require.Equal(t, http.StatusOK, resp.Code, "lookup ignores the search query")
	recipe := decode[responses.RecipeResponse](t, resp.Body.String())
	assert.Equal(t, "Apple Pie", recipe.Name)
	require.NotNil(t, recipe.SourceURL)
	assert.Equal(t, "https://example.com/pie", *recipe.SourceURL)
}

func TestGetRecipe_NotFound(t *testing.T) {
	env := setup(t, false)
	env.api.Post("/load")

	resp := env.api.Get("/recipes/missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "recipe not found: missing")
}

func TestGetStatus(t *testing.T) {
	env := setup(t, true)

	assert.Equal(t, http.StatusNotFound, env.api.Get("/status").Code)

	env.fetcher.fail(coreerrors.NewServerError(500))
	env.api.Post("/load")

	resp := env.api.Get("/status")
	require.Equal(t, http.StatusOK, resp.Code)
	rec := decode[responses.LoadStatusResponse](t, resp.Body.String())
	assert.Equal(t, testEndpoint, rec.Endpoint)
	assert.Equal(t, "failed", rec.Phase)
	require.NotNil(t, rec.Error)
	assert.Equal(t, "server_error", rec.Error.Kind)
	assert.Equal(t, 500, rec.Error.StatusCode)
}

func TestGetStatus_Disabled(t *testing.T) {
	env := setup(t, false)
	env.api.Post("/load")

	assert.Equal(t, http.StatusNotFound, env.api.Get("/status").Code)
}
