// Package core contains the recipe data layer. It has no web framework
// or terminal dependencies; hosts in api/ and app/ only render what it
// produces.
//
// Sub-packages:
//
// - domain: Recipe, RecipeCollection, LoadState and video id derivation
// - errors: the NetworkError taxonomy plus validation and not-found errors
// - interfaces: contracts for external dependencies (cache, HTTP, logger)
// - recipes: the repository (fetch and decode) and the list controller
// - search: the pure name filter behind the visible list
// - status: the journal of the last completed load per endpoint
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	repo := recipes.NewRepository(deps)
//	ctrl := recipes.NewListController(repo, "https://example.com/recipes.json",
//	    recipes.WithRecorder(status.NewRecorder(deps, 0)))
//	defer ctrl.Close()
//
//	state := ctrl.Load(ctx)
//	if state.Phase == domain.PhaseFailed {
//	    // errors.KindOf(state.Err) is one of the four network error kinds
//	}
//	ctrl.SetSearchQuery("pie")
//	visible := ctrl.VisibleList()
package core
