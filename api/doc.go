// Package api provides the HTTP surface of the recipes service.
// It uses the Huma framework for OpenAPI documentation and request
// validation, mounted on a chi router.
//
// # Layout
//
//   - server.go: Huma API configuration and middleware stack
//   - handlers/: HTTP handlers driving the list controller
//   - dto/: request and response shapes, plus domain mappers
//   - middleware/: request ids, logging and per-IP rate limiting
//
// # Routes
//
//	GET  /state         load phase, visible recipes, failure details
//	POST /load          fetch the collection again
//	PUT  /search        replace the search query
//	GET  /recipes       visible recipes
//	GET  /recipes/{id}  one loaded recipe
//	GET  /status        last recorded load for the configured endpoint
//
// A failed load is not an HTTP failure: /load and /state answer 200 with
// phase "failed" and an error object naming the failure kind.
//
// # Usage
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewRecipeHandler(controller, recorder).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
package api
