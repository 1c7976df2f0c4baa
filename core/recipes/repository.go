// ABOUTME: Recipe repository fetches and decodes one recipe collection per call
// ABOUTME: Every failure is classified into the closed NetworkError taxonomy

package recipes

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"
	"recipes-app-api/core/interfaces"
)

const (
	// DefaultCollectionKey is the top-level member holding the recipe array
	DefaultCollectionKey = "recipes"

	// DefaultIDKey is the record member holding the recipe id
	DefaultIDKey = "id"

	// maxBodyBytes bounds how much of a success body is decoded
	maxBodyBytes = 16 << 20
)

// Fetcher is what the list controller needs from a repository
type Fetcher interface {
	FetchRecipes(ctx context.Context, endpoint string) (domain.RecipeCollection, error)
}

// Repository fetches recipe collections over HTTP. It never retries and
// never caches between calls.
type Repository struct {
	deps          interfaces.Dependencies
	collectionKey string
	idKey         string
	extractor     domain.VideoIDExtractor
}

// RepositoryOption configures a Repository
type RepositoryOption func(*Repository)

// WithCollectionKey sets the JSON member that holds the recipe array
func WithCollectionKey(key string) RepositoryOption {
	return func(r *Repository) {
		if key != "" {
			r.collectionKey = key
		}
	}
}

// WithIDKey sets the record member that holds the recipe id
func WithIDKey(key string) RepositoryOption {
	return func(r *Repository) {
		if key != "" {
			r.idKey = key
		}
	}
}

// WithVideoIDExtractor replaces the default YouTube id extractor
func WithVideoIDExtractor(extractor domain.VideoIDExtractor) RepositoryOption {
	return func(r *Repository) {
		r.extractor = extractor
	}
}

// NewRepository creates a repository using deps.HTTPClient for transport
func NewRepository(deps interfaces.Dependencies, opts ...RepositoryOption) *Repository {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	r := &Repository{
		deps:          deps,
		collectionKey: DefaultCollectionKey,
		idKey:         DefaultIDKey,
		extractor:     domain.YouTubeExtractor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FetchRecipesFrom resolves path against base and fetches the result.
// A base or path that cannot form a valid endpoint fails with invalid_url.
func (r *Repository) FetchRecipesFrom(ctx context.Context, base, path string) (domain.RecipeCollection, error) {
	endpoint, err := BuildEndpoint(base, path)
	if err != nil {
		return nil, err
	}
	return r.FetchRecipes(ctx, endpoint)
}

// FetchRecipes performs exactly one GET against endpoint and decodes the
// whole collection, or fails as a unit with a *errors.NetworkError.
func (r *Repository) FetchRecipes(ctx context.Context, endpoint string) (domain.RecipeCollection, error) {
	if err := validateEndpoint(endpoint); err != nil {
		r.logFailure(endpoint, err)
		return nil, err
	}

	if r.deps.HTTPClient == nil {
		err := coreerrors.NewInvalidResponseError(fmt.Errorf("HTTP client not configured"))
		r.logFailure(endpoint, err)
		return nil, err
	}

	start := time.Now()
	r.deps.Logger.Debug("Fetching recipes", map[string]interface{}{
		"endpoint": endpoint,
	})

	resp, err := r.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		netErr := coreerrors.NewInvalidResponseError(err)
		r.logFailure(endpoint, netErr)
		return nil, netErr
	}
	if resp == nil {
		netErr := coreerrors.NewInvalidResponseError(fmt.Errorf("no response"))
		r.logFailure(endpoint, netErr)
		return nil, netErr
	}
	defer resp.Body().Close()

	status := resp.StatusCode()
	if status < 100 || status > 999 {
		netErr := coreerrors.NewInvalidResponseError(fmt.Errorf("malformed status code %d", status))
		r.logFailure(endpoint, netErr)
		return nil, netErr
	}
	if status < 200 || status > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body(), maxBodyBytes))
		netErr := coreerrors.NewServerError(status)
		r.logFailure(endpoint, netErr)
		return nil, netErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes+1))
	if err != nil {
		netErr := coreerrors.NewInvalidResponseError(fmt.Errorf("failed to read response: %w", err))
		r.logFailure(endpoint, netErr)
		return nil, netErr
	}
	if len(body) > maxBodyBytes {
		netErr := coreerrors.NewDecodingError(fmt.Errorf("response body exceeds %d bytes", maxBodyBytes))
		r.logFailure(endpoint, netErr)
		return nil, netErr
	}

	recipes, err := decodeCollection(body, r.collectionKey, r.idKey, r.extractor)
	if err != nil {
		netErr := coreerrors.NewDecodingError(err)
		r.logFailure(endpoint, netErr)
		return nil, netErr
	}

	r.deps.Logger.Debug("Fetched recipes", map[string]interface{}{
		"endpoint":    endpoint,
		"status":      status,
		"recipes":     len(recipes),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return recipes, nil
}

func (r *Repository) logFailure(endpoint string, err error) {
	r.deps.Logger.Warn("Recipe fetch failed", map[string]interface{}{
		"endpoint":    endpoint,
		"kind":        string(coreerrors.KindOf(err)),
		"status_code": coreerrors.StatusCodeOf(err),
		"error":       err.Error(),
	})
}

// BuildEndpoint resolves path against base. Both must form an absolute
// http(s) URL.
func BuildEndpoint(base, path string) (string, error) {
	baseURL, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", coreerrors.NewInvalidURLError(err)
	}
	ref, err := url.Parse(strings.TrimSpace(path))
	if err != nil {
		return "", coreerrors.NewInvalidURLError(err)
	}
	endpoint := baseURL.ResolveReference(ref).String()
	if err := validateEndpoint(endpoint); err != nil {
		return "", err
	}
	return endpoint, nil
}

func validateEndpoint(endpoint string) error {
	if strings.TrimSpace(endpoint) == "" {
		return coreerrors.NewInvalidURLError(fmt.Errorf("endpoint is empty"))
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return coreerrors.NewInvalidURLError(err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return coreerrors.NewInvalidURLError(fmt.Errorf("unsupported scheme %q", u.Scheme))
	}
	if u.Host == "" {
		return coreerrors.NewInvalidURLError(fmt.Errorf("missing host"))
	}
	return nil
}
