package recipes

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"recipes-app-api/core/domain"
	"recipes-app-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	calls   atomic.Int32
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls.Add(1)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// netHTTPClient drives a real http.Client so tests can hit httptest servers
type netHTTPClient struct {
	client *http.Client
}

func (c *netHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	return &netResponse{resp: resp}, nil
}

type netResponse struct {
	resp *http.Response
}

func (r *netResponse) StatusCode() int        { return r.resp.StatusCode }
func (r *netResponse) Body() io.ReadCloser    { return r.resp.Body }
func (r *netResponse) Header(k string) string { return r.resp.Header.Get(k) }

// fetchResult is what a mockFetcher hands back for one call
type fetchResult struct {
	recipes domain.RecipeCollection
	err     error
}

// mockFetcher returns queued results; when gate is set each call blocks
// until the test sends on it or the context ends
type mockFetcher struct {
	mu      sync.Mutex
	results []fetchResult
	calls   atomic.Int32
	gate    chan struct{}
	started chan struct{}
}

func (m *mockFetcher) FetchRecipes(ctx context.Context, endpoint string) (domain.RecipeCollection, error) {
	m.calls.Add(1)
	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.gate != nil {
		select {
		case <-m.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.results) == 0 {
		return domain.RecipeCollection{}, nil
	}
	res := m.results[0]
	if len(m.results) > 1 {
		m.results = m.results[1:]
	}
	return res.recipes, res.err
}

// mockRecorder captures recorded loads; when gate is set Record blocks
// until the test sends on it
type mockRecorder struct {
	mu      sync.Mutex
	records []domain.LoadRecord
	err     error
	gate    chan struct{}
	entered chan struct{}
}

func (m *mockRecorder) Record(ctx context.Context, record domain.LoadRecord) error {
	if m.entered != nil {
		m.entered <- struct{}{}
	}
	if m.gate != nil {
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return m.err
}

func (m *mockRecorder) all() []domain.LoadRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.LoadRecord, len(m.records))
	copy(out, m.records)
	return out
}
