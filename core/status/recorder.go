// ABOUTME: Status recorder keeps the most recent load outcome per endpoint
// ABOUTME: Records are stored as JSON in whichever Cache backend is configured

package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recipes-app-api/core/domain"
	coreerrors "recipes-app-api/core/errors"
	"recipes-app-api/core/interfaces"
)

// DefaultTTL is how long a load record stays visible
const DefaultTTL = 24 * time.Hour

const keyPrefix = "status:last:"

// Recorder writes and reads LoadRecords through interfaces.Cache
type Recorder struct {
	cache  interfaces.Cache
	logger interfaces.Logger
	ttl    time.Duration
}

// NewRecorder creates a recorder. A ttl of zero or less uses DefaultTTL.
func NewRecorder(deps interfaces.Dependencies, ttl time.Duration) *Recorder {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Recorder{
		cache:  deps.Cache,
		logger: logger,
		ttl:    ttl,
	}
}

// Key returns the cache key for endpoint
func Key(endpoint string) string {
	return keyPrefix + endpoint
}

// Record stores rec as the latest load for its endpoint
func (r *Recorder) Record(ctx context.Context, rec domain.LoadRecord) error {
	if r.cache == nil {
		return nil
	}
	if rec.Endpoint == "" {
		return &coreerrors.ValidationError{Field: "endpoint", Message: "cannot be empty"}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return coreerrors.WrapError(err, "failed to encode load record")
	}
	if err := r.cache.Set(ctx, Key(rec.Endpoint), data, r.ttl); err != nil {
		return coreerrors.WrapError(err, "failed to store load record")
	}

	r.logger.Debug("Recorded load status", map[string]interface{}{
		"endpoint": rec.Endpoint,
		"phase":    rec.Phase,
	})
	return nil
}

// Last returns the latest record for endpoint, or a NotFoundError
func (r *Recorder) Last(ctx context.Context, endpoint string) (domain.LoadRecord, error) {
	notFound := &coreerrors.NotFoundError{Resource: "load status", ID: endpoint}
	if r.cache == nil {
		return domain.LoadRecord{}, notFound
	}

	data, err := r.cache.Get(ctx, Key(endpoint))
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return domain.LoadRecord{}, notFound
	}
	if err != nil {
		return domain.LoadRecord{}, coreerrors.WrapError(err, "failed to read load record")
	}

	var rec domain.LoadRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupt entry is as good as none; drop it so the next load replaces it
		if delErr := r.cache.Delete(ctx, Key(endpoint)); delErr != nil {
			r.logger.Warn("Failed to delete corrupt load record", map[string]interface{}{
				"endpoint": endpoint,
				"error":    delErr.Error(),
			})
		}
		return domain.LoadRecord{}, fmt.Errorf("corrupt load record for %s: %w", endpoint, err)
	}
	return rec, nil
}

// Clear removes the record for endpoint
func (r *Recorder) Clear(ctx context.Context, endpoint string) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Delete(ctx, Key(endpoint))
}
