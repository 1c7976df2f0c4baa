package featureflags

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_Defaults(t *testing.T) {
	t.Setenv("TEST_FEATURE_STATUS_JOURNAL", "")
	t.Setenv("TEST_FEATURE_RATE_LIMIT", "")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, StatusJournal))
	assert.True(t, manager.IsEnabled(ctx, RateLimit))
	assert.False(t, manager.IsEnabled(ctx, "unknown_flag"))
}

func TestEnvManager_Values(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"false", "false", false},
		{"0", "0", false},
		{"other", "yes", false},
		{"empty uses default", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_RATE_LIMIT", tt.value)

			manager := NewEnvManager("TEST_")

			assert.Equal(t, tt.expected, manager.IsEnabled(context.Background(), RateLimit))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	t.Setenv("TEST_FEATURE_STATUS_JOURNAL", "true")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, StatusJournal))

	manager.SetEnabled(StatusJournal, false)
	assert.False(t, manager.IsEnabled(ctx, StatusJournal))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	t.Setenv("TEST_FEATURE_STATUS_JOURNAL", "0")
	t.Setenv("TEST_FEATURE_RATE_LIMIT", "")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.Equal(t, map[FeatureFlag]bool{
		StatusJournal: false,
		RateLimit:     true,
	}, manager.GetAllFlags())
}

func TestStaticManager(t *testing.T) {
	flags := map[FeatureFlag]bool{StatusJournal: true}
	manager := NewStaticManager(flags)
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, StatusJournal))
	assert.False(t, manager.IsEnabled(ctx, RateLimit))

	manager.SetEnabled(RateLimit, true)
	assert.True(t, manager.IsEnabled(ctx, RateLimit))
	assert.False(t, flags[RateLimit], "caller map must not be modified")

	assert.Equal(t, map[FeatureFlag]bool{StatusJournal: true, RateLimit: true}, manager.GetAllFlags())
}

func TestStaticManager_NilMap(t *testing.T) {
	manager := NewStaticManager(nil)

	assert.False(t, manager.IsEnabled(context.Background(), RateLimit))
	manager.SetEnabled(RateLimit, true)
	assert.True(t, manager.IsEnabled(context.Background(), RateLimit))
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				manager.SetEnabled(StatusJournal, j%2 == 0)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = manager.IsEnabled(ctx, StatusJournal)
			}
		}()
	}
	wg.Wait()
}

func TestFeatureFlagNames(t *testing.T) {
	assert.Equal(t, FeatureFlag("status_journal"), StatusJournal)
	assert.Equal(t, FeatureFlag("rate_limit"), RateLimit)
}
