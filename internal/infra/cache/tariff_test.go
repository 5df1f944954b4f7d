//go:build unit

package cache_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/tariff"
	"parking-settlement/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	rules []tariff.Rule
	err   error
	calls int
}

func (l *countingLoader) Rules(_ context.Context, _ uuid.UUID) ([]tariff.Rule, error) {
	l.calls++
	return l.rules, l.err
}

func sampleRules(t *testing.T) []tariff.Rule {
	t.Helper()
	templateID := uuid.New()
	hourly, err := tariff.NewRule(uuid.New(), nil, "car", tariff.UnitHourly, money.FromCents(20000), money.FromCents(15000))
	require.NoError(t, err)
	daily, err := tariff.NewRule(uuid.New(), &templateID, "car", tariff.UnitDaily, money.FromCents(150000), money.Zero())
	require.NoError(t, err)
	return []tariff.Rule{hourly, daily}
}

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestTariffCache_RedisDownFallsBackToLoader(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	loader := &countingLoader{rules: sampleRules(t)}
	c := cache.NewTariffCache(client, loader, time.Minute, "test")

	rules, err := c.Rules(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Len(t, rules, 2)
	assert.Equal(t, 1, loader.calls)
}

func TestTariffCache_LoaderErrorPropagates(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	loadErr := errors.New("db down")
	c := cache.NewTariffCache(client, &countingLoader{err: loadErr}, time.Minute, "test")

	_, err := c.Rules(context.Background(), uuid.New())

	assert.ErrorIs(t, err, loadErr)
}

func TestTariffCache_ZeroTTLBypassesRedis(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	loader := &countingLoader{rules: sampleRules(t)}
	c := cache.NewTariffCache(client, loader, 0, "test")

	for i := 0; i < 3; i++ {
		_, err := c.Rules(context.Background(), uuid.New())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, loader.calls)
}

// Runs against a real Redis when REDIS_TEST_ADDR is set.
func TestTariffCache_ReadThrough(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set; skipping redis integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx := context.Background()
	establishmentID := uuid.New()
	want := sampleRules(t)
	loader := &countingLoader{rules: want}
	c := cache.NewTariffCache(client, loader, time.Minute, "test-"+uuid.NewString())

	first, err := c.Rules(ctx, establishmentID)
	require.NoError(t, err)
	second, err := c.Rules(ctx, establishmentID)
	require.NoError(t, err)

	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, want, first)
	assert.Equal(t, want, second)

	require.NoError(t, c.Invalidate(ctx, establishmentID))
	_, err = c.Rules(ctx, establishmentID)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls)
}
