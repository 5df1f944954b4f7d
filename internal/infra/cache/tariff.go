package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/tariff"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TariffLoader is the source of truth behind the cache.
type TariffLoader interface {
	Rules(ctx context.Context, establishmentID uuid.UUID) ([]tariff.Rule, error)
}

type cachedRule struct {
	ID               uuid.UUID  `json:"id"`
	TemplateID       *uuid.UUID `json:"template_id,omitempty"`
	Category         string     `json:"category"`
	Unit             string     `json:"unit"`
	BasePrice        int64      `json:"base_price_cents"`
	IncrementalPrice int64      `json:"incremental_price_cents"`
}

// TariffCache is a read-through cache of each establishment's tariff catalog.
// Redis failures fall back to the loader; they never fail a fee computation.
type TariffCache struct {
	client *redis.Client
	loader TariffLoader
	ttl    time.Duration
	prefix string
}

func NewTariffCache(client *redis.Client, loader TariffLoader, ttl time.Duration, prefix string) *TariffCache {
	return &TariffCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		prefix: prefix,
	}
}

func (c *TariffCache) key(establishmentID uuid.UUID) string {
	return c.prefix + ":tariffs:" + establishmentID.String()
}

func (c *TariffCache) Rules(ctx context.Context, establishmentID uuid.UUID) ([]tariff.Rule, error) {
	if c.ttl > 0 {
		if rules, ok := c.get(ctx, establishmentID); ok {
			return rules, nil
		}
	}

	rules, err := c.loader.Rules(ctx, establishmentID)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		c.set(ctx, establishmentID, rules)
	}
	return rules, nil
}

// Invalidate drops the cached catalog so the next read goes to the loader.
func (c *TariffCache) Invalidate(ctx context.Context, establishmentID uuid.UUID) error {
	return c.client.Del(ctx, c.key(establishmentID)).Err()
}

func (c *TariffCache) get(ctx context.Context, establishmentID uuid.UUID) ([]tariff.Rule, bool) {
	raw, err := c.client.Get(ctx, c.key(establishmentID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("tariff cache read failed", "establishment_id", establishmentID, "error", err.Error())
		}
		return nil, false
	}

	var stored []cachedRule
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("tariff cache entry is corrupt", "establishment_id", establishmentID, "error", err.Error())
		return nil, false
	}

	rules := make([]tariff.Rule, 0, len(stored))
	for _, s := range stored {
		rule, err := tariff.NewRule(s.ID, s.TemplateID, s.Category, tariff.BillingUnit(s.Unit),
			money.FromCents(s.BasePrice), money.FromCents(s.IncrementalPrice))
		if err != nil {
			slog.Warn("tariff cache entry is corrupt", "establishment_id", establishmentID, "error", err.Error())
			return nil, false
		}
		rules = append(rules, rule)
	}
	return rules, true
}

func (c *TariffCache) set(ctx context.Context, establishmentID uuid.UUID, rules []tariff.Rule) {
	stored := make([]cachedRule, 0, len(rules))
	for _, r := range rules {
		stored = append(stored, cachedRule{
			ID:               r.ID,
			TemplateID:       r.TemplateID,
			Category:         r.Category,
			Unit:             string(r.Unit),
			BasePrice:        r.BasePrice.Cents(),
			IncrementalPrice: r.IncrementalPrice.Cents(),
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		slog.Warn("tariff cache encode failed", "establishment_id", establishmentID, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, c.key(establishmentID), raw, c.ttl).Err(); err != nil {
		slog.Warn("tariff cache write failed", "establishment_id", establishmentID, "error", err.Error())
	}
}
