//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"parking-settlement/internal/domain/subscription"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSubscription_Covers(t *testing.T) {
	spotID := uuid.New()
	sub := &subscription.Subscription{
		ID:       uuid.New(),
		SpotID:   spotID,
		Plates:   []string{"AB123CD", "xyz 987"},
		StartsOn: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndsOn:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Active:   true,
	}
	inRange := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		sub    *subscription.Subscription
		plate  string
		spotID uuid.UUID
		at     time.Time
		want   bool
	}{
		{name: "listed plate on its spot", sub: sub, plate: "AB123CD", spotID: spotID, at: inRange, want: true},
		{name: "plate formatting is ignored", sub: sub, plate: "xyz-987", spotID: spotID, at: inRange, want: true},
		{name: "last day is covered", sub: sub, plate: "AB123CD", spotID: spotID, at: time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC), want: true},
		{name: "after the range", sub: sub, plate: "AB123CD", spotID: spotID, at: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{name: "before the range", sub: sub, plate: "AB123CD", spotID: spotID, at: time.Date(2026, 2, 28, 23, 0, 0, 0, time.UTC)},
		{name: "another spot", sub: sub, plate: "AB123CD", spotID: uuid.New(), at: inRange},
		{name: "unlisted plate", sub: sub, plate: "ZZ000ZZ", spotID: spotID, at: inRange},
		{name: "inactive", sub: &subscription.Subscription{SpotID: spotID, Plates: sub.Plates, StartsOn: sub.StartsOn, EndsOn: sub.EndsOn}, plate: "AB123CD", spotID: spotID, at: inRange},
		{name: "nil subscription", plate: "AB123CD", spotID: spotID, at: inRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.sub.Covers(tc.plate, tc.spotID, tc.at))
		})
	}
}
