//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/queries"
	queriesmock "parking-settlement/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettlementQueries_List(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	est := uuid.New()

	testCases := []struct {
		name        string
		filter      queries.SettlementFilter
		expectLimit int32
		expectErr   error
	}{
		{
			name:        "success: default limit",
			filter:      queries.SettlementFilter{EstablishmentID: est, From: from, To: from.AddDate(0, 0, 7)},
			expectLimit: queries.DefaultListLimit,
		},
		{
			name:        "success: limit is capped",
			filter:      queries.SettlementFilter{EstablishmentID: est, From: from, To: from.AddDate(0, 0, 7), Limit: 10000},
			expectLimit: queries.MaxListLimit,
		},
		{
			name:        "success: explicit limit",
			filter:      queries.SettlementFilter{EstablishmentID: est, From: from, To: from.AddDate(0, 0, 31), Limit: 20},
			expectLimit: 20,
		},
		{
			name:      "error: from after to",
			filter:    queries.SettlementFilter{EstablishmentID: est, From: from, To: from.Add(-time.Hour)},
			expectErr: queries.ErrInvalidRange,
		},
		{
			name:      "error: range over 31 days",
			filter:    queries.SettlementFilter{EstablishmentID: est, From: from, To: from.AddDate(0, 0, 32)},
			expectErr: queries.ErrInvalidRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockSettlementReadStore(ctrl)
			q := queries.NewSettlementQueries(store)

			views := []*queries.SettlementView{{ID: uuid.New(), AmountCents: 20000, Method: "cash"}}
			if tc.expectErr == nil {
				store.EXPECT().
					ListByEstablishment(gomock.Any(), est, tc.filter.From, tc.filter.To, tc.expectLimit).
					Return(views, nil)
			}

			got, err := q.List(context.Background(), tc.filter)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, views, got)
		})
	}
}
