//go:build unit

package money_test

import (
	"testing"

	"parking-settlement/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := money.New(-1)
		require.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("arithmetic", func(t *testing.T) {
		base := money.FromCents(20000)
		inc := money.FromCents(15000)

		assert.Equal(t, int64(65000), base.Add(inc.Mul(3)).Cents())
		assert.True(t, base.Mul(0).IsZero())
		assert.Equal(t, base, money.Max(base, inc))
		assert.Equal(t, base, money.Max(inc, base))
		assert.Equal(t, "200.00", base.String())
	})

	t.Run("FromCents clamps negative input", func(t *testing.T) {
		assert.True(t, money.FromCents(-5).IsZero())
	})
}
