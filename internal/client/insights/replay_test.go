package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay_Consistent(t *testing.T) {
	l := loan("a", "A", "1000", "0", "0", "0",
		pay("1", "300", "2025-01-01", "700"),
		pay("2", "900", "2025-02-01", "0"))

	r := Replay(l)
	require.Len(t, r.Balances, 2)
	assert.True(t, d("700").Equal(r.Balances[0]))
	assert.True(t, r.FinalBalance.IsZero(), "overpayment clamps at zero")
	assert.True(t, r.Consistent())
}

func TestReplay_DetectsEdits(t *testing.T) {
	l := loan("a", "A", "1000", "400", "0", "0",
		pay("1", "300", "2025-01-01", "700"))
	// the loan was edited after the payment
	r := Replay(l)

	assert.Empty(t, r.Mismatches)
	assert.False(t, r.BalanceMatches)
	assert.False(t, r.Consistent())
}

func TestReplay_DetectsSnapshotMismatch(t *testing.T) {
	l := loan("a", "A", "1000", "500", "0", "0",
		pay("1", "300", "2025-01-01", "600"),
		pay("2", "200", "2025-01-02", "500"))

	r := Replay(l)
	assert.Equal(t, []int{0}, r.Mismatches)
	assert.True(t, r.BalanceMatches)
}
