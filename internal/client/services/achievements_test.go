package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/loankeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAchievements(store kv.Store, ledger LedgerService) *achievementService {
	s := NewAchievementService(store, ledger, logging.Discard()).(*achievementService)
	s.now = fixedClock
	return s
}

func ids(v []models.AchievementView) []string {
	var out []string
	for _, a := range v {
		out = append(out, a.ID)
	}
	return out
}

func TestAchievements_RefreshReturnsOnlyNew(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	ledger := newTestLedger(store)
	ach := newTestAchievements(store, ledger)

	fresh, err := ach.Refresh(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, fresh)

	l, err := ledger.AddLoan(ctx, "alice", sampleLoan())
	require.NoError(t, err)
	_, err = ledger.MakePayment(ctx, "alice", l.ID, "50")
	require.NoError(t, err)

	fresh, err = ach.Refresh(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"first_payment"}, ids(fresh))
	assert.Equal(t, "First Step", fresh[0].Title)
	assert.True(t, fresh[0].EarnedAt.Equal(fixedNow))

	fresh, err = ach.Refresh(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, fresh, "already earned")

	_, err = ledger.MakePayment(ctx, "alice", l.ID, "950")
	require.NoError(t, err)
	fresh, err = ach.Refresh(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"quarter_progress", "halfway_hero", "almost_there", "first_loan_complete", "debt_free", "early_bird"}, ids(fresh))
}

func TestAchievements_NeverRevoked(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	ledger := newTestLedger(store)
	ach := newTestAchievements(store, ledger)

	l, err := ledger.AddLoan(ctx, "alice", sampleLoan())
	require.NoError(t, err)
	_, err = ledger.MakePayment(ctx, "alice", l.ID, "1000")
	require.NoError(t, err)
	_, err = ach.Refresh(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, ledger.DeleteLoan(ctx, "alice", l.ID))
	_, err = ach.Refresh(ctx, "alice")
	require.NoError(t, err)

	list, err := ach.List(ctx, "alice")
	require.NoError(t, err)
	assert.Contains(t, ids(list), "debt_free")

	rebuilt, err := ach.Rebuild(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, rebuilt, "a rebuild re-derives from the current ledger")
}

func TestAchievements_ListSkipsUnknownIDs(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, kv.SetJSON(ctx, store, kv.AchievementsKey("alice"), []models.EarnedAchievement{
		{ID: "retired_badge", EarnedAt: fixedNow},
		{ID: "first_payment", EarnedAt: fixedNow},
	}))

	list, err := newTestAchievements(store, newTestLedger(store)).List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"first_payment"}, ids(list))
}

func TestAchievements_LedgerFailure(t *testing.T) {
	store := &failingStore{Store: kv.NewMemoryStore(), getErr: errBoom}
	ach := newTestAchievements(store, newTestLedger(store))

	_, err := ach.Refresh(context.Background(), "alice")
	require.ErrorIs(t, err, errBoom)
}
