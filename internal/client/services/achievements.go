package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/loankeeper/internal/client/insights"
	"github.com/dmitrijs2005/loankeeper/internal/client/models"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/loankeeper/internal/logging"
)

// AchievementService maintains the per-user cache of earned achievements.
// The cache is derived from the loan ledger and can be rebuilt at any time;
// entries are never revoked by Refresh.
type AchievementService interface {
	// Refresh records achievements the ledger now satisfies and returns
	// only the newly earned ones.
	Refresh(ctx context.Context, username string) ([]models.AchievementView, error)
	// List returns earned achievements in the order they were earned.
	List(ctx context.Context, username string) ([]models.AchievementView, error)
	// Rebuild discards the cache and evaluates the ledger from scratch.
	Rebuild(ctx context.Context, username string) ([]models.AchievementView, error)
}

type achievementService struct {
	store  kv.Store
	ledger LedgerService
	log    logging.Logger
	now    func() time.Time
}

func NewAchievementService(store kv.Store, ledger LedgerService, log logging.Logger) AchievementService {
	return &achievementService{store: store, ledger: ledger, log: log, now: time.Now}
}

func (s *achievementService) load(ctx context.Context, username string) ([]models.EarnedAchievement, error) {
	var earned []models.EarnedAchievement
	if _, err := kv.GetJSON(ctx, s.store, kv.AchievementsKey(username), &earned); err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	return earned, nil
}

func (s *achievementService) Refresh(ctx context.Context, username string) ([]models.AchievementView, error) {
	earned, err := s.load(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, username, earned)
}

func (s *achievementService) Rebuild(ctx context.Context, username string) ([]models.AchievementView, error) {
	if _, err := s.evaluate(ctx, username, nil); err != nil {
		return nil, err
	}
	return s.List(ctx, username)
}

// evaluate appends newly satisfied ids to earned and persists the result
// when it changed, or when starting from an empty cache.
func (s *achievementService) evaluate(ctx context.Context, username string, earned []models.EarnedAchievement) ([]models.AchievementView, error) {
	loans, err := s.ledger.Loans(ctx, username)
	if err != nil {
		return nil, err
	}

	have := make(map[string]struct{}, len(earned))
	for _, e := range earned {
		have[e.ID] = struct{}{}
	}

	now := s.now()
	var fresh []models.AchievementView
	for _, id := range insights.EvaluateAchievements(loans, insights.ComputeStats(loans)) {
		if _, ok := have[id]; ok {
			continue
		}
		def, _ := insights.AchievementByID(id)
		earned = append(earned, models.EarnedAchievement{ID: id, EarnedAt: now})
		fresh = append(fresh, models.AchievementView{Achievement: def, EarnedAt: now})
	}

	if len(fresh) == 0 && earned != nil {
		return nil, nil
	}
	if earned == nil {
		earned = []models.EarnedAchievement{}
	}
	if err := kv.SetJSON(ctx, s.store, kv.AchievementsKey(username), earned); err != nil {
		return nil, fmt.Errorf("save achievements: %w", err)
	}

	for _, a := range fresh {
		s.log.Info(ctx, "achievement earned", "username", username, "achievement", a.ID)
	}
	return fresh, nil
}

func (s *achievementService) List(ctx context.Context, username string) ([]models.AchievementView, error) {
	earned, err := s.load(ctx, username)
	if err != nil {
		return nil, err
	}

	out := make([]models.AchievementView, 0, len(earned))
	for _, e := range earned {
		def, ok := insights.AchievementByID(e.ID)
		if !ok {
			continue
		}
		out = append(out, models.AchievementView{Achievement: def, EarnedAt: e.EarnedAt})
	}
	return out, nil
}
