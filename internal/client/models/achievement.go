package models

import "time"

// Achievement describes a milestone from the fixed rule table.
type Achievement struct {
	ID          string
	Title       string
	Description string
}

// EarnedAchievement is a cached record of an achievement unlocked by a user.
type EarnedAchievement struct {
	ID       string    `json:"id"`
	EarnedAt time.Time `json:"earnedAt"`
}

// AchievementView joins a definition with the time it was earned.
type AchievementView struct {
	Achievement
	EarnedAt time.Time
}
