// ABOUTME: Badge model for the achievement system.
// ABOUTME: Unlocking is a one-way transition that stamps wall-clock time once.
package models

import "time"

// Badge identifiers. These are stable keys in the persisted snapshot.
const (
	BadgeStreakWeek   = "streak-week"
	BadgeBalancedWeek = "balanced-week"
	BadgePerfectWeek  = "perfect-week"
	BadgeHydratedDay  = "hydrated-day"
)

// Badge is a one-way achievement flag.
type Badge struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Unlocked    bool       `json:"unlocked" yaml:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty" yaml:"unlocked_at,omitempty"`
}

// Unlock marks the badge unlocked at the given time. Already-unlocked
// badges keep their original timestamp. Returns true on the first unlock.
func (b *Badge) Unlock(now time.Time) bool {
	if b.Unlocked {
		return false
	}
	b.Unlocked = true
	b.UnlockedAt = &now
	return true
}

// DefaultBadges returns the full locked badge set.
func DefaultBadges() []Badge {
	return []Badge{
		{
			ID:          BadgeStreakWeek,
			Name:        "Week Streak",
			Description: "Log at least one food every day for 7 days",
		},
		{
			ID:          BadgeBalancedWeek,
			Name:        "Balanced Week",
			Description: "Stay within 10% of every macro goal for 7 days",
		},
		{
			ID:          BadgePerfectWeek,
			Name:        "Perfect Week",
			Description: "Earn an A+ grade 7 days in a row",
		},
		{
			ID:          BadgeHydratedDay,
			Name:        "Hydrated",
			Description: "Hit your water target for the day",
		},
	}
}
