package referrals

import (
	"context"
	"fmt"
)

// Repository defines read-only access to referral data.
type Repository interface {
	GetStats(ctx context.Context) (*Stats, error)
	ListHistory(ctx context.Context) ([]Entry, error)
}

// InMemoryRepository serves the compiled-in referral record.
type InMemoryRepository struct {
	stats   Stats
	history []Entry
}

// NewInMemoryRepository creates a repository seeded with the static referral data.
func NewInMemoryRepository() *InMemoryRepository {
	r := &InMemoryRepository{
		stats: Stats{
			Code:           "LUXE-2024-JDOE",
			EarningsCents:  12000,
			FriendsInvited: 3,
		},
	}
	for i := 1; i <= r.stats.FriendsInvited; i++ {
		r.history = append(r.history, Entry{
			Name:           fmt.Sprintf("Friend #%d", i),
			JoinedWeeksAgo: i,
			RewardCents:    2000,
		})
	}
	return r
}

// GetStats returns the referral summary.
func (r *InMemoryRepository) GetStats(ctx context.Context) (*Stats, error) {
	stats := r.stats
	return &stats, nil
}

// ListHistory returns referral history rows, most recent first.
func (r *InMemoryRepository) ListHistory(ctx context.Context) ([]Entry, error) {
	return r.history, nil
}
