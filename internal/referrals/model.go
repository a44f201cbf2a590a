package referrals

// Stats is the referral-rewards summary shown on the rewards page. It is
// static in this scope; no user action updates it.
type Stats struct {
	Code           string `json:"code"`
	EarningsCents  int    `json:"earnings_cents"`
	FriendsInvited int    `json:"friends_invited"`
}

// Entry is one row of referral history.
type Entry struct {
	Name           string `json:"name"`
	JoinedWeeksAgo int    `json:"joined_weeks_ago"`
	RewardCents    int    `json:"reward_cents"`
}
