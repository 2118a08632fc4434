package estimator

import "itda-server/internal/store"

const (
	scoreBase          = 50
	scorePerCategory   = 10
	scoreFollowersMet  = 10
	scoreEngagementMet = 15
	scoreVerified      = 5
	scoreMax           = 100
	scoreMin           = 0
)

var tierBonus = map[string]int{
	store.TierBronze:   0,
	store.TierSilver:   5,
	store.TierGold:     10,
	store.TierPlatinum: 15,
}

// ScoreBreakdown explains how a match score was reached
type ScoreBreakdown struct {
	Score              int      `json:"score"`
	Base               int      `json:"base"`
	CategoryBonus      int      `json:"category_bonus"`
	MatchedCategories  []string `json:"matched_categories"`
	FollowersBonus     int      `json:"followers_bonus"`
	EngagementBonus    int      `json:"engagement_bonus"`
	VerifiedBonus      int      `json:"verified_bonus"`
	TierBonus          int      `json:"tier_bonus"`
	MeetsMinFollowers  bool     `json:"meets_min_followers"`
	MeetsMinEngagement bool     `json:"meets_min_engagement"`
}

// Score returns the 0-100 compatibility of an influencer with a campaign
func Score(influencer store.Influencer, campaign store.Campaign) int {
	return ScoreWithBreakdown(influencer, campaign).Score
}

// ScoreWithBreakdown returns the score with every contributing term
func ScoreWithBreakdown(influencer store.Influencer, campaign store.Campaign) ScoreBreakdown {
	b := ScoreBreakdown{Base: scoreBase}

	b.MatchedCategories = OverlappingCategories(influencer.Categories, campaign.Categories)
	b.CategoryBonus = scorePerCategory * len(b.MatchedCategories)

	if influencer.FollowersCount >= campaign.MinFollowers {
		b.MeetsMinFollowers = true
		b.FollowersBonus = scoreFollowersMet
	}
	if influencer.EngagementRate >= campaign.MinEngagementRate {
		b.MeetsMinEngagement = true
		b.EngagementBonus = scoreEngagementMet
	}
	if influencer.IsVerified {
		b.VerifiedBonus = scoreVerified
	}
	b.TierBonus = tierBonus[influencer.Tier]

	total := b.Base + b.CategoryBonus + b.FollowersBonus + b.EngagementBonus + b.VerifiedBonus + b.TierBonus
	b.Score = clampInt(total, scoreMin, scoreMax)
	return b
}

// OverlappingCategories returns the influencer's categories that the campaign also lists,
// in the influencer's order and without duplicates.
func OverlappingCategories(influencerCategories, campaignCategories []string) []string {
	wanted := make(map[string]struct{}, len(campaignCategories))
	for _, c := range campaignCategories {
		wanted[c] = struct{}{}
	}
	matched := []string{}
	seen := make(map[string]struct{})
	for _, c := range influencerCategories {
		if _, ok := wanted[c]; !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		matched = append(matched, c)
	}
	return matched
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
