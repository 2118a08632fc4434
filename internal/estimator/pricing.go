package estimator

import (
	"math"
	"strings"

	"itda-server/internal/store"
)

// PriceStep is the rounding unit for every returned price
const PriceStep = 10000

const (
	engagementBaseline = 3.0
	engagementSlope    = 0.15
	contentVolumeFree  = 5
	contentVolumeSlope = 0.1
	budgetCapRatio     = 0.5
	budgetCappedShare  = 0.4
	minPriceRatio      = 0.8
	maxPriceRatio      = 1.3
	confidenceBase     = 85
	highFollowerMark   = 100000
	highEngagementMark = 5.0
	lowEngagementMark  = 2.0
)

// followerTier is one linear segment of the base price curve.
// Each segment starts where the previous one ends so the curve has no drops.
type followerTier struct {
	from int
	base float64
	rate float64
}

var followerTiers = []followerTier{
	{from: 0, base: 0, rate: 30},
	{from: 10000, base: 300000, rate: 20},
	{from: 50000, base: 1100000, rate: 15},
	{from: 100000, base: 1850000, rate: 10},
	{from: 500000, base: 5850000, rate: 5},
}

// categoryMultipliers holds both the Korean and English tags used by profiles
var categoryMultipliers = map[string]float64{
	"beauty":    1.3,
	"뷰티":        1.3,
	"tech":      1.4,
	"테크":        1.4,
	"fashion":   1.2,
	"패션":        1.2,
	"food":      1.1,
	"푸드":        1.1,
	"travel":    1.15,
	"여행":        1.15,
	"fitness":   1.15,
	"피트니스":      1.15,
	"gaming":    1.25,
	"게임":        1.25,
	"lifestyle": 1.0,
	"라이프스타일":    1.0,
}

// PriceInput describes the influencer and campaign being priced
type PriceInput struct {
	Followers      int
	EngagementRate float64
	Category       string
	// Budget <= 0 disables the budget cap
	Budget       int64
	Deliverables store.Deliverables
}

// Factor is one descriptive line of the price explanation
type Factor struct {
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// PriceEstimate is the predicted price range for a collaboration
type PriceEstimate struct {
	EstimatedPrice int64    `json:"estimated_price"`
	MinPrice       int64    `json:"min_price"`
	MaxPrice       int64    `json:"max_price"`
	Confidence     int      `json:"confidence"`
	BudgetCapped   bool     `json:"budget_capped"`
	Factors        []Factor `json:"factors"`
}

// BasePrice returns the follower-only price before multipliers
func BasePrice(followers int) float64 {
	if followers < 0 {
		followers = 0
	}
	tier := followerTiers[0]
	for _, t := range followerTiers {
		if followers >= t.from {
			tier = t
		}
	}
	return tier.base + float64(followers-tier.from)*tier.rate
}

// EngagementMultiplier scales price around a 3% engagement baseline
func EngagementMultiplier(engagementRate float64) float64 {
	return 1 + (engagementRate-engagementBaseline)*engagementSlope
}

// CategoryMultiplier looks up the category premium; unknown categories are 1.0
func CategoryMultiplier(category string) float64 {
	if m, ok := categoryMultipliers[strings.ToLower(strings.TrimSpace(category))]; ok {
		return m
	}
	return 1.0
}

// ContentVolumeMultiplier adds 10% per deliverable beyond five
func ContentVolumeMultiplier(deliverableCount int) float64 {
	if deliverableCount <= contentVolumeFree {
		return 1.0
	}
	return 1 + float64(deliverableCount-contentVolumeFree)*contentVolumeSlope
}

// PredictPrice estimates the collaboration price range
func PredictPrice(in PriceInput) PriceEstimate {
	count := in.Deliverables.TotalCount()
	engagementMult := EngagementMultiplier(in.EngagementRate)
	categoryMult := CategoryMultiplier(in.Category)
	volumeMult := ContentVolumeMultiplier(count)

	price := BasePrice(in.Followers) * engagementMult * categoryMult * volumeMult

	capped := false
	if in.Budget > 0 && price/float64(in.Budget) > budgetCapRatio {
		price = float64(in.Budget) * budgetCappedShare
		capped = true
	}

	estimated := roundToStep(price)
	return PriceEstimate{
		EstimatedPrice: estimated,
		MinPrice:       roundToStep(float64(estimated) * minPriceRatio),
		MaxPrice:       roundToStep(float64(estimated) * maxPriceRatio),
		Confidence:     confidence(in.Followers, in.EngagementRate),
		BudgetCapped:   capped,
		Factors: []Factor{
			{Name: "followers", Weight: 40, Multiplier: 1.0, Description: "follower count sets the base price"},
			{Name: "engagement", Weight: 30, Multiplier: engagementMult, Description: "engagement rate relative to a 3% baseline"},
			{Name: "category", Weight: 20, Multiplier: categoryMult, Description: "category premium"},
			{Name: "content_volume", Weight: 10, Multiplier: volumeMult, Description: "deliverables beyond five"},
		},
	}
}

// confidence is deliberately left unclamped; HTTP responses clamp it with ClampConfidence
func confidence(followers int, engagementRate float64) int {
	c := confidenceBase
	if followers > highFollowerMark {
		c += 5
	}
	if engagementRate > highEngagementMark {
		c += 5
	}
	if engagementRate < lowEngagementMark {
		c -= 10
	}
	return c
}

// ClampConfidence bounds a confidence value to [0, 100]
func ClampConfidence(c int) int {
	return clampInt(c, 0, 100)
}

func roundToStep(v float64) int64 {
	return int64(math.Round(v/PriceStep)) * PriceStep
}

// PricingCategory picks the category to price a match with: the first influencer
// category the campaign also lists, else the campaign's first category, else the
// influencer's first.
func PricingCategory(influencer store.Influencer, campaign store.Campaign) string {
	if overlap := OverlappingCategories(influencer.Categories, campaign.Categories); len(overlap) > 0 {
		return overlap[0]
	}
	if len(campaign.Categories) > 0 {
		return campaign.Categories[0]
	}
	if len(influencer.Categories) > 0 {
		return influencer.Categories[0]
	}
	return ""
}

// PredictForMatch prices an influencer against a specific campaign
func PredictForMatch(influencer store.Influencer, campaign store.Campaign) PriceEstimate {
	return PredictPrice(PriceInput{
		Followers:      influencer.FollowersCount,
		EngagementRate: influencer.EngagementRate,
		Category:       PricingCategory(influencer, campaign),
		Budget:         campaign.Budget,
		Deliverables:   campaign.Deliverables,
	})
}
