// Package matching picks the campaign to show for a site and tag context.
//
// Every eligible campaign gets an integer weight derived from its remaining
// budget, boosted when its tags match the request. A single uniform draw
// over the summed weights then picks the winner, which is the same
// distribution as drawing from a pool holding w copies of each campaign
// without materializing it.
package matching

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
)

// MaxWeight caps a single campaign's weight, before and after the tag
// boost, so the cumulative sum stays well inside int64 for realistic
// campaign counts.
const MaxWeight int64 = 1 << 40

// DefaultScale is the number of weight units per unit of remaining budget.
const DefaultScale = 10

// Source is the random source used for the draw. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	Int64N(n int64) int64
}

// Select returns the chosen campaign or nil when campaigns is empty. The
// result depends only on the inputs and the values drawn from rnd.
func Select(campaigns []domain.Campaign, tags []string, rnd Source, scale int64) *domain.Campaign {
	if len(campaigns) == 0 {
		return nil
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	want := normalize(tags)

	cumulative := make([]int64, len(campaigns))
	var total int64
	for i := range campaigns {
		w := Boost(Weight(campaigns[i], scale), TagScore(campaigns[i].Tags, want))
		total += w
		cumulative[i] = total
	}

	if total <= 0 {
		return &campaigns[rnd.Int64N(int64(len(campaigns)))]
	}

	draw := rnd.Int64N(total)
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > draw })
	return &campaigns[idx]
}

// Weight is the base weight of a campaign: max(1, floor(remaining*scale)),
// capped at MaxWeight.
func Weight(c domain.Campaign, scale int64) int64 {
	w := c.Remaining().Mul(decimal.NewFromInt(scale)).Floor()
	if w.LessThan(decimal.NewFromInt(1)) {
		return 1
	}
	if w.GreaterThan(decimal.NewFromInt(MaxWeight)) {
		return MaxWeight
	}
	return w.IntPart()
}

// Boost multiplies a weight by 2+score for a positive tag score, capped at
// MaxWeight.
func Boost(w int64, score int) int64 {
	if score <= 0 {
		return w
	}
	factor := int64(score) + 2
	if w > MaxWeight/factor {
		return MaxWeight
	}
	return w * factor
}

// TagScore counts how well the campaign tags cover the requested ones.
// Each requested tag contributes 2 on an exact match, otherwise 1 when
// it is a substring of a campaign tag or the other way around. Requested
// tags must already be normalized.
func TagScore(campaignTags, requested []string) int {
	if len(requested) == 0 || len(campaignTags) == 0 {
		return 0
	}
	have := normalize(campaignTags)

	score := 0
	for _, want := range requested {
		exact, partial := false, false
		for _, tag := range have {
			if tag == want {
				exact = true
				break
			}
			if !partial && (strings.Contains(tag, want) || strings.Contains(want, tag)) {
				partial = true
			}
		}
		switch {
		case exact:
			score += 2
		case partial:
			score++
		}
	}
	return score
}

// NormalizeTags lowercases and trims tags, dropping empty ones.
func NormalizeTags(tags []string) []string {
	return normalize(tags)
}

func normalize(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
