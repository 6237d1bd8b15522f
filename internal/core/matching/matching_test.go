package matching

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-ads/internal/core/domain"
)

type fixedSource struct {
	values []int64
	calls  []int64
}

func (f *fixedSource) Int64N(n int64) int64 {
	f.calls = append(f.calls, n)
	v := f.values[0]
	f.values = f.values[1:]
	return v
}

func campaign(id string, budget, spent string, tags ...string) domain.Campaign {
	return domain.Campaign{
		ID:     id,
		Budget: decimal.RequireFromString(budget),
		Spent:  decimal.RequireFromString(spent),
		Active: true,
		Tags:   tags,
	}
}

func draws(t *testing.T, campaigns []domain.Campaign, tags []string, n int) map[string]int {
	t.Helper()
	rnd := rand.New(rand.NewPCG(42, 1024))
	counts := make(map[string]int, len(campaigns))
	for i := 0; i < n; i++ {
		c := Select(campaigns, tags, rnd, DefaultScale)
		require.NotNil(t, c)
		counts[c.ID]++
	}
	return counts
}

func TestSelectEmpty(t *testing.T) {
	assert.Nil(t, Select(nil, []string{"crypto"}, rand.New(rand.NewPCG(1, 1)), DefaultScale))
}

func TestSelectBinarySearchBoundaries(t *testing.T) {
	campaigns := []domain.Campaign{
		campaign("a", "1", "0"), // weight 10
		campaign("b", "2", "0"), // weight 20
	}

	src := &fixedSource{values: []int64{0, 9, 10, 29}}
	assert.Equal(t, "a", Select(campaigns, nil, src, DefaultScale).ID)
	assert.Equal(t, "a", Select(campaigns, nil, src, DefaultScale).ID)
	assert.Equal(t, "b", Select(campaigns, nil, src, DefaultScale).ID)
	assert.Equal(t, "b", Select(campaigns, nil, src, DefaultScale).ID)
	assert.Equal(t, []int64{30, 30, 30, 30}, src.calls)
}

func TestSelectFairness(t *testing.T) {
	campaigns := []domain.Campaign{
		campaign("a", "100", "0"),
		campaign("b", "100", "0"),
		campaign("c", "100", "0"),
	}
	const n = 30000

	counts := draws(t, campaigns, nil, n)
	for _, c := range campaigns {
		assert.InDelta(t, 1.0/3.0, float64(counts[c.ID])/n, 0.02, "campaign %s", c.ID)
	}
}

func TestSelectMonotonicInRemainingBudget(t *testing.T) {
	campaigns := []domain.Campaign{
		campaign("small", "100", "90"),
		campaign("large", "100", "80"),
	}

	counts := draws(t, campaigns, nil, 20000)
	assert.Greater(t, counts["large"], counts["small"])
	assert.InDelta(t, 2.0/3.0, float64(counts["large"])/20000, 0.02)
}

func TestSelectTagBoost(t *testing.T) {
	campaigns := []domain.Campaign{
		campaign("crypto", "100", "0", "crypto", "blockchain"),
		campaign("cloud", "100", "0", "cloud", "hosting"),
	}

	plain := draws(t, campaigns, nil, 20000)
	boosted := draws(t, campaigns, []string{" Crypto "}, 20000)
	assert.Greater(t, boosted["crypto"], plain["crypto"])
	// exact match multiplies the weight by 4, so crypto should win ~80%
	assert.InDelta(t, 0.8, float64(boosted["crypto"])/20000, 0.02)
}

func TestSelectReproducible(t *testing.T) {
	campaigns := []domain.Campaign{
		campaign("a", "10", "1"),
		campaign("b", "50", "3"),
		campaign("c", "7", "0", "saas"),
	}

	first := rand.New(rand.NewPCG(7, 7))
	second := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 100; i++ {
		assert.Equal(t,
			Select(campaigns, []string{"saas"}, first, DefaultScale).ID,
			Select(campaigns, []string{"saas"}, second, DefaultScale).ID)
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name   string
		budget string
		spent  string
		want   int64
	}{
		{"fresh", "100", "0", 1000},
		{"fractional", "1", "0.95", 1},
		{"floors", "1", "0.51", 4},
		{"overspent", "1", "1.2", 1},
		{"capped", "1000000000000", "0", MaxWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Weight(campaign("x", tt.budget, tt.spent), DefaultScale))
		})
	}
}

func TestBoost(t *testing.T) {
	assert.Equal(t, int64(10), Boost(10, 0))
	assert.Equal(t, int64(40), Boost(10, 2))
	assert.Equal(t, MaxWeight, Boost(MaxWeight, 1))
	assert.Equal(t, MaxWeight, Boost(MaxWeight/3+1, 1))
	assert.Equal(t, MaxWeight, Boost(MaxWeight, 1<<30))
}

func TestSelectCappedWeightsDoNotOverflow(t *testing.T) {
	tags := make([]string, 20)
	for i := range tags {
		tags[i] = "tag"
	}
	campaigns := []domain.Campaign{
		campaign("big", "1000000000000", "0", "tag", "tags", "tagged"),
		campaign("small", "1", "0"),
	}
	rnd := &fixedSource{values: []int64{0}}

	c := Select(campaigns, tags, rnd, DefaultScale)
	require.NotNil(t, c)
	require.Len(t, rnd.calls, 1)
	assert.Equal(t, MaxWeight+10, rnd.calls[0])
}

func TestTagScore(t *testing.T) {
	tags := []string{"tecnologia", "Programacao", "startups"}

	assert.Equal(t, 0, TagScore(tags, nil))
	assert.Equal(t, 2, TagScore(tags, NormalizeTags([]string{"programacao"})))
	assert.Equal(t, 1, TagScore(tags, NormalizeTags([]string{"tecno"})))
	assert.Equal(t, 1, TagScore(tags, NormalizeTags([]string{"startups-br"})))
	assert.Equal(t, 3, TagScore(tags, NormalizeTags([]string{"startups", "program", "games"})))
	assert.Equal(t, 0, TagScore(tags, NormalizeTags([]string{"crypto"})))
}
