package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/checkout/checkout"
)

func TestSetup(t *testing.T) {
	defaults := checkout.DefaultPreferences()
	t19 := checkout.Preferences{FavoriteTriples: []string{"T19"}}

	tests := []struct {
		name  string
		score int
		darts int
		prefs checkout.Preferences
		want  []string
	}{
		{"greedy T20", 150, 2, defaults, []string{"T20", "T20"}},
		{"no favourites uses T20", 150, 3, checkout.Preferences{}, []string{"T20", "T20", "D14"}},
		{"unknown favourite uses T20", 130, 1, checkout.Preferences{FavoriteTriples: []string{"T99"}}, []string{"T20"}},
		{"favourite triple", 61, 1, t19, []string{"T19"}},
		// 58-57 = 1 busts; T18 is the highest leaving >= 2, then D1 (before S2) from 4.
		{"fallback and catalog tie-break", 58, 2, t19, []string{"T18", "D1"}},
		{"stops at two", 64, 3, defaults, []string{"T20", "D1"}},
		{"score two", 2, 3, defaults, nil},
		{"no darts", 100, 0, defaults, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := checkout.Setup(tc.score, tc.darts, tc.prefs)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, labels(got))
		})
	}
}

// TestSetup_NeverBusts sweeps every score and budget.
func TestSetup_NeverBusts(t *testing.T) {
	for _, prefs := range []checkout.Preferences{checkout.DefaultPreferences(), {FavoriteTriples: []string{"T5"}}} {
		for score := 3; score <= 200; score++ {
			for d := 1; d <= 3; d++ {
				got := checkout.Setup(score, d, prefs)
				assert.NotEmpty(t, got, "score %d", score)
				assert.LessOrEqual(t, len(got), d)
				rem := score
				for _, th := range got {
					rem -= th.Value
					assert.GreaterOrEqual(t, rem, 2, "score %d darts %d %v", score, d, labels(got))
				}
			}
		}
	}
}
