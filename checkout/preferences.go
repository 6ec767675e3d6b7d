// SPDX-License-Identifier: MIT

package checkout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/checkout/board"
)

// Preferences biases ranking and setup towards a player's favourite targets.
// Order matters: the first favourite triple is the setup planner's target.
type Preferences struct {
	FavoriteDoubles []string `json:"favoriteDoubles"`
	FavoriteTriples []string `json:"favoriteTriples"`
}

// DefaultPreferences returns D20, D16, D10, D8 and T20, T19, T18.
func DefaultPreferences() Preferences {
	return Preferences{
		FavoriteDoubles: []string{"D20", "D16", "D10", "D8"},
		FavoriteTriples: []string{"T20", "T19", "T18"},
	}
}

// IsFavoriteDouble reports whether label is among the favourite doubles.
func (p Preferences) IsFavoriteDouble(label string) bool {
	return slices.Contains(p.FavoriteDoubles, label)
}

// IsFavoriteTriple reports whether label is among the favourite triples.
func (p Preferences) IsFavoriteTriple(label string) bool {
	return slices.Contains(p.FavoriteTriples, label)
}

// ToggleDouble returns a copy of p with label added to, or removed from, the
// favourite doubles. The receiver is left untouched.
func (p Preferences) ToggleDouble(label string) Preferences {
	return Preferences{
		FavoriteDoubles: toggle(p.FavoriteDoubles, label),
		FavoriteTriples: slices.Clone(p.FavoriteTriples),
	}
}

// ToggleTriple returns a copy of p with label added to, or removed from, the
// favourite triples.
func (p Preferences) ToggleTriple(label string) Preferences {
	return Preferences{
		FavoriteDoubles: slices.Clone(p.FavoriteDoubles),
		FavoriteTriples: toggle(p.FavoriteTriples, label),
	}
}

func toggle(labels []string, label string) []string {
	if i := slices.Index(labels, label); i >= 0 {
		return slices.Delete(slices.Clone(labels), i, i+1)
	}
	return append(slices.Clone(labels), label)
}

// Validate checks that every favourite double is a finishing throw and every
// favourite triple is a triple.
//
// Solve does not require valid preferences: unknown labels simply never match.
// Validate is for callers that accept preferences from users.
func (p Preferences) Validate() error {
	for _, l := range p.FavoriteDoubles {
		t, err := board.Lookup(l)
		if err != nil {
			return err
		}
		if !t.IsFinish() {
			return fmt.Errorf("%w: %s is not a double", ErrBadPreference, l)
		}
	}
	for _, l := range p.FavoriteTriples {
		t, err := board.Lookup(l)
		if err != nil {
			return err
		}
		if t.Kind != board.Triple {
			return fmt.Errorf("%w: %s is not a triple", ErrBadPreference, l)
		}
	}
	return nil
}

// ParseLabels splits a comma-separated label list, trimming blanks and
// dropping empty entries. "d16" is normalised to "D16" and "bull" to "Bull".
func ParseLabels(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if strings.EqualFold(f, "bull") {
			f = "Bull"
		} else {
			f = strings.ToUpper(f)
		}
		out = append(out, f)
	}
	return out
}
