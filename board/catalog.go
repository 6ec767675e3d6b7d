// SPDX-License-Identifier: MIT

package board

import (
	"fmt"
	"slices"
	"strconv"
)

const (
	// MaxZone is the highest numbered zone on the board.
	MaxZone = 20
	// BullZone is the zone shared by the outer and inner bull.
	BullZone = 25
	// Size is the number of throws in the catalog.
	Size = MaxZone*3 + 2
)

// bogeys are the scores ≤ 170 without a three-dart checkout.
var bogeys = [...]int{169, 168, 166, 165, 163, 162, 159}

// Tables built once in init; read-only afterwards.
var (
	catalog  []Throw
	finishes []Throw
	byLabel  map[string]int
	// finishByValue[v] is the index into catalog of the finisher worth v, or -1.
	finishByValue [51]int
)

func init() {
	catalog = make([]Throw, 0, Size)
	for z := 1; z <= MaxZone; z++ {
		n := strconv.Itoa(z)
		catalog = append(catalog,
			Throw{Label: "S" + n, Value: z, Multiplier: 1, Kind: Single, Zone: z},
			Throw{Label: "D" + n, Value: z * 2, Multiplier: 2, Kind: Double, Zone: z},
			Throw{Label: "T" + n, Value: z * 3, Multiplier: 3, Kind: Triple, Zone: z},
		)
	}
	catalog = append(catalog,
		Throw{Label: "25", Value: 25, Multiplier: 1, Kind: SingleBull, Zone: BullZone},
		Throw{Label: "Bull", Value: 50, Multiplier: 2, Kind: Bull, Zone: BullZone},
	)

	byLabel = make(map[string]int, len(catalog))
	for i := range finishByValue {
		finishByValue[i] = -1
	}
	for i, t := range catalog {
		byLabel[t.Label] = i
		if t.IsFinish() {
			finishes = append(finishes, t)
			if finishByValue[t.Value] < 0 {
				finishByValue[t.Value] = i
			}
		}
	}
}

// Catalog returns a copy of all 62 throws in canonical order.
func Catalog() []Throw { return slices.Clone(catalog) }

// Each calls fn for every catalog throw in canonical order without copying
// the table. Iteration stops early when fn returns false.
func Each(fn func(Throw) bool) {
	for _, t := range catalog {
		if !fn(t) {
			return
		}
	}
}

// Finishes returns a copy of the legal finishing throws (D1..D20, Bull) in
// catalog order.
func Finishes() []Throw { return slices.Clone(finishes) }

// FinishFor returns the finishing throw worth exactly value.
// Every even value 2..40 and 50 has exactly one.
func FinishFor(value int) (Throw, bool) {
	if value < 0 || value >= len(finishByValue) {
		return Throw{}, false
	}
	i := finishByValue[value]
	if i < 0 {
		return Throw{}, false
	}
	return catalog[i], true
}

// Bogeys returns the scores that cannot be checked out with three darts.
func Bogeys() []int { return slices.Clone(bogeys[:]) }

// IsBogey reports whether score is one of the seven bogey numbers.
func IsBogey(score int) bool { return slices.Contains(bogeys[:], score) }

// Lookup returns the catalog throw with the given label.
func Lookup(label string) (Throw, error) {
	i, ok := byLabel[label]
	if !ok {
		return Throw{}, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return catalog[i], nil
}

// MustLookup is like Lookup but panics on an unknown label.
// Intended for package-level tables built from literal labels.
func MustLookup(label string) Throw {
	t, err := Lookup(label)
	if err != nil {
		panic(err)
	}
	return t
}

// SingleOf returns the single-ring throw for zone: S1..S20, or "25" for the bull.
func SingleOf(zone int) (Throw, error) {
	switch {
	case zone >= 1 && zone <= MaxZone:
		return catalog[(zone-1)*3], nil
	case zone == BullZone:
		return catalog[MaxZone*3], nil
	default:
		return Throw{}, fmt.Errorf("%w: %d", ErrUnknownZone, zone)
	}
}
