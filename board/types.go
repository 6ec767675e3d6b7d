// SPDX-License-Identifier: MIT

package board

import "errors"

// Sentinel errors returned by catalog lookups.
var (
	// ErrUnknownLabel indicates that a label does not name any catalog throw.
	ErrUnknownLabel = errors.New("board: unknown throw label")

	// ErrUnknownZone indicates that a zone is neither 1–20 nor the bull (25).
	ErrUnknownZone = errors.New("board: unknown zone")
)

// Kind classifies a throw by the ring it lands in.
type Kind int

const (
	// Single is the large single segment of a numbered zone.
	Single Kind = iota
	// Double is the outer ring; doubles are legal finishes.
	Double
	// Triple is the inner ring.
	Triple
	// SingleBull is the outer bull ring, worth 25.
	SingleBull
	// Bull is the inner bullseye, worth 50; a legal finish.
	Bull
	// Miss is a dart that scores nothing. It is never part of the catalog.
	Miss
)

var kindNames = [...]string{
	Single:     "Single",
	Double:     "Double",
	Triple:     "Triple",
	SingleBull: "SingleBull",
	Bull:       "Bull",
	Miss:       "Miss",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name so JSON carries "Triple" rather than 2.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsFinish reports whether a throw of this kind may end a checkout.
func (k Kind) IsFinish() bool {
	return k == Double || k == Bull
}

// Throw is one dart placement on the board.
//
// Label is the canonical identifier ("S1".."S20", "D1".."D20", "T1".."T20",
// "25", "Bull"). Zone is 1–20, or 25 for either bull ring.
type Throw struct {
	Label      string `json:"label"`
	Value      int    `json:"value"`
	Multiplier int    `json:"multiplier"`
	Kind       Kind   `json:"kind"`
	Zone       int    `json:"zone"`
}

// IsFinish reports whether t is a legal terminal throw (a double or Bull).
func (t Throw) IsFinish() bool { return t.Kind.IsFinish() }

// MissThrow is the zero-scoring dart. It is exported for callers that record
// actual throws; solvers never plan with it.
var MissThrow = Throw{Label: "Miss", Value: 0, Multiplier: 0, Kind: Miss, Zone: 0}
