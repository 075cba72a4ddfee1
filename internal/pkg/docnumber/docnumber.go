// Package docnumber generates human readable document numbers of the form
// PREFIX-YEAR-NNNNN. Numbers are random, not sequential, so callers must
// handle collisions on insert.
package docnumber

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Space is the size of the random suffix range.
const Space = 100000

type Generator struct {
	Now  func() time.Time
	IntN func(n int) int
}

// New returns a generator backed by the wall clock and math/rand.
func New() *Generator {
	return &Generator{
		Now:  time.Now,
		IntN: rand.IntN,
	}
}

// Next returns e.g. MLR-2025-00042.
func (g *Generator) Next(prefix string) string {
	now, intn := time.Now, rand.IntN
	if g != nil && g.Now != nil {
		now = g.Now
	}
	if g != nil && g.IntN != nil {
		intn = g.IntN
	}
	return fmt.Sprintf("%s-%d-%05d", prefix, now().Year(), intn(Space))
}
