// Package selector limits a result set to a uniform random sample.
package selector

import (
	"math/rand/v2"

	"github.com/taigrr/image-finder/internal/types"
)

// Selector applies an optional limit to a set of images.
type Selector struct {
	rng *rand.Rand
}

// New creates a Selector. A nil rng uses the unseeded global source,
// so samples differ between runs.
func New(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Select returns the images to present. With no limit, or a limit of at
// least len(images), every image is kept in scan order. Otherwise the
// images are shuffled with a uniform permutation and truncated to limit.
// The input slice may be reordered.
func (s *Selector) Select(images []types.ImageRecord, limit uint, hasLimit bool) types.Selection {
	sel := types.Selection{
		Total:    len(images),
		Limit:    limit,
		HasLimit: hasLimit,
		Records:  images,
	}

	if !hasLimit || limit >= uint(len(images)) {
		return sel
	}

	s.shuffle(len(images), func(i, j int) {
		images[i], images[j] = images[j], images[i]
	})

	sel.Sampled = true
	sel.Records = images[:limit]
	return sel
}

func (s *Selector) shuffle(n int, swap func(i, j int)) {
	if s.rng != nil {
		s.rng.Shuffle(n, swap)
		return
	}
	rand.Shuffle(n, swap)
}
