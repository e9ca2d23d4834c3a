// SPDX-License-Identifier: MIT
// Package: polymap/territory

package territory

import (
	"fmt"
	"image/color"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/polymap/planar"
)

// Atlas owns the territories of one graph and the unclaimed pool. Its own
// owners record is authoritative; the owner references on the graph's sites
// mirror it and are rewritten on every claim. An Atlas is not safe for
// concurrent use.
type Atlas struct {
	g      *planar.Graph
	rng    *rand.Rand
	nameFn func(int) string
	log    *zap.Logger

	territories map[int]*Territory
	owners      map[planar.SiteID]*Territory
	nextID      int

	// pool holds unclaimed usable sites; poolIdx maps a site to its slot.
	pool    []planar.SiteID
	poolIdx map[planar.SiteID]int
}

// NewAtlas creates an empty atlas over g. Every usable site starts in the
// unclaimed pool and existing owner references on g are cleared.
func NewAtlas(g *planar.Graph, opts ...Option) (*Atlas, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)
	a := &Atlas{
		g:           g,
		rng:         cfg.rng,
		nameFn:      cfg.nameFn,
		log:         cfg.log,
		territories: make(map[int]*Territory),
		owners:      make(map[planar.SiteID]*Territory),
		poolIdx:     make(map[planar.SiteID]int),
	}
	sites := g.Sites()
	for i := range sites {
		sites[i].ClearOwner()
		if sites[i].Usable {
			a.poolIdx[sites[i].ID] = len(a.pool)
			a.pool = append(a.pool, sites[i].ID)
		}
	}

	return a, nil
}

// Graph returns the graph the atlas partitions.
func (a *Atlas) Graph() *planar.Graph { return a.g }

// Territories returns a copy of the id → territory map.
func (a *Atlas) Territories() map[int]*Territory {
	out := make(map[int]*Territory, len(a.territories))
	for id, t := range a.territories {
		out[id] = t
	}
	return out
}

// Territory returns the territory with the given id, or nil.
func (a *Atlas) Territory(id int) *Territory { return a.territories[id] }

// IDs returns the territory ids in ascending order.
func (a *Atlas) IDs() []int {
	ids := make([]int, 0, len(a.territories))
	for id := range a.territories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Owner returns the territory owning site id, or nil. It reads the atlas
// record, not the site's owner reference.
func (a *Atlas) Owner(id planar.SiteID) *Territory { return a.owners[id] }

// Unclaimed returns the unclaimed usable sites in ascending order.
func (a *Atlas) Unclaimed() []planar.SiteID {
	out := slices.Clone(a.pool)
	slices.Sort(out)
	return out
}

// UnclaimedCount returns the size of the unclaimed pool.
func (a *Atlas) UnclaimedCount() int { return len(a.pool) }

// NewTerritory registers an empty territory with the next free id, a name
// from the configured name function and colour c.
func (a *Atlas) NewTerritory(c color.NRGBA) *Territory {
	id := a.nextID
	a.nextID++
	t := newTerritory(a.g, id, a.nameFn(id), c)
	a.territories[id] = t
	return t
}

// Claim transfers site id to t: it leaves its previous owner, joins t, its
// owner reference is updated and it leaves the unclaimed pool if present.
// Claiming an unusable site is allowed; such sites are never in the pool.
func (a *Atlas) Claim(t *Territory, id planar.SiteID) error {
	if t == nil || a.territories[t.ID] != t {
		return ErrUnknownTerritory
	}
	if a.g.Site(id) == nil {
		return fmt.Errorf("%w: %d", ErrSiteNotFound, id)
	}
	a.claim(t, id)

	return nil
}

// claim performs the transfer for a registered t and an existing site id.
func (a *Atlas) claim(t *Territory, id planar.SiteID) {
	if prev := a.owners[id]; prev != nil {
		prev.remove(id)
	}
	t.add(id)
	a.owners[id] = t
	a.g.Site(id).SetOwner(t.ID)
	a.take(id)
}

// take removes id from the unclaimed pool in O(1).
func (a *Atlas) take(id planar.SiteID) {
	i, ok := a.poolIdx[id]
	if !ok {
		return
	}
	last := len(a.pool) - 1
	a.pool[i] = a.pool[last]
	a.poolIdx[a.pool[i]] = i
	a.pool = a.pool[:last]
	delete(a.poolIdx, id)
}

// Candidates returns the distinct unclaimed neighbours of t's boundary in
// member order, then edge order.
func (a *Atlas) Candidates(t *Territory) []planar.SiteID {
	var out []planar.SiteID
	seen := make(map[planar.SiteID]struct{})
	for _, exclave := range t.UnorderedBoundary() {
		for _, ge := range exclave {
			n := ge.Neighbour
			if _, ok := a.poolIdx[n]; !ok {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// Grow claims one random unclaimed neighbour for t. It reports false, and
// changes nothing, when t has no unclaimed neighbour or is unknown.
func (a *Atlas) Grow(t *Territory) bool {
	if t == nil || a.territories[t.ID] != t {
		return false
	}
	cand := a.Candidates(t)
	if len(cand) == 0 {
		return false
	}
	a.claim(t, cand[a.rng.Intn(len(cand))])
	return true
}

// Pass gives every territory, in ascending id order, one growth attempt and
// returns how many of them grew.
func (a *Atlas) Pass() int {
	grown := 0
	for _, id := range a.IDs() {
		if a.Grow(a.territories[id]) {
			grown++
		}
	}
	return grown
}

// Seed creates count territories, each on one random unclaimed site, with
// a random hue and the given saturation, value and alpha. Nothing is
// created when the pool holds fewer than count sites.
func (a *Atlas) Seed(count int, s, v, alpha float64) ([]*Territory, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d territories", ErrBadCount, count)
	}
	if count > len(a.pool) {
		return nil, fmt.Errorf("%w: %d territories, %d unclaimed sites", ErrPoolExhausted, count, len(a.pool))
	}
	out := make([]*Territory, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, a.seedOne(s, v, alpha))
	}
	return out, nil
}

// seedOne draws the seed site first and the hue second. The pool must not
// be empty.
func (a *Atlas) seedOne(s, v, alpha float64) *Territory {
	site := a.pool[a.rng.Intn(len(a.pool))]
	t := a.NewTerritory(HSV(a.rng.Float64()*360, s, v, alpha))
	a.claim(t, site)
	return t
}

// Fill seeds count territories and grows all territories of the atlas
// round-robin until a full pass claims nothing. Usable sites that no seed
// can reach stay unclaimed. It returns the atlas territories.
func (a *Atlas) Fill(count int) (map[int]*Territory, error) {
	if _, err := a.Seed(count, FillSaturation, FillValue, FillAlpha); err != nil {
		return nil, err
	}
	passes := 0
	for a.Pass() > 0 {
		passes++
	}
	a.log.Debug("territories filled",
		zap.Int("territories", len(a.territories)),
		zap.Int("passes", passes),
		zap.Int("unclaimed", len(a.pool)))

	return a.Territories(), nil
}

// Generate creates count territories one after another: each is seeded on
// a random unclaimed site and grown until it holds maxSize sites or runs
// out of unclaimed neighbours, before the next one is seeded. If the pool
// runs dry part way, the territories created so far are kept and
// ErrPoolExhausted is returned.
func (a *Atlas) Generate(count, maxSize int) (map[int]*Territory, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d territories", ErrBadCount, count)
	}
	if maxSize <= 0 {
		return nil, fmt.Errorf("%w: max size %d", ErrBadCount, maxSize)
	}
	for i := 0; i < count; i++ {
		if len(a.pool) == 0 {
			return a.Territories(), fmt.Errorf("%w: after %d of %d territories", ErrPoolExhausted, i, count)
		}
		t := a.seedOne(GenerateSaturation, GenerateValue, GenerateAlpha)
		for t.Len() < maxSize && a.Grow(t) {
		}
		a.log.Debug("territory generated",
			zap.Int("id", t.ID),
			zap.Int("size", t.Len()))
	}

	return a.Territories(), nil
}
