package nanobots

import (
	"context"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// How many regions are subdivided between two context checks.
const cancelCheckInterval = 4096

// Frontier is a FIFO worklist of regions waiting to be subdivided.
type Frontier struct {
	regions []Region
	head    int
}

func (f *Frontier) Push(r Region) {
	f.regions = append(f.regions, r)
}

func (f *Frontier) Pop() (Region, bool) {
	if f.head == len(f.regions) {
		return Region{}, false
	}

	r := f.regions[f.head]
	f.regions[f.head] = Region{}
	f.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 1024 && f.head*2 > len(f.regions) {
		n := copy(f.regions, f.regions[f.head:])
		f.regions = f.regions[:n]
		f.head = 0
	}
	return r, true
}

func (f *Frontier) Len() int {
	return len(f.regions) - f.head
}

type Options struct {
	// Children covered by Threshold sensors or less are pruned. 0 keeps
	// every child reached by at least one sensor.
	Threshold int

	// The intersection oracle. Defaults to HeuristicOracle.
	Oracle Oracle

	// The number of independent frontiers searched concurrently. Values
	// lower than 2 run a single frontier.
	Shards int
}

type Stats struct {
	Subdivided int `json:"subdivided"`
	Pruned     int `json:"pruned"`
	Depth      int `json:"depth"`
}

func (s *Stats) merge(o Stats) {
	s.Subdivided += o.Subdivided
	s.Pruned += o.Pruned
}

type Result struct {
	Point      Point `json:"point"`
	Count      int   `json:"count"`
	Distance   int64 `json:"distance"`
	Candidates int   `json:"candidates"`
	Stats      Stats `json:"stats"`
}

// Search finds the integer point reached by the most sensors, closest to the
// origin on ties.
func Search(ctx context.Context, sensors []Sensor, opts Options) (Result, error) {
	if opts.Oracle == nil {
		opts.Oracle = HeuristicOracle{}
	}
	oracle := oracleName(opts.Oracle)
	defer instrumentSearchLatency(oracle, time.Now())

	res, err := search(ctx, sensors, opts)
	if err != nil {
		instrumentSearchError(oracle, err)
		return Result{}, err
	}
	instrumentSearch(oracle, res.Stats)
	return res, nil
}

func search(ctx context.Context, sensors []Sensor, opts Options) (Result, error) {
	if len(sensors) == 0 {
		return Result{}, errors.New("no sensor to search").
			WithType(ErrTypeEmptyFrontier)
	}

	root := NewRootRegion(sensors)
	s := searcher{
		oracle:    opts.Oracle,
		threshold: opts.Threshold,
	}

	var f Frontier
	s.admit(&f, root)

	var best Region
	var found bool
	var candidates int
	var err error

	if opts.Shards > 1 {
		if err := s.split(ctx, &f, opts.Shards); err != nil {
			return Result{}, err
		}
		best, found, candidates, err = s.runShards(ctx, &f, opts.Shards)
	} else {
		err = s.run(ctx, &f)
		candidates = len(s.candidates)
		best, found = SelectBest(s.candidates)
	}
	if err != nil {
		return Result{}, err
	}

	if !found {
		return Result{}, errors.New("no candidate left after pruning").
			WithType(ErrTypeEmptyFrontier).
			WithTag("threshold", opts.Threshold).
			WithTag("sensors", len(sensors))
	}

	s.stats.Depth = root.Bounds.Depth()
	return Result{
		Point:      best.Bounds.Origin,
		Count:      best.Count(),
		Distance:   best.Bounds.Origin.Norm(),
		Candidates: candidates,
		Stats:      s.stats,
	}, nil
}

type searcher struct {
	oracle     Oracle
	threshold  int
	candidates []Region
	stats      Stats
}

// admit routes a surviving region: unit regions are final candidates, the
// others go back to the frontier.
func (s *searcher) admit(f *Frontier, r Region) {
	if r.Bounds.IsUnit() {
		s.candidates = append(s.candidates, r)
		return
	}
	f.Push(r)
}

func (s *searcher) step(f *Frontier) bool {
	r, ok := f.Pop()
	if !ok {
		return false
	}

	s.stats.Subdivided++
	for _, c := range r.Subdivide(s.oracle) {
		if c.Count() <= s.threshold {
			s.stats.Pruned++
			continue
		}
		s.admit(f, c)
	}
	return true
}

// run subdivides until the frontier holds no region larger than a unit.
func (s *searcher) run(ctx context.Context, f *Frontier) error {
	for i := 0; s.step(f); i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return errors.New("search interrupted").
					WithTag("frontier", f.Len()).
					Wrap(err)
			}
		}
	}
	return nil
}

// split advances the search breadth first until the frontier holds enough
// regions to feed every shard.
func (s *searcher) split(ctx context.Context, f *Frontier, shards int) error {
	for f.Len() > 0 && f.Len() < shards {
		if err := ctx.Err(); err != nil {
			return errors.New("search interrupted").Wrap(err)
		}
		s.step(f)
	}
	return nil
}

// runShards distributes the frontier over independent searchers and merges
// their best candidates. Regions are disjoint so shards never share work.
func (s *searcher) runShards(ctx context.Context, f *Frontier, shards int) (Region, bool, int, error) {
	frontiers := make([]Frontier, shards)
	for i := 0; ; i++ {
		r, ok := f.Pop()
		if !ok {
			break
		}
		frontiers[i%shards].Push(r)
	}

	type shardResult struct {
		best       Region
		found      bool
		candidates int
		stats      Stats
	}
	results := make([]shardResult, shards)

	g, ctx := errgroup.WithContext(ctx)
	for i := range frontiers {
		g.Go(func() error {
			p := searcher{
				oracle:    s.oracle,
				threshold: s.threshold,
			}
			if err := p.run(ctx, &frontiers[i]); err != nil {
				return err
			}

			best, found := SelectBest(p.candidates)
			results[i] = shardResult{
				best:       best,
				found:      found,
				candidates: len(p.candidates),
				stats:      p.stats,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Region{}, false, 0, err
	}

	candidates := len(s.candidates)
	best, found := SelectBest(s.candidates)
	for _, r := range results {
		s.stats.merge(r.stats)
		candidates += r.candidates
		if r.found && (!found || Better(r.best, best)) {
			best, found = r.best, true
		}
	}
	return best, found, candidates, nil
}
