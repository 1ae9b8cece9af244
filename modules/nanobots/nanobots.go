package nanobots

import (
	"context"
	"runtime"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/reach/featureflag"
	"github.com/aukilabs/reach/modules"
)

// DefaultThreshold is the pruning threshold tuned for the 1000 sensors of
// the puzzle input. Smaller inputs need a lower value.
const DefaultThreshold = 890

type Config struct {
	// Children covered by Threshold sensors or less are pruned.
	Threshold int

	// The number of concurrent search shards. SHARDED_SEARCH defaults it to
	// the number of CPUs.
	Shards int

	FeatureFlags featureflag.FeatureFlag
}

type Module struct {
	Config Config
}

func (m *Module) Name() string {
	return "23b"
}

func (m *Module) Solve(ctx context.Context, input string) (modules.Answer, error) {
	sensors, err := ParseSensors(input)
	if err != nil {
		return modules.Answer{}, err
	}

	opts := m.Options()
	res, err := Search(ctx, sensors, opts)
	if err != nil {
		return modules.Answer{}, errors.New("nanobots search failed").
			WithTag("oracle", oracleName(opts.Oracle)).
			WithTag("shards", opts.Shards).
			Wrap(err)
	}

	logs.WithTag("puzzle", m.Name()).
		WithTag("sensors", len(sensors)).
		WithTag("point", res.Point.String()).
		WithTag("count", res.Count).
		WithTag("candidates", res.Candidates).
		WithTag("subdivided", res.Stats.Subdivided).
		WithTag("pruned", res.Stats.Pruned).
		Info("search converged")

	return modules.Answer{
		Puzzle:  m.Name(),
		Value:   res.Distance,
		Details: res,
	}, nil
}

// Options returns the search options derived from the module config and
// feature flags.
func (m *Module) Options() Options {
	opts := Options{
		Threshold: m.Config.Threshold,
		Oracle:    HeuristicOracle{},
		Shards:    m.Config.Shards,
	}

	m.Config.FeatureFlags.IfSet(featureflag.FlagExactIntersection, func() {
		opts.Oracle = ExactOracle{}
	})

	m.Config.FeatureFlags.IfSet(featureflag.FlagShardedSearch, func() {
		if opts.Shards < 2 {
			opts.Shards = runtime.NumCPU()
		}
	})
	return opts
}

const sampleInput = `pos=<10,12,12>, r=2
pos=<12,14,12>, r=2
pos=<16,12,12>, r=4
pos=<14,14,14>, r=6
pos=<50,50,50>, r=200
pos=<10,10,10>, r=5`

// Samples returns the known inputs the module is checked against.
func Samples() []modules.Sample {
	return []modules.Sample{
		{
			Name:   "nanobots",
			Module: &Module{Config: Config{Threshold: 4}},
			Input:  sampleInput,
			Want:   36,
		},
		{
			Name: "nanobots exact",
			Module: &Module{Config: Config{
				Threshold:    2,
				FeatureFlags: featureflag.New([]string{string(featureflag.FlagExactIntersection)}),
			}},
			Input: sampleInput,
			Want:  36,
		},
	}
}
