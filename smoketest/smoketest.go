package smoketest

import (
	"context"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/reach/modules"
)

const (
	ErrTypeSmokeTestFailed = "smoke_test_failed"
)

// Outcome is the result of solving a sample.
type Outcome struct {
	Name     string        `json:"name"`
	Puzzle   string        `json:"puzzle"`
	Want     int64         `json:"want"`
	Got      int64         `json:"got"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
}

func (o Outcome) Passed() bool {
	return o.Err == nil && o.Got == o.Want
}

// Run solves every sample with its module and compares the answers. It
// returns an error when at least one sample fails.
func Run(ctx context.Context, samples []modules.Sample) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(samples))
	failed := 0

	for _, s := range samples {
		if err := ctx.Err(); err != nil {
			return outcomes, errors.New("smoke test interrupted").Wrap(err)
		}

		start := time.Now()
		answer, err := s.Module.Solve(ctx, s.Input)
		o := Outcome{
			Name:     s.Name,
			Puzzle:   s.Module.Name(),
			Want:     s.Want,
			Got:      answer.Value,
			Duration: time.Since(start),
			Err:      err,
		}
		outcomes = append(outcomes, o)

		if o.Passed() {
			logs.WithTag("sample", o.Name).
				WithTag("puzzle", o.Puzzle).
				WithTag("duration", o.Duration.String()).
				Info("smoke test passed")
			continue
		}

		failed++
		failure := errors.New("smoke test failed").
			WithType(ErrTypeSmokeTestFailed).
			WithTag("sample", o.Name).
			WithTag("puzzle", o.Puzzle)
		if o.Err != nil {
			logs.Warn(failure.Wrap(o.Err))
			continue
		}
		logs.Warn(failure.
			WithTag("want", o.Want).
			WithTag("got", o.Got))
	}

	if failed != 0 {
		return outcomes, errors.Newf("%d of %d smoke tests failed", failed, len(samples)).
			WithType(ErrTypeSmokeTestFailed)
	}
	return outcomes, nil
}
