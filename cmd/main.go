package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/events"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/go-tooling/pkg/metrics"
	"github.com/aukilabs/reach/featureflag"
	reachhttp "github.com/aukilabs/reach/http"
	"github.com/aukilabs/reach/input"
	"github.com/aukilabs/reach/modules"
	"github.com/aukilabs/reach/modules/nanobots"
	"github.com/aukilabs/reach/smoketest"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/encoding/json"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var (
	// The reach version number. Set at build.
	version = "v0.1.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "reach_info",
		Help:        "Reach information.",
		ConstLabels: prometheus.Labels{"version": version},
	})
)

// This will effectively disable obfuscation of the config struct. Without it, the keys would get obfuscated causing the cli package to generate garbled command-line options.
// https://github.com/burrowers/garble/issues/403
var _ = reflect.TypeOf(config{})

type config struct {
	Puzzle        string       `cli:""        env:"REACH_PUZZLE"         help:"The puzzle to solve."`
	Input         string       `cli:""        env:"REACH_INPUT"          help:"The input file, - reads the standard input. Empty loads the puzzle input from the input directory."`
	InputDir      string       `cli:""        env:"REACH_INPUT_DIR"      help:"The directory where puzzle inputs are stored."`
	InputEndpoint string       `cli:",hidden" env:"REACH_INPUT_ENDPOINT" help:"The endpoint where missing puzzle inputs are fetched."`
	Session       string       `cli:",hidden" env:"REACH_SESSION"        help:"The session token used to fetch puzzle inputs."`
	Threshold     int          `cli:""        env:"REACH_THRESHOLD"      help:"Regions covered by this many sensors or less are pruned."`
	Shards        int          `cli:""        env:"REACH_SHARDS"         help:"The number of concurrent search shards."`
	Output        string       `cli:""        env:"REACH_OUTPUT"         help:"Output format (text|json)."`
	AdminAddr     string       `cli:""        env:"REACH_ADMIN_ADDR"     help:"Admin listening address. Empty disables the admin server."`
	LogLevel      string       `cli:""        env:"REACH_LOG_LEVEL"      help:"Log level (debug|info|warning|error)."`
	LogIndent     bool         `cli:""        env:"REACH_LOG_INDENT"     help:"Indent logs."`
	FeatureFlags  []string     `cli:",hidden" env:"REACH_FEATURE_FLAGS"  help:"Comma separated feature flags"`
	Events        eventsConfig `cli:",hidden" env:"-"                    help:"Event pusher configuration."`
	SmokeTest     bool         `cli:""        env:"-"                    help:"Solve the built-in samples and exit."`
	Version       bool         `cli:""        env:"-"                    help:"Show version."`
	Help          bool         `cli:""        env:"-"                    help:"Show help."`
}

type eventsConfig struct {
	Endpoint      string        `cli:",hidden" env:"REACH_EVENTS_ENDPOINT"       help:"Endpoint to where events are pushed."`
	FlushInterval time.Duration `cli:",hidden" env:"REACH_EVENTS_FLUSH_INTERVAL" help:"The duration between each event flush."`
	BatchSize     int           `cli:",hidden" env:"REACH_EVENTS_BATCH_SIZE"     help:"The maximum number of events sent at once."`
	QueueSize     int           `cli:",hidden" env:"REACH_EVENTS_QUEUE_SIZE"     help:"The size of the queue where events are stored."`
}

func main() {
	conf := config{
		Puzzle:    (&nanobots.Module{}).Name(),
		InputDir:  "inputs",
		Threshold: nanobots.DefaultThreshold,
		Output:    outputText,
		LogLevel:  logs.InfoLevel.String(),
		Events: eventsConfig{
			FlushInterval: events.DefaultFlushInterval,
			BatchSize:     events.DefaultBatchSize,
			QueueSize:     events.DefaultQueueSize,
		},
	}

	infoGauge.Set(1)

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Solves a daily puzzle and prints its answer.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	// The answer is the only thing written on the standard output.
	writeLog := func(e logs.Entry) {
		fmt.Fprintln(os.Stderr, e)
	}
	logs.SetLogger(writeLog)
	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	transport := metrics.HTTPTransport(http.DefaultTransport)

	if conf.Events.Endpoint != "" {
		eventsPusher := events.Pusher{
			Endpoint:      conf.Events.Endpoint,
			FlushInterval: conf.Events.FlushInterval,
			BatchSize:     conf.Events.BatchSize,
			QueueSize:     conf.Events.QueueSize,
			Transport:     transport,
		}
		go eventsPusher.Start()
		defer eventsPusher.Close()

		eventsLogger := events.Logger{
			Pusher:           &eventsPusher,
			SDKType:          "reach",
			SDKVersionFamily: version,
		}
		logs.SetLogger(func(e logs.Entry) {
			writeLog(e)
			eventsLogger.Log(e)
		})
	}

	if conf.AdminAddr != "" {
		adminCtx, stopAdmin := context.WithCancel(ctx)
		defer stopAdmin()

		go reachhttp.ListenAndServe(adminCtx, &http.Server{
			Addr:    conf.AdminAddr,
			Handler: reachhttp.NewAdminHandler(version),
		})
	}

	runID := uuid.NewString()
	featureFlags := featureflag.New(conf.FeatureFlags)

	if conf.SmokeTest {
		outcomes, err := smoketest.Run(ctx, nanobots.Samples())
		if conf.Output == outputJSON {
			if err := writeJSON(os.Stdout, outcomes); err != nil {
				logs.Warn(err)
			}
		}
		if err != nil {
			logs.Fatal(err)
		}
		return
	}

	mods := []modules.Module{
		&nanobots.Module{Config: nanobots.Config{
			Threshold:    conf.Threshold,
			Shards:       conf.Shards,
			FeatureFlags: featureFlags,
		}},
	}

	mod, err := modules.Find(mods, conf.Puzzle)
	if err != nil {
		logs.Fatal(err)
	}

	logs.WithTag("version", version).
		WithTag("run_id", runID).
		WithTag("puzzle", mod.Name()).
		WithTag("threshold", conf.Threshold).
		WithTag("feature_flags", conf.FeatureFlags).
		Info("starting run")

	raw, err := loadInput(ctx, conf, transport)
	if err != nil {
		logs.Fatal(errors.New("loading input failed").
			WithTag("run_id", runID).
			Wrap(err))
	}

	start := time.Now()
	answer, err := mod.Solve(ctx, raw)
	if err != nil {
		logs.Fatal(errors.New("solving puzzle failed").
			WithTag("run_id", runID).
			WithTag("puzzle", mod.Name()).
			Wrap(err))
	}

	logs.WithTag("run_id", runID).
		WithTag("puzzle", mod.Name()).
		WithTag("answer", answer.Value).
		WithTag("duration", time.Since(start).String()).
		Info("puzzle solved")

	if err := writeAnswer(os.Stdout, conf.Output, answer); err != nil {
		logs.Fatal(err)
	}
}

func validateConfig(conf config) error {
	if conf.Output != outputText && conf.Output != outputJSON {
		return errors.New("invalid output format").
			WithTag("output", conf.Output)
	}

	if conf.Threshold < 0 {
		return errors.New("threshold must not be negative").
			WithTag("threshold", conf.Threshold)
	}

	if conf.Shards < 0 {
		return errors.New("shards must not be negative").
			WithTag("shards", conf.Shards)
	}

	if !conf.SmokeTest && conf.Puzzle == "" {
		return errors.New("have to specify a puzzle")
	}

	return nil
}

func loadInput(ctx context.Context, conf config, transport http.RoundTripper) (string, error) {
	if conf.Input != "" {
		return input.LoadFile(conf.Input)
	}

	loader := input.Loader{
		Dir:       conf.InputDir,
		Endpoint:  conf.InputEndpoint,
		Session:   conf.Session,
		Transport: transport,
	}
	return loader.Load(ctx, conf.Puzzle)
}

func writeAnswer(w io.Writer, format string, answer modules.Answer) error {
	if format == outputJSON {
		return writeJSON(w, answer)
	}

	if _, err := fmt.Fprintln(w, answer); err != nil {
		return errors.New("writing answer failed").Wrap(err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.New("encoding output failed").Wrap(err)
	}

	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return errors.New("writing output failed").Wrap(err)
	}
	return nil
}
