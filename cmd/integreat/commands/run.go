package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/jay11071998/integreat/cosine"
	"github.com/jay11071998/integreat/dataset"
	"github.com/jay11071998/integreat/edgesim"
	"github.com/jay11071998/integreat/ids"
	"github.com/jay11071998/integreat/rank"
	"github.com/jay11071998/integreat/vertexsim"
	"github.com/jay11071998/integreat/walker"
)

// runConfig carries every CLI parameter; yaml tags match the flag
// names so a --config file reads like the command line.
type runConfig struct {
	DataInput     string  `yaml:"dataInput"`
	VertexInput   string  `yaml:"vertexInput"`
	EntityDiff    string  `yaml:"entityDiff"`
	Method        string  `yaml:"method"`
	WalkerRestart float64 `yaml:"walkerRestart"`
	Steps         int     `yaml:"steps"`
	NaNPolicy     string  `yaml:"nanPolicy"`
	Permutation   bool    `yaml:"permutation"`
	Seed          int64   `yaml:"seed"`
	Workers       int     `yaml:"workers"`
	Truth         string  `yaml:"truth"`
	Verbose       bool    `yaml:"-"`
}

// validate rejects configuration defects before any file is touched.
func (c runConfig) validate() error {
	if c.Method != MethodCosine && c.Method != MethodRandomWalker {
		return fmt.Errorf("%q: %w", c.Method, ErrUnknownMethod)
	}
	if c.NaNPolicy != NaNPolicyZero && c.NaNPolicy != NaNPolicyPropagate {
		return fmt.Errorf("%q: %w", c.NaNPolicy, ErrBadNaNPolicy)
	}
	if c.WalkerRestart <= 0 || c.WalkerRestart >= 1 {
		return fmt.Errorf("%v: %w", c.WalkerRestart, ErrBadRestart)
	}
	if c.Steps < 1 {
		return fmt.Errorf("%d: %w", c.Steps, ErrBadSteps)
	}

	return nil
}

// run is the whole batch pipeline: ingest, align every level pair,
// aggregate, print.
func run(ctx context.Context, cfg runConfig, stdout io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Ingestion. The registry freezes before any compute stage.
	reg := ids.NewRegistry()
	levels, order, err := ingest(cfg, reg)
	if err != nil {
		return err
	}
	n := reg.Len()
	slog.Debug("ingested", "levels", len(order), "entities", n)

	matrices := make(map[string]*edgesim.Matrix, len(order))
	for _, name := range order {
		matrices[name] = edgesim.Build(levels[name])
	}

	vmap, err := vertexMap(cfg, reg, levels, order)
	if err != nil {
		return err
	}

	// One alignment per unordered level pair, in sorted order.
	var perPair [][]float64
	for a := 0; a < len(order); a++ {
		for b := a + 1; b < len(order); b++ {
			lo, hi := order[a], order[b]
			scores, err := alignPair(ctx, cfg, matrices[lo], matrices[hi], vmap.Pairs(lo, hi), n, lo+"|"+hi, reg)
			if err != nil {
				return fmt.Errorf("align %s vs %s: %w", lo, hi, err)
			}
			perPair = append(perPair, scores)
		}
	}

	flat, err := rank.Flatten(perPair)
	if err != nil {
		return err
	}
	if flat == nil {
		// A single level has no pairs to agree or disagree on.
		flat = make([]float64, n)
		for i := range flat {
			flat[i] = math.NaN()
		}
	}

	if err := rank.Print(stdout, flat, reg); err != nil {
		return err
	}

	return reportAccuracy(cfg, flat, reg)
}

func ingest(cfg runConfig, reg *ids.Registry) (map[string]*dataset.StandardLevel, []string, error) {
	f, err := os.Open(cfg.DataInput)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := dataset.ReadData(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.DataInput, err)
	}
	levels, order, err := dataset.BuildLevels(rows, reg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.DataInput, err)
	}
	reg.Freeze()

	return levels, order, nil
}

func vertexMap(cfg runConfig, reg *ids.Registry, levels map[string]*dataset.StandardLevel, order []string) (*vertexsim.Map, error) {
	if cfg.VertexInput == "" {
		return vertexsim.Identity(levels, order, reg, cfg.EntityDiff), nil
	}

	f, err := os.Open(cfg.VertexInput)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := dataset.ReadVertexSim(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.VertexInput, err)
	}
	m, err := vertexsim.FromRows(rows, reg, levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.VertexInput, err)
	}

	return m, nil
}

// alignPair dispatches one level pair to the configured method.
func alignPair(ctx context.Context, cfg runConfig, e1, e2 *edgesim.Matrix, v []edgesim.Triple, n int, pair string, reg *ids.Registry) ([]float64, error) {
	if cfg.Method == MethodRandomWalker {
		opts := walker.DefaultOptions()
		opts.Restart = cfg.WalkerRestart
		opts.Steps = cfg.Steps

		return walker.Align(e1, e2, v, n, opts)
	}

	opts := cosine.DefaultOptions()
	opts.Steps = cfg.Steps
	opts.Permutation = cfg.Permutation
	opts.Seed = cfg.Seed
	opts.Workers = cfg.Workers
	if cfg.NaNPolicy == NaNPolicyPropagate {
		opts.NaN = cosine.NaNPropagate
	}

	res, err := cosine.Align(ctx, e1, e2, v, n, pair, opts)
	if err != nil {
		return nil, err
	}
	logStatistics(pair, res, reg)

	return res.Scores, nil
}

// logStatistics emits the per-entity confidence statistics at Debug.
func logStatistics(pair string, res *cosine.Result, reg *ids.Registry) {
	for i, st := range res.Stats {
		if st.Kind == cosine.StatNone {
			continue
		}
		name, _ := reg.Lookup(i)
		switch st.Kind {
		case cosine.StatBootstrap:
			slog.Debug("bootstrap", "pair", pair, "entity", name,
				"point", st.Point, "lower", st.Lower, "upper", st.Upper, "level", st.Level)
		case cosine.StatPValue:
			slog.Debug("permutation", "pair", pair, "entity", name,
				"score", res.Scores[i], "p", st.P)
		}
	}
}

// reportAccuracy prints the ranking accuracy against --truth, if given.
func reportAccuracy(cfg runConfig, flat []float64, reg *ids.Registry) error {
	if cfg.Truth == "" {
		return nil
	}
	f, err := os.Open(cfg.Truth)
	if err != nil {
		return err
	}
	defer f.Close()

	truth, err := rank.ReadTruth(f, reg)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Truth, err)
	}
	acc := rank.Accuracy(rank.Ranking(flat), truth)
	fmt.Fprintf(os.Stderr, "accuracy\t%g\n", acc)

	return nil
}
