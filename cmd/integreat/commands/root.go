package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// Method names accepted by --method.
const (
	MethodCosine       = "CosineSimilarity"
	MethodRandomWalker = "RandomWalker"
)

// NaN policy names accepted by --nanPolicy.
const (
	NaNPolicyZero      = "zero"
	NaNPolicyPropagate = "propagate"
)

var cfg = runConfig{}

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "integreat",
	Short: "Score per-entity consistency across multi-level experiments",
	Long: `integreat integrates measurements of one entity set produced by
multiple independent experiments ("levels") and reports, per entity,
how consistently that entity behaves across all level pairs.

The data CSV (required) carries one measurement per row:

  dataLevel,dataReplicate,vertex,intensity

The vertex CSV (optional) carries cross-level entity similarities:

  vertexLevel1,vertexLevel2,vertex1,vertex2,similarity

Output is a tab-separated table on stdout, one line per entity:
entity name, then its score (NaN when undefined).

Examples:
  # Cosine alignment with defaults
  integreat --dataInput data.csv

  # Protein isoform suffixes: ARG29 vs ARG29_7 count as one entity
  integreat --dataInput data.csv --entityDiff _

  # Random-walk alignment with a higher restart probability
  integreat --dataInput data.csv --method RandomWalker --walkerRestart 0.1
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyConfigFile(cmd); err != nil {
			return err
		}
		setupLogging(cfg.Verbose)

		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), cfg, os.Stdout)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfg.DataInput, "dataInput", "", "data CSV file (required)")
	f.StringVar(&cfg.VertexInput, "vertexInput", "", "vertex-similarity CSV file")
	f.StringVar(&cfg.EntityDiff, "entityDiff", "", "entity-diff separator for the identity vertex map")
	f.StringVar(&cfg.Method, "method", MethodCosine, "alignment method: CosineSimilarity or RandomWalker")
	f.Float64Var(&cfg.WalkerRestart, "walkerRestart", 0.05, "random-walk restart probability in (0,1)")
	f.IntVar(&cfg.Steps, "steps", 10000, "bootstrap/permutation trials or walk steps (>= 1)")
	f.StringVar(&cfg.NaNPolicy, "nanPolicy", NaNPolicyZero, "bootstrap NaN policy: zero or propagate")
	f.BoolVar(&cfg.Permutation, "permutation", false, "permutation p-value instead of the BCa bootstrap")
	f.Int64Var(&cfg.Seed, "seed", 1, "global seed of the deterministic regime")
	f.IntVar(&cfg.Workers, "workers", 0, "worker-pool size (0 = all CPUs)")
	f.StringVar(&cfg.Truth, "truth", "", "ground-truth entity list; prints ranking accuracy to stderr")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging, incl. per-entity statistics")
	f.StringVar(&cfgFile, "config", "", "YAML file with flag defaults")

	_ = rootCmd.MarkFlagRequired("dataInput")
}

// applyConfigFile loads --config and fills every flag the user did not
// set explicitly. Explicit flags always win.
func applyConfigFile(cmd *cobra.Command) error {
	if cfgFile == "" {
		return nil
	}
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var fileCfg runConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("config %s: %w", cfgFile, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("dataInput") && fileCfg.DataInput != "" {
		// Set through the flag so the required-flag check sees it.
		if err := flags.Set("dataInput", fileCfg.DataInput); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if !flags.Changed("vertexInput") && fileCfg.VertexInput != "" {
		cfg.VertexInput = fileCfg.VertexInput
	}
	if !flags.Changed("entityDiff") && fileCfg.EntityDiff != "" {
		cfg.EntityDiff = fileCfg.EntityDiff
	}
	if !flags.Changed("method") && fileCfg.Method != "" {
		cfg.Method = fileCfg.Method
	}
	if !flags.Changed("walkerRestart") && fileCfg.WalkerRestart != 0 {
		cfg.WalkerRestart = fileCfg.WalkerRestart
	}
	if !flags.Changed("steps") && fileCfg.Steps != 0 {
		cfg.Steps = fileCfg.Steps
	}
	if !flags.Changed("nanPolicy") && fileCfg.NaNPolicy != "" {
		cfg.NaNPolicy = fileCfg.NaNPolicy
	}
	if !flags.Changed("permutation") && fileCfg.Permutation {
		cfg.Permutation = true
	}
	if !flags.Changed("seed") && fileCfg.Seed != 0 {
		cfg.Seed = fileCfg.Seed
	}
	if !flags.Changed("workers") && fileCfg.Workers != 0 {
		cfg.Workers = fileCfg.Workers
	}
	if !flags.Changed("truth") && fileCfg.Truth != "" {
		cfg.Truth = fileCfg.Truth
	}

	return nil
}

// setupLogging installs the process-wide slog handler on stderr.
// Diagnostics never touch stdout; the score table owns it.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
