package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/casegen/engine"
	"github.com/katalvlaran/casegen/export"
	"github.com/katalvlaran/casegen/project"
)

// GenerateCmd generates testcases for a project file.
var GenerateCmd = &cobra.Command{
	Use:   "generate <project>",
	Short: "Generate testcases",
	Long: `Generate testcases for the variables and output layout of a project file.

The testcase count is taken from --count, then from the project's count
field, then from generate.count in the configuration. A fixed --seed makes
the output reproducible.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().IntP("count", "n", 0, "Number of testcases")
	GenerateCmd.Flags().Int64P("seed", "s", 0, "Random seed (0 picks one)")
	GenerateCmd.Flags().IntP("workers", "w", 0, "Concurrent testcase workers")
	GenerateCmd.Flags().StringP("format", "f", "", "Output format: text, json, csv")
	GenerateCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := project.Load(args[0])
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	count := cfg.Generate.Count
	if p.Count > 0 {
		count = p.Count
	}
	if flags.Changed("count") {
		count, _ = flags.GetInt("count")
	}
	seed := cfg.Generate.Seed
	if flags.Changed("seed") {
		seed, _ = flags.GetInt64("seed")
	}
	workers := cfg.Generate.Workers
	if flags.Changed("workers") {
		workers, _ = flags.GetInt("workers")
		if workers < 1 {
			return errors.Newf("--workers must be positive, got %d", workers)
		}
	}
	name := cfg.Output.Format
	if flags.Changed("format") {
		name, _ = flags.GetString("format")
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	opts := []engine.Option{
		engine.WithWorkers(workers),
		engine.WithMaxCount(cfg.Generate.MaxCount),
		engine.WithLogger(log),
	}
	if seed != 0 {
		opts = append(opts, engine.WithSeed(seed))
	}
	if cfg.Generate.PlanCacheSize > 0 {
		pc, err := engine.NewPlanCache(cfg.Generate.PlanCacheSize)
		if err != nil {
			return err
		}
		opts = append(opts, engine.WithPlanCache(pc))
	}

	b, err := engine.Generate(cmd.Context(), p.Variables, count, p.Output, opts...)
	if err != nil {
		return err
	}
	log.Info("generated",
		zap.String("project", p.Name),
		zap.Int("testcases", len(b.Testcases)),
		zap.Int64("seed", b.Seed),
	)

	stderr := cmd.ErrOrStderr()
	for _, d := range b.Diagnostics {
		fmt.Fprint(stderr, pterm.Warning.Sprintf("testcase %d, %s: %s\n", d.Testcase+1, d.Variable, d.Reason))
	}

	out, _ := flags.GetString("output")
	if out == "" {
		return export.Write(cmd.OutOrStdout(), b, f)
	}
	if err := writeFile(out, b, f); err != nil {
		return err
	}
	fmt.Fprint(stderr, pterm.Success.Sprintf("Wrote %d testcases to %s (seed %d)\n", len(b.Testcases), out, b.Seed))

	return nil
}

func writeFile(path string, b *engine.Batch, f export.Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return export.Write(file, b, f)
}
