package engine

import (
	"context"
	"math/rand"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/casegen/format"
	"github.com/katalvlaran/casegen/generator"
	"github.com/katalvlaran/casegen/model"
	"github.com/katalvlaran/casegen/resolver"
)

// Batch is the result of one Generate call.
type Batch struct {
	// Testcases[i] is the text of request index i.
	Testcases []string `json:"testcases"`
	// Order lists variable ids in generation order.
	Order []string `json:"order"`
	// Diagnostics lists non-fatal fallbacks by testcase, then by occurrence.
	Diagnostics []model.Diagnostic `json:"diagnostics,omitempty"`
	// Seed is the master seed the batch was generated with.
	Seed int64 `json:"seed"`
}

// Text joins the testcases with a blank line between them.
func (b *Batch) Text() string {
	return format.Join(b.Testcases)
}

// Generate produces count testcases for vars rendered with of.
func Generate(ctx context.Context, vars []model.Variable, count int, of model.OutputFormat, opts ...Option) (*Batch, error) {
	cfg := newConfig(opts...)
	log := cfg.logger.With(zap.Int64("seed", cfg.seed))

	if err := Validate(vars, count, of, cfg.maxCount); err != nil {
		return nil, err
	}

	var (
		order []model.Variable
		err   error
	)
	if cfg.cache != nil {
		order, err = cfg.cache.Order(ctx, vars)
	} else {
		order, err = resolver.Order(vars, resolver.WithContext(ctx))
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(err, "engine: resolve generation order")
	}

	master := rand.New(rand.NewSource(cfg.seed))
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	f := format.New(vars, of, format.WithLogger(log))
	testcases := make([]string, count)
	diags := make([][]model.Diagnostic, count)

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			g := generator.New(
				generator.WithSeed(seeds[i]),
				generator.WithLogger(log),
				generator.WithTestcase(i),
			)
			values := g.Fill(order)
			text, fd := f.Testcase(i, values)

			testcases[i] = text
			diags[i] = append(g.Diagnostics(), fd...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := &Batch{
		Testcases: testcases,
		Order:     make([]string, len(order)),
		Seed:      cfg.seed,
	}
	for i, v := range order {
		b.Order[i] = v.ID
	}
	for _, d := range diags {
		b.Diagnostics = append(b.Diagnostics, d...)
	}
	log.Debug("batch generated",
		zap.Int("testcases", count),
		zap.Int("variables", len(vars)),
		zap.Int("diagnostics", len(b.Diagnostics)),
	)

	return b, nil
}

// Validate checks a request without generating anything. It returns the
// first violation found.
func Validate(vars []model.Variable, count int, of model.OutputFormat, maxCount int) error {
	if len(vars) == 0 {
		return ErrNoVariables
	}
	if len(of.Structure) == 0 {
		return ErrNoOutputLines
	}
	if count < 1 {
		return errors.Wrapf(ErrInvalidCount, "count %d", count)
	}
	if count > maxCount {
		return errors.Wrapf(ErrCountLimit, "count %d, limit %d", count, maxCount)
	}
	if err := model.CheckDefinitions(vars); err != nil {
		return errors.Wrap(err, "engine: invalid variables")
	}

	declared := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		declared[v.ID] = struct{}{}
	}
	for _, id := range of.References() {
		if _, ok := declared[id]; !ok {
			return errors.WithHintf(
				errors.Wrapf(ErrUnknownVariable, "output format references %q", id),
				"declare a variable with id %q or remove it from the output format", id)
		}
	}

	return nil
}
