// Package format renders generated values into testcase text according to
// a declarative output layout.
//
// Each output line collects one fragment per referenced variable and joins
// them by line type:
//
//	single            first fragment only
//	space_separated   fragments joined by " "
//	newline_separated one output line per fragment
//	custom            fragments joined by the line's separator (" " if unset)
//
// Sequences render as space-joined numbers. Grids render one fragment per
// row on single and newline_separated lines and one space-joined blob
// otherwise. Scalars and text render verbatim.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/casegen/model"
)

// TestcaseSeparator separates testcases in a joined batch.
const TestcaseSeparator = "\n\n"

// Formatter renders testcases for one output format.
type Formatter struct {
	of     model.OutputFormat
	labels map[string]string
	logger *zap.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLogger reports dangling references to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("format: WithLogger(nil)")
	}
	return func(f *Formatter) { f.logger = l }
}

// New returns a Formatter for of. vars supplies display names for
// diagnostics.
func New(vars []model.Variable, of model.OutputFormat, opts ...Option) *Formatter {
	f := &Formatter{
		of:     of,
		labels: make(map[string]string, len(vars)),
		logger: zap.NewNop(),
	}
	for _, v := range vars {
		f.labels[v.ID] = v.Label()
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Testcase renders values as one testcase. References without a value are
// skipped and reported as diagnostics stamped with index.
func (f *Formatter) Testcase(index int, values model.Values) (string, []model.Diagnostic) {
	var (
		lines []string
		diags []model.Diagnostic
	)

	for _, line := range f.of.Structure {
		if len(line.VariableIDs) == 0 {
			continue
		}

		var parts []string
		for _, id := range line.VariableIDs {
			v, ok := values[id]
			if !ok {
				reason := fmt.Sprintf("output line %q references %q which has no value", line.ID, id)
				diags = append(diags, model.Diagnostic{Testcase: index, VariableID: id, Variable: f.labels[id], Reason: reason})
				f.logger.Warn("dangling output reference",
					zap.Int("testcase", index),
					zap.String("line", line.ID),
					zap.String("variable", id),
				)
				continue
			}
			parts = append(parts, Render(v, line.Type)...)
		}
		if len(parts) == 0 {
			continue
		}

		lines = append(lines, combine(line, parts)...)
	}

	return strings.Join(lines, "\n"), diags
}

// Render returns the fragments of v for a line of type lt.
func Render(v model.Value, lt model.LineType) []string {
	switch v := v.(type) {
	case model.Scalar:
		return []string{strconv.FormatInt(int64(v), 10)}
	case model.Text:
		return []string{string(v)}
	case model.Sequence:
		return []string{joinInts(v)}
	case model.Grid:
		rows := make([]string, len(v))
		for i, row := range v {
			rows[i] = joinInts(row)
		}
		if lt == model.LineSingle || lt == model.LineNewlineSeparated {
			return rows
		}
		return []string{strings.Join(rows, " ")}
	}

	return []string{fmt.Sprint(v)}
}

func combine(line model.OutputLine, parts []string) []string {
	switch line.Type {
	case model.LineSingle:
		return parts[:1]
	case model.LineNewlineSeparated:
		return parts
	case model.LineCustom:
		sep := line.CustomSeparator
		if sep == "" {
			sep = " "
		}
		return []string{strings.Join(parts, sep)}
	}

	return []string{strings.Join(parts, " ")}
}

func joinInts(xs []int64) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(x, 10))
	}
	return b.String()
}

// Join concatenates testcases with a blank line between them.
func Join(testcases []string) string {
	return strings.Join(testcases, TestcaseSeparator)
}
