package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/casegen/format"
	"github.com/katalvlaran/casegen/model"
)

func layout(lines ...model.OutputLine) model.OutputFormat {
	return model.OutputFormat{Name: "test", Structure: lines}
}

func line(t model.LineType, ids ...string) model.OutputLine {
	return model.OutputLine{ID: string(t), Type: t, VariableIDs: ids}
}

var values = model.Values{
	"n":   model.Scalar(3),
	"s":   model.Text("abc"),
	"arr": model.Sequence{4, 5, 6},
	"m":   model.Grid{{1, 2}, {3, 4}},
}

// TestTestcase_LineTypes covers each combination rule.
func TestTestcase_LineTypes(t *testing.T) {
	custom := line(model.LineCustom, "n", "arr")
	custom.CustomSeparator = ", "
	customDefault := line(model.LineCustom, "n", "s")

	tests := []struct {
		name string
		line model.OutputLine
		want string
	}{
		{"single scalar", line(model.LineSingle, "n"), "3"},
		{"single takes the first fragment", line(model.LineSingle, "arr", "n"), "4 5 6"},
		{"single grid keeps the first row", line(model.LineSingle, "m"), "1 2"},
		{"space separated", line(model.LineSpaceSeparated, "n", "arr", "s"), "3 4 5 6 abc"},
		{"space separated grid is one blob", line(model.LineSpaceSeparated, "m"), "1 2 3 4"},
		{"newline separated", line(model.LineNewlineSeparated, "n", "s"), "3\nabc"},
		{"newline separated grid rows", line(model.LineNewlineSeparated, "n", "m"), "3\n1 2\n3 4"},
		{"custom separator", custom, "3, 4 5 6"},
		{"custom default separator", customDefault, "3 abc"},
		{"unknown type joins with space", line("zigzag", "n", "s"), "3 abc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, diags := format.New(nil, layout(tc.line)).Testcase(0, values)
			assert.Equal(t, tc.want, out)
			assert.Empty(t, diags)
		})
	}
}

// TestTestcase_MultipleLines joins lines with newlines and skips empty ones.
func TestTestcase_MultipleLines(t *testing.T) {
	f := format.New(nil, layout(
		line(model.LineSingle, "n"),
		model.OutputLine{ID: "blank", Type: model.LineSingle},
		line(model.LineSpaceSeparated, "arr"),
	))

	out, _ := f.Testcase(0, values)
	assert.Equal(t, "3\n4 5 6", out)
}

// TestTestcase_DanglingReference skips the id and reports it.
func TestTestcase_DanglingReference(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	vars := []model.Variable{{ID: "ghost", Name: "Ghost"}}
	f := format.New(vars, layout(
		line(model.LineSpaceSeparated, "n", "ghost"),
		line(model.LineSingle, "ghost"),
	), format.WithLogger(zap.New(core)))

	out, diags := f.Testcase(2, values)
	assert.Equal(t, "3", out)
	require.Len(t, diags, 2)
	assert.Equal(t, 2, diags[0].Testcase)
	assert.Equal(t, "ghost", diags[0].VariableID)
	assert.Equal(t, "Ghost", diags[0].Variable)
	assert.Equal(t, 2, logs.FilterMessage("dangling output reference").Len())
}

// TestJoin puts a blank line between testcases.
func TestJoin(t *testing.T) {
	assert.Equal(t, "1 1\n\n1 1\n\n1 1", format.Join([]string{"1 1", "1 1", "1 1"}))
	assert.Equal(t, "5", format.Join([]string{"5"}))
	assert.Equal(t, "", format.Join(nil))
}

// TestRender_EmptyValues renders empty containers without panicking.
func TestRender_EmptyValues(t *testing.T) {
	assert.Equal(t, []string{""}, format.Render(model.Sequence{}, model.LineSingle))
	assert.Empty(t, format.Render(model.Grid{}, model.LineNewlineSeparated))
	assert.Equal(t, []string{""}, format.Render(model.Grid{}, model.LineSpaceSeparated))
	assert.Equal(t, []string{"-1 7"}, format.Render(model.Sequence{-1, 7}, model.LineCustom))
}
