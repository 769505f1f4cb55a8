package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/casegen/model"
	"github.com/katalvlaran/casegen/project"
)

const pairsYAML = `
name: pairs
count: 3
variables:
  - name: n
    type: int
    constraint: {type: scalar, min: 1, max: 5}
  - id: v1
    name: arr
    type: array
    constraint:
      type: array
      sizeType: linked
      linkedVariable: n
output:
  structure:
    - type: single
      variableIds: [n]
    - id: body
      type: space_separated
      variableIds: [arr]
`

const pairsTOML = `
name = "pairs"
count = 3

[[variables]]
name = "n"
type = "int"
constraint = { type = "scalar", min = 1, max = 5 }

[[variables]]
id = "v1"
name = "arr"
type = "array"
constraint = { type = "array", sizeType = "linked", linkedVariable = "n" }

[output]
[[output.structure]]
type = "single"
variableIds = ["n"]

[[output.structure]]
id = "body"
type = "space_separated"
variableIds = ["arr"]
`

const pairsJSON = `{
  "name": "pairs",
  "count": 3,
  "variables": [
    {"name": "n", "type": "int", "constraint": {"type": "scalar", "min": 1, "max": 5}},
    {"id": "v1", "name": "arr", "type": "array",
     "constraint": {"type": "array", "sizeType": "linked", "linkedVariable": "n"}}
  ],
  "output": {"structure": [
    {"type": "single", "variableIds": ["n"]},
    {"id": "body", "type": "space_separated", "variableIds": ["arr"]}
  ]}
}`

// TestDecode_Formats decodes the same definition from every encoding.
func TestDecode_Formats(t *testing.T) {
	tests := []struct {
		name string
		data string
		f    project.Format
	}{
		{"yaml", pairsYAML, project.FormatYAML},
		{"toml", pairsTOML, project.FormatTOML},
		{"json", pairsJSON, project.FormatJSON},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := project.Decode([]byte(tc.data), tc.f)
			require.NoError(t, err)

			assert.Equal(t, "pairs", p.Name)
			assert.Equal(t, 3, p.Count)
			require.Len(t, p.Variables, 2)

			n := p.Variables[0]
			assert.Equal(t, "n", n.ID, "id defaults to name")
			sc, ok := n.Constraint.(*model.ScalarConstraint)
			require.True(t, ok)
			assert.Equal(t, int64(1), *sc.Min)
			assert.Equal(t, int64(5), *sc.Max)

			arr := p.Variables[1]
			assert.Equal(t, "v1", arr.ID)
			ac, ok := arr.Constraint.(*model.ArrayConstraint)
			require.True(t, ok)
			assert.Equal(t, model.SizeLinked, ac.SizeType)
			assert.Equal(t, "n", ac.LinkedVariable)

			require.Len(t, p.Output.Structure, 2)
			assert.Equal(t, model.LineSingle, p.Output.Structure[0].Type)
			assert.Equal(t, []string{"v1"}, p.Output.Structure[1].VariableIDs, "name resolved to id")
			assert.Equal(t, "pairs", p.Output.Name)
		})
	}
}

// TestDecode_LineIDs assigns a UUID only where the id is missing.
func TestDecode_LineIDs(t *testing.T) {
	p, err := project.Decode([]byte(pairsJSON), project.FormatJSON)
	require.NoError(t, err)

	_, err = uuid.Parse(p.Output.Structure[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, "body", p.Output.Structure[1].ID)
}

// TestDecode_IDWinsOverName keeps a reference that is already an id.
func TestDecode_IDWinsOverName(t *testing.T) {
	raw := `{"variables":[{"id":"a","name":"b"},{"id":"b","name":"a"}],
		"output":{"structure":[{"type":"single","variableIds":["a","b"]}]}}`
	p, err := project.Decode([]byte(raw), project.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, p.Output.Structure[0].VariableIDs)
}

// TestDecode_Errors covers malformed input and unknown encodings.
func TestDecode_Errors(t *testing.T) {
	_, err := project.Decode([]byte("a: [1"), project.FormatYAML)
	assert.Error(t, err)

	_, err = project.Decode([]byte("a = "), project.FormatTOML)
	assert.Error(t, err)

	_, err = project.Decode([]byte(`{"variables":[{"constraint":{"type":"hypercube"}}]}`), project.FormatJSON)
	assert.True(t, errors.Is(err, model.ErrUnknownConstraintKind))

	_, err = project.Decode([]byte("{}"), "xml")
	assert.True(t, errors.Is(err, project.ErrUnsupportedFormat))
}

// TestLoad reads a file and picks the decoder by extension.
func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "pairs.yml")
	require.NoError(t, os.WriteFile(path, []byte(pairsYAML), 0o600))
	p, err := project.Load(path)
	require.NoError(t, err)
	assert.Len(t, p.Variables, 2)

	_, err = project.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "pairs.ini")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0o600))
	_, err = project.Load(bad)
	assert.True(t, errors.Is(err, project.ErrUnsupportedFormat))
}

// TestFormatOf maps extensions case-insensitively.
func TestFormatOf(t *testing.T) {
	for path, want := range map[string]project.Format{
		"a.yaml": project.FormatYAML,
		"a.YML":  project.FormatYAML,
		"a.toml": project.FormatTOML,
		"a.json": project.FormatJSON,
	} {
		got, err := project.FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}
