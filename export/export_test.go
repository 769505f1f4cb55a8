package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/casegen/engine"
	"github.com/katalvlaran/casegen/export"
)

func batch() *engine.Batch {
	return &engine.Batch{Testcases: []string{"3\n1 2 3", "1\n7"}}
}

// TestWrite_Text joins testcases with a blank line.
func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, batch(), export.Text))
	assert.Equal(t, "3\n1 2 3\n\n1\n7\n", buf.String())
}

// TestWrite_JSON wraps testcases in an object.
func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, batch(), export.JSON))

	var doc map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, map[string][]string{"testcases": {"3\n1 2 3", "1\n7"}}, doc)

	buf.Reset()
	require.NoError(t, export.Write(&buf, &engine.Batch{}, export.JSON))
	assert.JSONEq(t, `{"testcases":[]}`, buf.String())
}

// TestWrite_CSV quotes multi-line cells and numbers rows from 1.
func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, batch(), export.CSV))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"index", "testcase"},
		{"1", "3\n1 2 3"},
		{"2", "1\n7"},
	}, rows)
}

// TestWrite_UnknownFormat rejects other encodings.
func TestWrite_UnknownFormat(t *testing.T) {
	err := export.Write(&bytes.Buffer{}, batch(), "xml")
	assert.True(t, errors.Is(err, export.ErrUnknownFormat))
}

// TestParseFormat normalizes names.
func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", " JSON ", "Csv"} {
		_, err := export.ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := export.ParseFormat("yaml")
	assert.True(t, errors.Is(err, export.ErrUnknownFormat))
	assert.Len(t, export.Formats(), 3)
}
