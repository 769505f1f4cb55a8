// Package export writes generated batches in downloadable encodings.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/casegen/engine"
)

// ErrUnknownFormat indicates an export encoding that is not supported.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format names an export encoding.
type Format string

// Encodings.
const (
	// Text is the testcase text joined by blank lines.
	Text Format = "text"
	// JSON is {"testcases": [...]}.
	JSON Format = "json"
	// CSV has an index,testcase header and one row per testcase,
	// numbered from 1.
	CSV Format = "csv"
)

// Formats lists the supported encodings.
func Formats() []Format { return []Format{Text, JSON, CSV} }

// ParseFormat validates a user supplied encoding name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Text, JSON, CSV:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Write encodes b to w.
func Write(w io.Writer, b *engine.Batch, f Format) error {
	switch f {
	case Text:
		text := b.Text()
		if text != "" {
			text += "\n"
		}
		_, err := io.WriteString(w, text)
		return errors.Wrap(err, "export: write text")

	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		doc := struct {
			Testcases []string `json:"testcases"`
		}{Testcases: b.Testcases}
		if doc.Testcases == nil {
			doc.Testcases = []string{}
		}
		return errors.Wrap(enc.Encode(doc), "export: write json")

	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"index", "testcase"}); err != nil {
			return errors.Wrap(err, "export: write csv")
		}
		for i, tc := range b.Testcases {
			if err := cw.Write([]string{strconv.Itoa(i + 1), tc}); err != nil {
				return errors.Wrap(err, "export: write csv")
			}
		}
		cw.Flush()
		return errors.Wrap(cw.Error(), "export: write csv")
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", f)
}
