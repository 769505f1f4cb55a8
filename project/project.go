// Package project loads generation requests from definition files.
//
// A definition holds a name, an optional testcase count, the variables and
// the output layout. YAML, TOML and JSON files share one schema, the JSON
// shape of model.Variable and model.OutputFormat:
//
//	name: pairs
//	count: 3
//	variables:
//	  - name: n
//	    type: int
//	    constraint: {type: scalar, min: 1, max: 10}
//	output:
//	  structure:
//	    - type: space_separated
//	      variableIds: [n]
//
// After decoding, a variable without an id takes its name as id, an output
// line without an id gets a random UUID, and output references that match a
// variable name rather than an id are rewritten to that variable's id.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/casegen/model"
)

// ErrUnsupportedFormat indicates a definition format other than YAML,
// TOML or JSON.
var ErrUnsupportedFormat = errors.New("project: unsupported format")

// Format names a definition file encoding.
type Format string

// Supported encodings.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Project is one generation request.
type Project struct {
	Name      string             `json:"name"`
	Count     int                `json:"count,omitempty"`
	Variables []model.Variable   `json:"variables"`
	Output    model.OutputFormat `json:"output"`
}

// FormatOf infers the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "file %q", path)
}

// Load reads and decodes the definition file at path.
func Load(path string) (*Project, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "project: read %s", path)
	}

	p, err := Decode(data, f)
	if err != nil {
		return nil, errors.Wrapf(err, "project: %s", path)
	}
	return p, nil
}

// Decode parses a definition in the given encoding. YAML and TOML are
// normalized to JSON first so that the tagged constraint codec in model
// applies to every format.
func Decode(data []byte, f Format) (*Project, error) {
	raw := data
	switch f {
	case FormatJSON:
	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "project: parse yaml")
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "project: convert yaml")
		}
		raw = b
	case FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "project: parse toml")
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.Wrap(err, "project: convert toml")
		}
		raw = b
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %q", f)
	}

	var p Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrap(err, "project: decode")
	}
	p.normalize()

	return &p, nil
}

func (p *Project) normalize() {
	if p.Output.Name == "" {
		p.Output.Name = p.Name
	}

	ids := make(map[string]struct{}, len(p.Variables))
	for i := range p.Variables {
		v := &p.Variables[i]
		if v.ID == "" {
			v.ID = v.Name
		}
		ids[v.ID] = struct{}{}
	}
	byName := make(map[string]string, len(p.Variables))
	for _, v := range p.Variables {
		if v.Name != "" {
			if _, taken := byName[v.Name]; !taken {
				byName[v.Name] = v.ID
			}
		}
	}

	for i := range p.Output.Structure {
		line := &p.Output.Structure[i]
		if line.ID == "" {
			line.ID = uuid.NewString()
		}
		for j, ref := range line.VariableIDs {
			if _, ok := ids[ref]; ok {
				continue
			}
			if id, ok := byName[ref]; ok {
				line.VariableIDs[j] = id
			}
		}
	}
}
