package model

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// variableWire is the JSON shape of a Variable with the constraint left raw
// until its "type" tag has been read.
type variableWire struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         VarType         `json:"type"`
	Constraint   json.RawMessage `json:"constraint,omitempty"`
	Dependencies []string        `json:"dependencies,omitempty"`
}

// UnmarshalJSON decodes a variable and its tagged constraint.
func (v *Variable) UnmarshalJSON(data []byte) error {
	var w variableWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Wrap(err, "model: decode variable")
	}

	*v = Variable{
		ID:           w.ID,
		Name:         w.Name,
		Type:         w.Type,
		Dependencies: w.Dependencies,
	}

	raw := bytes.TrimSpace(w.Constraint)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	c, err := DecodeConstraint(raw)
	if err != nil {
		return errors.Wrapf(err, "model: variable %q", v.Label())
	}
	v.Constraint = c

	return nil
}

// MarshalJSON encodes a variable with its constraint tagged by kind.
func (v Variable) MarshalJSON() ([]byte, error) {
	w := variableWire{
		ID:           v.ID,
		Name:         v.Name,
		Type:         v.Type,
		Dependencies: v.Dependencies,
	}
	if v.Constraint != nil {
		raw, err := EncodeConstraint(v.Constraint)
		if err != nil {
			return nil, err
		}
		w.Constraint = raw
	}

	return json.Marshal(w)
}

// DecodeConstraint decodes a tagged constraint object. The "type" field
// selects the variant; an unknown tag yields ErrUnknownConstraintKind.
func DecodeConstraint(data []byte) (Constraint, error) {
	var tag struct {
		Type ConstraintKind `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, errors.Wrap(err, "model: decode constraint tag")
	}

	var c Constraint
	switch tag.Type {
	case KindScalar:
		c = &ScalarConstraint{}
	case KindArray:
		c = &ArrayConstraint{}
	case KindMatrix:
		c = &MatrixConstraint{}
	case KindString:
		c = &StringConstraint{}
	case KindTree:
		c = &TreeConstraint{}
	case KindGraph:
		c = &GraphConstraint{}
	default:
		return nil, errors.Wrapf(ErrUnknownConstraintKind, "tag %q", tag.Type)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "model: decode %s constraint", tag.Type)
	}

	return c, nil
}

// EncodeConstraint encodes c as a JSON object carrying its "type" tag.
func EncodeConstraint(c Constraint) ([]byte, error) {
	body, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "model: encode %s constraint", c.Kind())
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(body, &fields); err != nil {
		return nil, errors.Wrapf(err, "model: encode %s constraint", c.Kind())
	}
	kind, _ := json.Marshal(c.Kind())
	fields["type"] = kind

	return json.Marshal(fields)
}
