package model

// LineType says how the fragments of one output line are combined.
type LineType string

// Output line types.
const (
	LineSingle           LineType = "single"
	LineSpaceSeparated   LineType = "space_separated"
	LineNewlineSeparated LineType = "newline_separated"
	LineCustom           LineType = "custom"
)

// OutputLine is one declarative row of the output layout.
type OutputLine struct {
	ID              string   `json:"id"`
	Type            LineType `json:"type"`
	VariableIDs     []string `json:"variableIds"`
	CustomSeparator string   `json:"customSeparator,omitempty"`
	Description     string   `json:"description,omitempty"`
}

// OutputFormat is the ordered layout of one testcase.
type OutputFormat struct {
	ID        string       `json:"id,omitempty"`
	Name      string       `json:"name"`
	Structure []OutputLine `json:"structure"`
}

// References returns every variable id named by the layout, in order of
// first appearance.
func (f OutputFormat) References() []string {
	var d depSet
	for _, line := range f.Structure {
		for _, id := range line.VariableIDs {
			d.add(id)
		}
	}
	return d.ids
}
