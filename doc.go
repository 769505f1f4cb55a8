// Package casegen generates programming contest testcases from variable
// constraints.
//
// A request is a list of variables, each with a type and a constraint, and
// an output layout. Variables may reference other variables (an array whose
// size is the value of n, a scalar bounded by another scalar); the engine
// orders them so every variable is generated after the ones it reads, fills
// one testcase at a time and renders it line by line.
//
// Packages:
//
//	model/     - variables, constraints, values, output layout, validation
//	resolver/  - dependency ordering with cycle detection
//	generator/ - scalar, array, matrix, string, tree and graph generators
//	format/    - testcase rendering
//	engine/    - batch generation over a worker pool
//	project/   - YAML, TOML and JSON project files
//	export/    - text, JSON and CSV output
//	config/    - CLI settings
//	logger/    - zap logger construction
//
// Quick example:
//
//	n   int    [1-5]
//	arr array  size: n
//
//	3
//	4 17 92
//
// The casegen command in cmd/casegen wraps the engine for project files.
package casegen
