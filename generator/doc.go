// SPDX-License-Identifier: MIT
// Package: casegen/generator
//
// Package generator synthesizes one value per variable from its constraint
// and the values already generated for the current testcase.
//
// A Generator belongs to a single testcase: it owns one *rand.Rand and the
// diagnostics recorded while filling one values map. Create one per
// testcase (or per goroutine); a Generator is not safe for concurrent use.
//
// Variants and their value shapes:
//
//	ScalarConstraint -> model.Scalar
//	ArrayConstraint  -> model.Sequence
//	MatrixConstraint -> model.Grid
//	StringConstraint -> model.Text
//	TreeConstraint   -> model.Sequence or model.Grid, per TreeConstraint.Output
//	GraphConstraint  -> model.Grid, per GraphConstraint.Output
//
// Nothing here fails. Missing dependency values, empty ranges, exhausted
// retries and unknown types fall back to documented defaults and are
// recorded as model.Diagnostic values (and logged at WARN).
//
// Determinism: for a fixed seed and a fixed generation order every value is
// reproducible.
package generator
