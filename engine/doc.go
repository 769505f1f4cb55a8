// Package engine is the batch boundary of casegen: it validates a request,
// orders variables once, generates count independent testcases and formats
// them.
//
// Generate rejects the whole request (no partial output) when the variable
// list or output layout is empty, the count is out of range, variable ids
// are empty or duplicated, a known type carries the wrong constraint kind,
// an output line references an undeclared variable, or the variables form a
// dependency cycle.
//
// Testcases run in parallel on a bounded worker pool. Testcase i draws from
// its own random source seeded from the i-th value of the master seed
// stream, so a batch is reproducible for a fixed seed whatever the worker
// count, and Batch.Testcases[i] always belongs to request index i.
package engine
