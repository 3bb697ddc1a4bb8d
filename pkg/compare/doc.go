// Package compare is the pure comparison pipeline for color-analysis records.
//
// Documents flow through Extract, Apply (filters), GroupByColorName, Align,
// and Format. Every function is total: malformed input degrades to empty or
// defaulted values, never to an error. Nothing here blocks, allocates shared
// state, or mutates its arguments, so the pipeline can be rerun on every
// selection or filter change.
package compare
