// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostic is pure data: severity, stable numeric code, message, a primary
// span, and optional notes. Producers emit through a Reporter so they never
// couple to storage or formatting; BagReporter aggregates into a Bag, which
// supports sorting, deduplication, and a hard size limit. Rendering lives in
// internal/diagfmt.
//
// No diagnostic ever aborts a parse: the lexer and parser report and keep
// going, so an editor always receives a best-effort tree alongside the bag.
package diag
