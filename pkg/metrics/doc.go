// Package metrics exposes Prometheus counters for the blog's outbound mail
// and spreadsheet calls, and decorators that record them.
package metrics
