// Package logsum provides a table-driven approximation of log(exp(a)+exp(b))
// for combining log-space probabilities, as used throughout the bounded and
// cloud-search DP recurrences. The table is initialised once, process-wide,
// on first use and is read-only thereafter.
package logsum
