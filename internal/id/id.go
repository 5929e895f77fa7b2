// Package id generates run identifiers for log correlation.
package id

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// runIDLength keeps run IDs short enough to read in log lines while
// leaving no realistic collision chance for a one-shot tool.
const runIDLength = 12

// Run returns a fresh identifier for one analysis run, e.g. "run-V1StGXR8_Z5j".
// Panics if the system cannot provide secure randomness, which for a CLI
// should abort the process anyway.
func Run() string {
	return "run-" + gonanoid.Must(runIDLength)
}
