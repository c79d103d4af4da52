// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides Go testing benchmarks for PGO profile generation.
// They cover the hot paths of benchsuite:
//   - each workload kernel at reduced and reference parameters
//   - the suite driver (planning, timing, text reporting)
//   - configuration loading and CUE schema validation
//
// To generate a PGO profile, run:
//
//	go test ./internal/benchmark -run='^$' -bench=. -cpuprofile=default.pgo
//
// Reference-size benchmarks are skipped with -short.
package benchmark
