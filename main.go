// SPDX-License-Identifier: MPL-2.0

// benchsuite runs a fixed set of CPU and allocation microbenchmarks and
// reports the wall-clock time of each.
package main

import cmd "github.com/invowk/benchsuite/cmd/benchsuite"

func main() {
	cmd.Execute()
}
