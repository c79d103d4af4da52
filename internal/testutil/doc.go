// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include environment variable management (MustSetenv, MustUnsetenv),
// file setup (MustWriteFile), home directory isolation (SetHomeDir) and a
// deterministic clock (FakeClock) for timing-dependent code.
package testutil
