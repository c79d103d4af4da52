// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// remediation hints. The Markdown issue catalog adds longer guidance for the
// failures a benchsuite user can actually fix (bad config, bad parameters,
// unknown benchmark names) and is rendered in the terminal with glamour.
package issue
