// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// Configuration files are validated in three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema definition
//  3. Validate and decode to a Go value
//
// Errors from any step carry the file name and a JSON-style path to the
// offending field, e.g. "config.cue: params.fibonacci: invalid value 120".
package cueutil
