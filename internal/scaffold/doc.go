// Package scaffold generates a Google Cloud Functions starter project from
// embedded templates. It powers the "bootstrap" command.
//
// Each generated file is declared once in a table together with its
// idempotency policy. Overwrite files (entry point, handler) are rewritten on
// every run; write-once files (dependency manifest, helper scripts) are only
// created when absent so user edits survive re-runs.
package scaffold
