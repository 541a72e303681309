// Package errors provides foundational, type-safe error primitives used across assetkit.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, filesystem, extract, vocab, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit code mapping and error presentation for the CLI
//
// Example usage:
//
//	err := errors.ExtractError("start marker not found").
//		WithContext("section", "todo-js").
//		WithContext("marker", marker).
//		Build()
package errors
