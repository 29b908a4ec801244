// Package errors provides foundational, type-safe error primitives used across elvtdocs.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, validation, markup, generate, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - HTTP and CLI adapters for error presentation
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryMarkup, "parse example markup").
//		WithSeverity(errors.SeverityError).
//		WithContext("doc", relPath).
//		WithCause(originalErr).
//		Build()
package errors
