// Package domain contains the core domain model for the text conversion service.
//
// This package defines:
//   - Conversion: the transient result of encoding one input text
//   - Domain Errors: EmptyInput and validation failures
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (HTTP, metrics, config)
package domain
