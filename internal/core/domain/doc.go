// Package domain defines the core business entities for Acknow.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Value: A tagged variant over a dynamically-typed document tree
//   - Dict: A string-keyed mapping of Values
//   - Acknow: A single parsed acknowledgement record
//   - Acknowledgements: The full parse result (header, footer, entries)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
