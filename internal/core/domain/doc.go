// Package domain defines the core business entities for PDF Wizard.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - InputItem: One user-supplied file awaiting conversion
//   - Feature: A conversion kind (images-to-pdf, merge-pdf, ...)
//   - ConversionResult: The output blob plus per-item outcomes
//   - ConversionRecord: A history entry for a finished conversion
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend
// on domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library and the uuid identifier package
//   - Cannot Import: Any other internal/ package
package domain
