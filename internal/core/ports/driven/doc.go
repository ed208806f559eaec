// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. Core services depend on these interfaces, and
// infrastructure adapters implement them.
//
// # Required Interfaces
//
//   - Strategy: One conversion kind (images-to-pdf, merge-pdf, ...)
//   - StrategyRegistry: Routes a feature ID to its strategy
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Conversion history persistence. Without it,
//     finished conversions are simply not recorded.
//   - ConfigStore: Application configuration. Without it, defaults
//     apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or strategy package
package driven
