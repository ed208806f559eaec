// Package layout provides the pure geometry and text-flow
// computations behind page assembly: aspect-ratio-preserving image
// fitting, word wrapping, and greedy pagination.
//
// Everything here is deterministic and free of I/O so the page
// builder and the conversion strategies can be tested against exact
// values.
package layout
