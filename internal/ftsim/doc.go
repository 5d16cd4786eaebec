// ftsim is a pure Go stand-in for the native font engine, implementing
// the full call table from internal/ft against in-memory structures.
//
// The simulator exists so the wrapper layer can be exercised without a
// system FreeType install: it serves small synthetic faces with
// deterministic outlines, metrics, kerning and bitmaps, and it applies
// the same pointer+count array conventions as the real engine, so the
// wrapper's unsafe array views and ownership rules get real coverage.
//
// Rendering quality is a non-goal here; rasterization fills are flat
// and curve bounding boxes are not tightened. What matters is that
// every call fills the records the way the engine would.
package ftsim
