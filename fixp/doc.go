// fixp provides the numeric bridge between regular float64 coordinates
// and the two fixed-point encodings used by the font engine: 26.6 for
// pixel-space coordinates and sizes, and 16.16 for scale factors and
// matrix entries.
//
// The package also defines the small value types ([Vector], [Matrix],
// [BBox]) that carry geometry across the engine boundary. Value types
// always store plain float64 coordinates; the raw fixed-point forms
// only appear at conversion points.
package fixp
