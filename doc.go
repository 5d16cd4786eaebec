// ftkit wraps a natively implemented font-rendering engine behind
// safely owned Go objects: faces, glyph slots, outlines, bitmaps,
// standalone glyphs and strokers. The engine keeps doing what it is
// good at (parsing fonts and rasterizing glyphs); this package manages
// the resource graph around it, converts its fixed-point encodings to
// plain float64 coordinates, and adds the geometry operations needed
// to turn glyph outlines into drawable paths.
//
// Typical usage starts with an engine handle and a face:
//   lib, err := ftkit.Init()
//   if err != nil { ... }
//   defer lib.Close()
//   face, err := lib.NewFace("path/to/font.ttf", 0)
//   if err != nil { ... }
//   defer face.Close()
//
// Then you set a size, load a glyph and read its shape:
//   face.SetCharSize(12, 12, 72, 72)
//   face.LoadChar('A', ftkit.LoadDefault)
//   outline, err := face.Slot().Outline()
//   if err != nil { ... }
//   outline.Decompose(sink) // any PathSink: rasterx, x/image/vector, Ebitengine...
//
// Resource rules are simple: whatever you create through a New* call
// or capture through [GlyphSlot.Glyph] you close; views into other
// objects (slots, slot outlines, glyph bitmaps) are closed for you
// with their container. Closing things after their [Library] is a
// safe no-op.
package ftkit
