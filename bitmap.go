package ftkit

import "image"

import "github.com/ftkit/ftkit/fixp"
import "github.com/ftkit/ftkit/internal/ft"

// A pixel buffer plus its layout metadata. Exactly one of three
// storage regimes applies:
//
//   - contained: the pixels live inside a [GlyphSlot] or [Glyph]; the
//     bitmap holds a strong reference to that container and releases
//     nothing itself.
//   - engine-allocated: storage belongs to the engine; [Bitmap.Close]
//     must release it, unless the library is already gone.
//   - caller buffer: the wrapper owns a plain byte slice and the
//     engine record merely aliases it; no engine release is ever
//     issued against it.
type Bitmap struct {
	lib    *Library
	rec    *ft.BitmapRec
	owner  resource // contained mode
	buffer []byte   // caller buffer mode
	alive  bool
}

// Creates an empty engine-allocated bitmap, the usual destination for
// [Bitmap.CopyTo] and [Bitmap.Convert]. The caller must call
// [Bitmap.Close].
func NewBitmap(lib *Library) (*Bitmap, error) {
	if !lib.alive { return nil, stateErr("ftkit.NewBitmap", errReleased) }
	rec := &ft.BitmapRec{}
	lib.procs.BitmapNew(rec)
	return &Bitmap{ lib: lib, rec: rec, alive: true }, nil
}

// Creates an 8-bit grayscale bitmap over a caller-managed buffer.
// A nonpositive pitch selects the default drawing-surface stride,
// the width rounded up to a multiple of four bytes.
func NewBitmapBuffer(lib *Library, width, rows, pitch int) (*Bitmap, error) {
	if width < 0 || rows < 0 {
		return nil, argErr("ftkit.NewBitmapBuffer", "negative dimensions")
	}
	if pitch <= 0 { pitch = (width + 3) &^ 3 }
	if pitch < width {
		return nil, argErr("ftkit.NewBitmapBuffer", "pitch smaller than width")
	}
	bitmap := &Bitmap{
		lib:    lib,
		buffer: make([]byte, rows*pitch),
		alive:  true,
	}
	bitmap.rec = &ft.BitmapRec{
		Rows:      int32(rows),
		Width:     int32(width),
		Pitch:     int32(pitch),
		NumGrays:  256,
		PixelMode: ft.PixelModeGray,
	}
	if len(bitmap.buffer) > 0 { bitmap.rec.Buffer = &bitmap.buffer[0] }
	return bitmap, nil
}

func containedBitmap(lib *Library, rec *ft.BitmapRec, owner resource) *Bitmap {
	return &Bitmap{ lib: lib, rec: rec, owner: owner, alive: true }
}

func (self *Bitmap) guard(op string) error {
	if self.owner != nil { return self.owner.guard(op) }
	if !self.alive { return stateErr(op, errReleased) }
	if self.buffer == nil && !self.lib.alive { return stateErr(op, errOwnerGone) }
	return nil
}

// Releases engine storage for engine-allocated bitmaps. Contained and
// caller-buffer bitmaps release nothing; a vanished library turns the
// release into a silent no-op.
func (self *Bitmap) Close() error {
	if !self.alive { return nil }
	self.alive = false
	if self.owner != nil || self.buffer != nil { return nil }
	if !self.lib.alive { return nil }
	return engineErr(self.lib.procs.BitmapDone(self.lib.handle, self.rec))
}

// Pixel dimensions, zero once the bitmap or its owner has been
// released.
func (self *Bitmap) Rows() int {
	if self.guard("Bitmap.Rows") != nil { return 0 }
	return int(self.rec.Rows)
}

func (self *Bitmap) Width() int {
	if self.guard("Bitmap.Width") != nil { return 0 }
	return int(self.rec.Width)
}

// Bytes per row. Positive for downward row order; the engine can
// produce negative pitches for upward rows. Zero once the bitmap or
// its owner has been released.
func (self *Bitmap) Pitch() int {
	if self.guard("Bitmap.Pitch") != nil { return 0 }
	return int(self.rec.Pitch)
}

func (self *Bitmap) PixelMode() PixelMode {
	if self.guard("Bitmap.PixelMode") != nil { return PixelNone }
	return PixelMode(self.rec.PixelMode)
}

// Gray levels used, 256 for 8-bit grayscale and 2 for monochrome.
func (self *Bitmap) NumGrays() int {
	if self.guard("Bitmap.NumGrays") != nil { return 0 }
	return int(self.rec.NumGrays)
}

// The raw pixel rows. The slice aliases the bitmap's storage, nil for
// empty bitmaps, negative pitches or released owners.
func (self *Bitmap) Buffer() []byte {
	if self.guard("Bitmap.Buffer") != nil { return nil }
	return self.rec.BufferSlice()
}

// Overwrites the pixel buffer with caller data, which must match the
// buffer's length exactly. Only caller-buffer bitmaps support this.
func (self *Bitmap) CopyBuffer(data []byte) error {
	if err := self.guard("Bitmap.CopyBuffer"); err != nil { return err }
	if self.buffer == nil {
		return unsupportedErr("Bitmap.CopyBuffer", "bitmap storage is not caller-managed")
	}
	if len(data) != len(self.buffer) {
		return argErr("Bitmap.CopyBuffer", "data length does not match buffer length")
	}
	copy(self.buffer, data)
	return nil
}

// Snapshots the bitmap into a new caller-managed bitmap carrying the
// same metadata and a copy of the pixel rows. The snapshot does not
// depend on the source's owner or the engine, so it stays usable after
// the source goes away. Negative pitches are unsupported.
func (self *Bitmap) Snapshot() (*Bitmap, error) {
	if err := self.guard("Bitmap.Snapshot"); err != nil { return nil, err }
	if self.rec.Pitch < 0 {
		return nil, unsupportedErr("Bitmap.Snapshot", "negative pitch")
	}
	source := self.rec.BufferSlice()
	snapshot := &Bitmap{
		lib:    self.lib,
		buffer: make([]byte, len(source)),
		alive:  true,
	}
	copy(snapshot.buffer, source)
	snapshot.rec = &ft.BitmapRec{
		Rows:      self.rec.Rows,
		Width:     self.rec.Width,
		Pitch:     self.rec.Pitch,
		NumGrays:  self.rec.NumGrays,
		PixelMode: self.rec.PixelMode,
	}
	if len(snapshot.buffer) > 0 { snapshot.rec.Buffer = &snapshot.buffer[0] }
	return snapshot, nil
}

// Copies this bitmap's pixels into dst, replacing whatever engine
// storage dst held. dst must be engine-allocated.
func (self *Bitmap) CopyTo(dst *Bitmap) error {
	if err := self.guard("Bitmap.CopyTo"); err != nil { return err }
	if err := dst.guard("Bitmap.CopyTo"); err != nil { return err }
	if dst.owner != nil || dst.buffer != nil {
		return unsupportedErr("Bitmap.CopyTo", "destination storage is not engine-allocated")
	}
	return engineErr(self.lib.procs.BitmapCopy(self.lib.handle, self.rec, dst.rec))
}

// Thickens every pixel run by the given strengths in fractional
// pixels, growing the bitmap. Requires engine-allocated or contained
// storage; caller-buffer bitmaps are rejected since the engine would
// reallocate memory it does not own.
func (self *Bitmap) Embolden(xStrength, yStrength float64) error {
	if err := self.guard("Bitmap.Embolden"); err != nil { return err }
	if self.buffer != nil {
		return unsupportedErr("Bitmap.Embolden", "bitmap storage is caller-managed")
	}
	status := self.lib.procs.BitmapEmbolden(
		self.lib.handle, self.rec,
		fixp.ToFixed(xStrength, fixp.Shift26_6), fixp.ToFixed(yStrength, fixp.Shift26_6),
	)
	return engineErr(status)
}

// Converts this bitmap to 8-bit grayscale into dst, with the result's
// pitch rounded up to a multiple of alignment bytes. The source must
// not be caller-managed.
func (self *Bitmap) Convert(dst *Bitmap, alignment int) error {
	if err := self.guard("Bitmap.Convert"); err != nil { return err }
	if err := dst.guard("Bitmap.Convert"); err != nil { return err }
	if self.buffer != nil {
		return unsupportedErr("Bitmap.Convert", "bitmap storage is caller-managed")
	}
	if dst.owner != nil || dst.buffer != nil {
		return unsupportedErr("Bitmap.Convert", "destination storage is not engine-allocated")
	}
	if alignment <= 0 { return argErr("Bitmap.Convert", "alignment must be positive") }
	status := self.lib.procs.BitmapConvert(self.lib.handle, self.rec, dst.rec, int32(alignment))
	return engineErr(status)
}

// Produces a drawing-surface-compatible alpha image from the bitmap.
// The image copies the pixels unless copyPixels is unset, in which
// case grayscale pixels whose pitch matches the image stride are
// aliased directly; aliased images go stale with the bitmap's storage,
// on the next glyph load for slot bitmaps. Mismatched pitches are
// adapted row by row and monochrome bitmaps are expanded to 8 bits,
// both always copying. Negative pitches are unsupported.
func (self *Bitmap) Image(copyPixels bool) (*image.Alpha, error) {
	if err := self.guard("Bitmap.Image"); err != nil { return nil, err }
	if self.rec.Pitch < 0 {
		return nil, unsupportedErr("Bitmap.Image", "negative pitch")
	}
	width, rows := int(self.rec.Width), int(self.rec.Rows)
	bounds := image.Rect(0, 0, width, rows)

	switch self.rec.PixelMode {
	case ft.PixelModeGray:
		source := self.rec.BufferSlice()
		if !copyPixels && int(self.rec.Pitch) == width {
			return &image.Alpha{ Pix: source, Stride: width, Rect: bounds }, nil
		}
		img := image.NewAlpha(bounds)
		for row := 0; row < rows; row++ {
			copy(img.Pix[row*width:(row+1)*width], source[row*int(self.rec.Pitch):])
		}
		return img, nil
	case ft.PixelModeMono:
		source := self.rec.BufferSlice()
		img := image.NewAlpha(bounds)
		for row := 0; row < rows; row++ {
			line := source[row*int(self.rec.Pitch):]
			for col := 0; col < width; col++ {
				if line[col/8]&(0x80>>(col%8)) != 0 {
					img.Pix[row*width+col] = 0xFF
				}
			}
		}
		return img, nil
	default:
		return nil, unsupportedErr("Bitmap.Image", "unsupported pixel format")
	}
}
