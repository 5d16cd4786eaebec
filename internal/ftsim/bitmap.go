package ftsim

import "github.com/ftkit/ftkit/internal/ft"

func (self *Simulator) bitmapNew(bitmap *ft.BitmapRec) {
	*bitmap = ft.BitmapRec{}
}

func (self *Simulator) bitmapDone(lib ft.Library, bitmap *ft.BitmapRec) ft.Error {
	if _, found := self.libs[lib]; !found { return errInvalidHandle }
	if bitmap.Buffer != nil { delete(self.bitmaps, bitmap.Buffer) }
	*bitmap = ft.BitmapRec{}
	return errOk
}

// Installs a fresh engine-owned buffer behind dst, releasing whatever
// engine buffer dst held before.
func (self *Simulator) installBuffer(dst *ft.BitmapRec, buffer []byte) {
	if dst.Buffer != nil { delete(self.bitmaps, dst.Buffer) }
	if len(buffer) == 0 {
		dst.Buffer = nil
		return
	}
	dst.Buffer = &buffer[0]
	self.bitmaps[dst.Buffer] = buffer
}

func (self *Simulator) bitmapCopy(lib ft.Library, src, dst *ft.BitmapRec) ft.Error {
	if _, found := self.libs[lib]; !found { return errInvalidHandle }
	if src == nil || dst == nil { return errInvalidArgument }
	if src.Pitch < 0 { return errInvalidArgument }
	buffer := append([]byte(nil), src.BufferSlice()...)
	held := *dst
	*dst = *src
	dst.Buffer = held.Buffer
	self.installBuffer(dst, buffer)
	return errOk
}

func (self *Simulator) bitmapEmbolden(lib ft.Library, bitmap *ft.BitmapRec, xStrength, yStrength ft.Pos) ft.Error {
	if _, found := self.libs[lib]; !found { return errInvalidHandle }
	if bitmap == nil { return errInvalidArgument }
	if xStrength < 0 || yStrength < 0 { return errInvalidArgument }
	if bitmap.Pitch < 0 { return errInvalidArgument }

	// strengths are 26.6; growth happens in whole pixels
	xPixels := int32(xStrength >> 6)
	yPixels := int32(yStrength >> 6)
	width := bitmap.Width + xPixels
	rows := bitmap.Rows + yPixels
	pitch := width
	if bitmap.PixelMode == ft.PixelModeMono { pitch = (width + 7) / 8 }

	buffer := make([]byte, int(rows)*int(pitch))
	for i := range buffer { buffer[i] = 0xFF }
	bitmap.Width, bitmap.Rows, bitmap.Pitch = width, rows, pitch
	self.installBuffer(bitmap, buffer)
	return errOk
}

func (self *Simulator) bitmapConvert(lib ft.Library, src, dst *ft.BitmapRec, alignment int32) ft.Error {
	if _, found := self.libs[lib]; !found { return errInvalidHandle }
	if src == nil || dst == nil { return errInvalidArgument }
	if alignment <= 0 { return errInvalidArgument }
	if src.Pitch < 0 { return errInvalidArgument }

	pitch := ((src.Width + alignment - 1) / alignment) * alignment
	buffer := make([]byte, int(src.Rows)*int(pitch))
	source := src.BufferSlice()
	for row := int32(0); row < src.Rows; row++ {
		srcRow := source[row*src.Pitch:]
		dstRow := buffer[row*pitch:]
		for col := int32(0); col < src.Width; col++ {
			var value byte
			switch src.PixelMode {
			case ft.PixelModeMono:
				if srcRow[col/8]&(0x80>>(col%8)) != 0 { value = 0xFF }
			case ft.PixelModeGray:
				value = srcRow[col]
			default:
				return errInvalidArgument
			}
			dstRow[col] = value
		}
	}

	held := dst.Buffer
	*dst = ft.BitmapRec{
		Rows:      src.Rows,
		Width:     src.Width,
		Pitch:     pitch,
		NumGrays:  256,
		PixelMode: ft.PixelModeGray,
		Buffer:    held,
	}
	self.installBuffer(dst, buffer)
	return errOk
}
