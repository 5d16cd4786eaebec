package ft

// Engine status code. Zero means success; anything else is an
// engine-defined error.
type Error int32

// Whether the status code reports a failure.
func (self Error) IsErr() bool { return self != 0 }

// Human-readable message for the status code, following the engine's
// standard error list, or "" for codes outside it.
func (self Error) Message() string { return errMessages[self] }

var errMessages = map[Error]string{
	0x01: "cannot open resource",
	0x02: "unknown file format",
	0x03: "broken file",
	0x04: "invalid engine version",
	0x05: "module version is too low",
	0x06: "invalid argument",
	0x07: "unimplemented feature",
	0x08: "broken table",
	0x09: "broken offset within table",
	0x0A: "array allocation size too large",
	0x0B: "missing module",
	0x0C: "missing property",
	0x10: "invalid glyph index",
	0x11: "invalid character code",
	0x12: "unsupported glyph image format",
	0x13: "cannot render this glyph format",
	0x14: "invalid outline",
	0x15: "invalid composite glyph",
	0x16: "too many hints",
	0x17: "invalid pixel size",
	0x20: "invalid object handle",
	0x21: "invalid library handle",
	0x22: "invalid module handle",
	0x23: "invalid face handle",
	0x24: "invalid size handle",
	0x25: "invalid glyph slot handle",
	0x26: "invalid charmap handle",
	0x27: "invalid cache manager handle",
	0x28: "invalid stream handle",
	0x30: "too many modules",
	0x31: "too many extensions",
	0x40: "out of memory",
	0x41: "unlisted object",
	0x51: "cannot open stream",
	0x52: "invalid stream seek",
	0x53: "invalid stream skip",
	0x54: "invalid stream read",
	0x55: "invalid stream operation",
	0x56: "invalid frame operation",
	0x57: "nested frame access",
	0x58: "invalid frame read",
	0x60: "raster uninitialized",
	0x61: "raster corrupted",
	0x62: "raster overflow",
	0x63: "negative height while rastering",
	0x97: "found FDefs in glyf",
}
