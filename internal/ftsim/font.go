package ftsim

import "github.com/ftkit/ftkit/internal/ft"

// A synthetic font served by the simulator. Coordinates are in font
// units; scaling to pixels happens at glyph load time like in the
// real engine.
type Font struct {
	Family string
	Style  string
	Format string

	UnitsPerEM uint16
	Ascender   int16
	Descender  int16
	Height     int16
	BBox       ft.BBox // font units

	Glyphs   []Glyph
	Charmaps []Charmap
	Strikes  []ft.BitmapSize

	// horizontal kerning between glyph index pairs, font units
	Kerning map[[2]uint32]int64

	// when nonzero, opening the font fails with this status
	Err ft.Error
}

// A single glyph description: a closed-contour outline in font units
// plus its horizontal advance.
type Glyph struct {
	Advance  int64
	Points   []ft.Vector
	Tags     []byte
	Contours []int16
}

// One character map of a synthetic font.
type Charmap struct {
	Encoding   ft.Encoding
	PlatformID uint16
	EncodingID uint16
	Runes      map[rune]uint32
}

// Paths understood by a fresh simulator.
const (
	DefaultFontPath = "sim://default"
	BrokenFontPath  = "sim://broken"
)

// The font registered under [DefaultFontPath]: four mapped glyphs
// exercising straight, quadratic and cubic segments, one kerning pair
// and two charmaps.
func defaultFont() *Font {
	return &Font{
		Family:     "Sim Sans",
		Style:      "Regular",
		Format:     "TrueType",
		UnitsPerEM: 1000,
		Ascender:   800,
		Descender:  -200,
		Height:     1200,
		BBox:       ft.BBox{ XMin: -100, YMin: -200, XMax: 800, YMax: 900 },
		Glyphs: []Glyph{
			{ Advance: 500 }, // .notdef
			{ // 'A': triangle with a quadratic apex
				Advance:  800,
				Points:   []ft.Vector{{X: 100, Y: 0}, {X: 400, Y: 800}, {X: 700, Y: 0}},
				Tags:     []byte{ft.CurveTagOn, ft.CurveTagConic, ft.CurveTagOn},
				Contours: []int16{2},
			},
			{ // 'B': box with a cubic top edge
				Advance: 820,
				Points: []ft.Vector{
					{X: 100, Y: 0}, {X: 100, Y: 700}, {X: 300, Y: 800},
					{X: 500, Y: 800}, {X: 700, Y: 700}, {X: 700, Y: 0},
				},
				Tags: []byte{
					ft.CurveTagOn, ft.CurveTagOn, ft.CurveTagCubic,
					ft.CurveTagCubic, ft.CurveTagOn, ft.CurveTagOn,
				},
				Contours: []int16{5},
			},
			{ // 'V': straight segments only
				Advance:  780,
				Points:   []ft.Vector{{X: 100, Y: 800}, {X: 400, Y: 0}, {X: 700, Y: 800}},
				Tags:     []byte{ft.CurveTagOn, ft.CurveTagOn, ft.CurveTagOn},
				Contours: []int16{2},
			},
			{ Advance: 300 }, // space
		},
		Charmaps: []Charmap{
			{
				Encoding: ft.EncodingUnicode, PlatformID: 3, EncodingID: 1,
				Runes: map[rune]uint32{ 'A': 1, 'B': 2, 'V': 3, ' ': 4 },
			},
			{
				Encoding: ft.EncodingAppleRoman, PlatformID: 1, EncodingID: 0,
				Runes: map[rune]uint32{ 'A': 1, 'B': 2 },
			},
		},
		Strikes: []ft.BitmapSize{
			{ Height: 16, Width: 14, Size: 16 << 6, XPpem: 16 << 6, YPpem: 16 << 6 },
		},
		Kerning: map[[2]uint32]int64{
			{1, 3}: -80, // AV
			{3, 1}: -80, // VA
		},
	}
}
