//go:build linux || darwin || freebsd

package ft

import "runtime"

import "github.com/ebitengine/purego"

func sharedLibName() string {
	switch runtime.GOOS {
	case "darwin": return "libfreetype.6.dylib"
	default:
		return "libfreetype.so.6"
	}
}

// Resolves the engine call table from the system FreeType shared
// library. The returned table is fully populated or the load fails as
// a whole; the wrapper layer never has to nil-check individual entries.
func Load() (*Procs, error) {
	handle, err := purego.Dlopen(sharedLibName(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil { return nil, err }

	procs := &Procs{}
	purego.RegisterLibFunc(&procs.InitFreeType, handle, "FT_Init_FreeType")
	purego.RegisterLibFunc(&procs.DoneFreeType, handle, "FT_Done_FreeType")
	purego.RegisterLibFunc(&procs.LibraryVersion, handle, "FT_Library_Version")

	purego.RegisterLibFunc(&procs.NewFace, handle, "FT_New_Face")
	purego.RegisterLibFunc(&procs.DoneFace, handle, "FT_Done_Face")
	purego.RegisterLibFunc(&procs.SelectCharmap, handle, "FT_Select_Charmap")
	purego.RegisterLibFunc(&procs.SetCharmap, handle, "FT_Set_Charmap")
	purego.RegisterLibFunc(&procs.GetCharmapIndex, handle, "FT_Get_Charmap_Index")
	purego.RegisterLibFunc(&procs.SetCharSize, handle, "FT_Set_Char_Size")
	purego.RegisterLibFunc(&procs.SetTransform, handle, "FT_Set_Transform")
	purego.RegisterLibFunc(&procs.GetFirstChar, handle, "FT_Get_First_Char")
	purego.RegisterLibFunc(&procs.GetNextChar, handle, "FT_Get_Next_Char")
	purego.RegisterLibFunc(&procs.GetCharIndex, handle, "FT_Get_Char_Index")
	purego.RegisterLibFunc(&procs.LoadGlyph, handle, "FT_Load_Glyph")
	purego.RegisterLibFunc(&procs.LoadChar, handle, "FT_Load_Char")
	purego.RegisterLibFunc(&procs.GetKerning, handle, "FT_Get_Kerning")
	purego.RegisterLibFunc(&procs.GetTrackKerning, handle, "FT_Get_Track_Kerning")
	purego.RegisterLibFunc(&procs.GetAdvance, handle, "FT_Get_Advance")
	purego.RegisterLibFunc(&procs.GetAdvances, handle, "FT_Get_Advances")
	purego.RegisterLibFunc(&procs.GetFontFormat, handle, "FT_Get_Font_Format")

	purego.RegisterLibFunc(&procs.RenderGlyph, handle, "FT_Render_Glyph")
	purego.RegisterLibFunc(&procs.GetGlyph, handle, "FT_Get_Glyph")
	purego.RegisterLibFunc(&procs.GlyphSlotOwnBitmap, handle, "FT_GlyphSlot_Own_Bitmap")

	purego.RegisterLibFunc(&procs.OutlineNew, handle, "FT_Outline_New")
	purego.RegisterLibFunc(&procs.OutlineDone, handle, "FT_Outline_Done")
	purego.RegisterLibFunc(&procs.OutlineCopy, handle, "FT_Outline_Copy")
	purego.RegisterLibFunc(&procs.OutlineTranslate, handle, "FT_Outline_Translate")
	purego.RegisterLibFunc(&procs.OutlineTransform, handle, "FT_Outline_Transform")
	purego.RegisterLibFunc(&procs.OutlineEmbolden, handle, "FT_Outline_Embolden")
	purego.RegisterLibFunc(&procs.OutlineEmboldenXY, handle, "FT_Outline_EmboldenXY")
	purego.RegisterLibFunc(&procs.OutlineReverse, handle, "FT_Outline_Reverse")
	purego.RegisterLibFunc(&procs.OutlineCheck, handle, "FT_Outline_Check")
	purego.RegisterLibFunc(&procs.OutlineGetCBox, handle, "FT_Outline_Get_CBox")
	purego.RegisterLibFunc(&procs.OutlineGetBBox, handle, "FT_Outline_Get_BBox")
	purego.RegisterLibFunc(&procs.OutlineGetOrientation, handle, "FT_Outline_Get_Orientation")
	purego.RegisterLibFunc(&procs.OutlineGetInsideBorder, handle, "FT_Outline_GetInsideBorder")
	purego.RegisterLibFunc(&procs.OutlineGetOutsideBorder, handle, "FT_Outline_GetOutsideBorder")
	purego.RegisterLibFunc(&procs.OutlineGetBitmap, handle, "FT_Outline_Get_Bitmap")

	purego.RegisterLibFunc(&procs.GlyphCopy, handle, "FT_Glyph_Copy")
	purego.RegisterLibFunc(&procs.GlyphGetCBox, handle, "FT_Glyph_Get_CBox")
	purego.RegisterLibFunc(&procs.GlyphToBitmap, handle, "FT_Glyph_To_Bitmap")
	purego.RegisterLibFunc(&procs.DoneGlyph, handle, "FT_Done_Glyph")
	purego.RegisterLibFunc(&procs.GlyphStroke, handle, "FT_Glyph_Stroke")
	purego.RegisterLibFunc(&procs.GlyphStrokeBorder, handle, "FT_Glyph_StrokeBorder")

	purego.RegisterLibFunc(&procs.BitmapNew, handle, "FT_Bitmap_New")
	purego.RegisterLibFunc(&procs.BitmapDone, handle, "FT_Bitmap_Done")
	purego.RegisterLibFunc(&procs.BitmapCopy, handle, "FT_Bitmap_Copy")
	purego.RegisterLibFunc(&procs.BitmapEmbolden, handle, "FT_Bitmap_Embolden")
	purego.RegisterLibFunc(&procs.BitmapConvert, handle, "FT_Bitmap_Convert")

	purego.RegisterLibFunc(&procs.StrokerNew, handle, "FT_Stroker_New")
	purego.RegisterLibFunc(&procs.StrokerDone, handle, "FT_Stroker_Done")
	purego.RegisterLibFunc(&procs.StrokerSet, handle, "FT_Stroker_Set")
	purego.RegisterLibFunc(&procs.StrokerRewind, handle, "FT_Stroker_Rewind")
	purego.RegisterLibFunc(&procs.StrokerParseOutline, handle, "FT_Stroker_ParseOutline")
	purego.RegisterLibFunc(&procs.StrokerGetBorderCounts, handle, "FT_Stroker_GetBorderCounts")
	purego.RegisterLibFunc(&procs.StrokerExportBorder, handle, "FT_Stroker_ExportBorder")
	purego.RegisterLibFunc(&procs.StrokerGetCounts, handle, "FT_Stroker_GetCounts")
	purego.RegisterLibFunc(&procs.StrokerExport, handle, "FT_Stroker_Export")
	return procs, nil
}
