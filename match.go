package ftkit

import "io"
import "log"
import "os"

import "github.com/go-text/typesetting/fontscan"

// Lazily initialized system font index. A failed initialization is
// remembered so matching stays a statically detectable unsupported
// condition instead of being retried on every call.
type faceMatcher struct {
	fontMap *fontscan.FontMap
	err     error
}

func (self *Library) matcherInit() *faceMatcher {
	if self.matcher != nil { return self.matcher }
	matcher := &faceMatcher{}
	matcher.fontMap = fontscan.NewFontMap(log.New(io.Discard, "", 0))
	cacheDir, err := os.UserCacheDir()
	if err == nil { err = matcher.fontMap.UseSystemFonts(cacheDir) }
	if err != nil {
		matcher.fontMap = nil
		matcher.err = err
	}
	self.matcher = matcher
	return matcher
}

// Resolves a family name pattern against the system's installed fonts
// and loads the best match. Family matching includes the usual
// fallback and substitution rules, so some face is normally found for
// any pattern; fails with [UnsupportedError] when the system font
// index cannot be built at all.
func (self *Library) FindFace(pattern string) (*Face, error) {
	if !self.alive { return nil, stateErr("Library.FindFace", errReleased) }
	matcher := self.matcherInit()
	if matcher.err != nil {
		return nil, unsupportedErr("Library.FindFace", "font matching unavailable: "+matcher.err.Error())
	}
	matcher.fontMap.SetQuery(fontscan.Query{ Families: []string{pattern} })
	resolved := matcher.fontMap.ResolveFace(' ')
	if resolved == nil {
		return nil, unsupportedErr("Library.FindFace", "no font matched "+pattern)
	}
	location := matcher.fontMap.FontLocation(resolved.Font)
	return self.NewFace(location.File, int(location.Index))
}
