// Package fontload reads compiled OpenType/TrueType fonts as glyph sources
// for feature generation. Binary fonts carry no anchors, groups or kerning
// in a form usable here, so only glyph names, metrics and font names are
// delivered.
package fontload

import (
	"fmt"
	"os"

	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'feax.font'
func tracer() tracing.Trace {
	return tracing.Select("feax.font")
}

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return f, nil
}

// names copied into font info, keyed like UFO font info entries
var infoNames = []struct {
	key string
	id  sfnt.NameID
}{
	{"familyName", sfnt.NameIDFamily},
	{"styleName", sfnt.NameIDSubfamily},
	{"postscriptFontName", sfnt.NameIDPostScript},
	{"copyright", sfnt.NameIDCopyright},
	{"versionString", sfnt.NameIDVersion},
}

// Snapshot delivers the glyphs of the font in glyph index order. Metrics
// are in font design units.
func (f *ScalableFont) Snapshot() (*fontmodel.Snapshot, error) {
	var buf sfnt.Buffer
	upem := f.SFNT.UnitsPerEm()
	ppem := fixed.I(int(upem)) // 1 pixel = 1 design unit
	n := f.SFNT.NumGlyphs()
	snap := &fontmodel.Snapshot{
		Glyphs: make([]fontmodel.GlyphData, 0, n),
		Info:   map[string]any{"unitsPerEm": int(upem)},
	}
	for _, in := range infoNames {
		if s, err := f.SFNT.Name(&buf, in.id); err == nil && s != "" {
			snap.Info[in.key] = s
		}
	}
	for i := 0; i < n; i++ {
		gid := sfnt.GlyphIndex(i)
		name, err := f.SFNT.GlyphName(&buf, gid)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}
		if name == "" {
			name = fmt.Sprintf("glyph%05d", i)
		}
		adv, err := f.SFNT.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph %s: %w", name, err)
		}
		gd := fontmodel.GlyphData{Name: name, Advance: float64(adv.Round())}
		if bounds, _, err := f.SFNT.GlyphBounds(&buf, gid, ppem, font.HintingNone); err == nil {
			// sfnt bounds have y pointing down
			gd.BBox = fontmodel.BBox{
				XMin: float64(bounds.Min.X.Round()),
				YMin: float64(-bounds.Max.Y.Round()),
				XMax: float64(bounds.Max.X.Round()),
				YMax: float64(-bounds.Min.Y.Round()),
			}
		}
		snap.Glyphs = append(snap.Glyphs, gd)
	}
	tracer().Infof("read %d glyphs from binary font %s", n, f.Fontname)
	return snap, nil
}
