package fontmodel

import (
	"fmt"
	"strconv"
)

// Source is implemented by font container readers. A source hands over a
// snapshot of the font's state once per run.
type Source interface {
	Snapshot() (*Snapshot, error)
}

// Snapshot is the raw font data the model is built from. All slices are
// expected in the container's iteration order.
type Snapshot struct {
	Glyphs  []GlyphData    // per-glyph data
	Skip    []string       // glyphs to ignore completely
	Groups  []Group        // glyph groups declared in the font
	Kerning []KerningPair  // raw kerning pairs
	Info    map[string]any // font info entries
}

// GlyphData is the raw per-glyph data of a font container.
type GlyphData struct {
	Name    string
	Advance float64
	BBox    BBox
	Anchors []AnchorData
}

// AnchorData is an anchor as declared in the font container.
// A container sets NoGeometry for anchors declared without coordinates;
// those never become part of the model.
type AnchorData struct {
	Name       string
	X, Y       float64
	NoGeometry bool
}

// Group is a named glyph group of a font, i.e. a pre-existing glyph class.
type Group struct {
	Name    string
	Members []string
}

// KerningPair is a raw kerning entry. Left may name a glyph or a group.
type KerningPair struct {
	Left, Right string
	Value       float64
}

// --- Font info -------------------------------------------------------------

// FontInfo is a read-only lookup of font metadata. Looking up an absent key
// is not an error: it yields nil, an empty string or false, respectively.
type FontInfo map[string]any

// Has reports whether key is set.
func (fi FontInfo) Has(key string) bool {
	_, ok := fi[key]
	return ok
}

// Value returns the raw value for key, or nil.
func (fi FontInfo) Value(key string) any {
	return fi[key]
}

// String returns the value for key formatted as a string, or "".
func (fi FontInfo) String(key string) string {
	switch v := fi[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Number returns the value for key as a float, if it is numeric.
func (fi FontInfo) Number(key string) (float64, bool) {
	switch v := fi[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
