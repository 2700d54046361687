package fontmodel

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Glyphs: []GlyphData{
			{Name: "a", Advance: 500.7, Anchors: []AnchorData{
				{Name: "top", X: 250, Y: 600},
				{Name: "bottom", X: 250, Y: 0},
			}},
			{Name: "b", Advance: 520, Anchors: []AnchorData{
				{Name: "top", X: 260, Y: 700},
				{Name: "ring", NoGeometry: true},
			}},
			{Name: "acutecomb", Advance: 0, Anchors: []AnchorData{
				{Name: "_top", X: 0, Y: 500},
				{Name: "top", X: 0, Y: 700},
			}},
			{Name: ".notdef", Advance: 500},
			{Name: "hidden", Advance: 500, Anchors: []AnchorData{{Name: "top", X: 1, Y: 1}}},
		},
		Skip:   []string{"hidden"},
		Groups: []Group{{Name: "K", Members: []string{"a", "b"}}},
		Kerning: []KerningPair{
			{Left: "K", Right: "acutecomb", Value: -40},
			{Left: "a", Right: "b", Value: 10},
			{Left: "a", Right: "b", Value: 12},
		},
		Info: map[string]any{"familyName": "Test", "unitsPerEm": 1000},
	}
}

func TestLoadBuildsAnchorIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feax.font")
	defer teardown()
	//
	f, err := Load(testSnapshot(), []string{"bottom"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "acutecomb", ".notdef"}, f.GlyphNames())
	assert.False(t, f.HasGlyph("hidden"), "skipped glyph must not be loaded")
	assert.Equal(t, []string{"top", "_top"}, f.Anchors.Names())
	top := f.Anchors.Glyphs("top")
	require.Len(t, top, 3)
	for _, g := range top {
		_, ok := g.Anchor("top")
		assert.True(t, ok, "glyph %s listed under 'top' must own it", g.Name)
	}
	a, _ := f.Glyph("a")
	assert.Equal(t, 500, a.Advance)
	_, ok := a.Anchor("bottom")
	assert.False(t, ok, "omitted anchor must not be loaded")
	b, _ := f.Glyph("b")
	_, ok = b.Anchor("ring")
	assert.False(t, ok, "anchor without geometry must not be loaded")
}

func TestClassifyMarks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feax.font")
	defer teardown()
	//
	f, err := Load(testSnapshot(), nil)
	require.NoError(t, err)
	f.ClassifyMarks()
	for g := range f.Glyphs() {
		assert.Equal(t, g.Name == "acutecomb", g.IsMark, "mark status of %s", g.Name)
	}
}

func TestLoadRejectsDuplicateGlyphs(t *testing.T) {
	snap := &Snapshot{Glyphs: []GlyphData{{Name: "a"}, {Name: "a"}}}
	_, err := Load(snap, nil)
	assert.Error(t, err)
}

func TestDuplicateAnchorIsIndexedOnce(t *testing.T) {
	snap := &Snapshot{Glyphs: []GlyphData{{Name: "a", Anchors: []AnchorData{
		{Name: "top", X: 1, Y: 1},
		{Name: "top", X: 2, Y: 2},
	}}}}
	f, err := Load(snap, nil)
	require.NoError(t, err)
	require.Len(t, f.Anchors.Glyphs("top"), 1)
	p, _ := f.Anchors.Glyphs("top")[0].Anchor("top")
	assert.Equal(t, Point{X: 2, Y: 2}, p)
}

func TestFontInfoLookup(t *testing.T) {
	f, err := Load(testSnapshot(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Test", f.Info.String("familyName"))
	assert.Equal(t, "1000", f.Info.String("unitsPerEm"))
	assert.Equal(t, "", f.Info.String("styleName"))
	assert.Nil(t, f.Info.Value("styleName"))
	upem, ok := f.Info.Number("unitsPerEm")
	assert.True(t, ok)
	assert.Equal(t, 1000.0, upem)
	var empty FontInfo
	assert.False(t, empty.Has("anything"))
}
