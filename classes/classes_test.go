package classes

import (
	"strings"
	"testing"

	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ClassesTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestClassDerivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feax.classes")
	defer teardown()
	suite.Run(t, new(ClassesTestEnviron))
}

// makeFont creates a font with the given glyphs. Glyphs named in marks get
// a mark anchor.
func makeFont(t *testing.T, names []string, marks ...string) *fontmodel.Font {
	isMark := make(map[string]bool)
	for _, m := range marks {
		isMark[m] = true
	}
	snap := &fontmodel.Snapshot{}
	for _, n := range names {
		gd := fontmodel.GlyphData{Name: n, Advance: 500}
		if isMark[n] {
			gd.Anchors = []fontmodel.AnchorData{{Name: "_top", X: 0, Y: 500}}
		}
		snap.Glyphs = append(snap.Glyphs, gd)
	}
	f, err := fontmodel.Load(snap, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.ClassifyMarks()
	return f
}

// --- Tests -----------------------------------------------------------------

func (env *ClassesTestEnviron) TestSuffixClasses() {
	f := makeFont(env.T(), []string{"a", "a.sc", "b"})
	b := NewBuilder()
	DeriveFromNames(b, f, LigNone)
	env.Equal([]string{"a.sc"}, b.Members("c_sc"))
	env.Equal([]string{"a"}, b.Members("cno_sc"))
}

func (env *ClassesTestEnviron) TestMultipleSuffixes() {
	f := makeFont(env.T(), []string{"a", "a.alt", "a.alt.sc", "b.sc"})
	b := NewBuilder()
	DeriveFromNames(b, f, LigNone)
	env.Equal([]string{"a.alt.sc"}, b.Members("c_sc"))
	env.Equal([]string{"a.alt"}, b.Members("cno_sc"))
	env.Equal([]string{"a.alt"}, b.Members("c_alt"))
	env.Equal([]string{"a"}, b.Members("cno_alt"))
	env.False(b.Contains("c_sc", "b.sc"), "b.sc has no base glyph")
}

func (env *ClassesTestEnviron) TestSuffixWithoutBaseCreatesNothing() {
	f := makeFont(env.T(), []string{"b.sc", ".notdef"})
	b := NewBuilder()
	DeriveFromNames(b, f, LigNone)
	env.False(b.Has("c_sc"))
	env.False(b.Has("cno_sc"))
	env.False(b.Has("c_notdef"))
}

func (env *ClassesTestEnviron) TestGDEFPartition() {
	names := []string{"a", "acutecomb", "gravecomb", "b"}
	f := makeFont(env.T(), names, "acutecomb", "gravecomb")
	b := NewBuilder()
	DeriveFromNames(b, f, LigNone)
	set := b.Seal()
	marks, bases := set.Members(GDEFMarks), set.Members(GDEFBases)
	env.Equal([]string{"acutecomb", "gravecomb"}, marks)
	env.Equal([]string{"a", "b"}, bases)
	for g := range f.Glyphs() {
		inMarks, inBases := contains(marks, g.Name), contains(bases, g.Name)
		env.True(inMarks != inBases, "glyph %s must be in exactly one GDEF class", g.Name)
		env.Equal(g.IsMark, inMarks)
	}
}

func (env *ClassesTestEnviron) TestLigatureLast() {
	f := makeFont(env.T(), []string{"f", "i", "l", "f_i", "f_l", "f_f_i", "f_f"})
	b := NewBuilder()
	DeriveFromNames(b, f, LigLast)
	env.Equal([]string{"f_i", "f_f_i"}, b.Members("clig_i"))
	env.Equal([]string{"f", "f_f"}, b.Members("cligno_i"))
	env.Equal([]string{"f_l"}, b.Members("clig_l"))
	env.Equal([]string{"f_f"}, b.Members("clig_f"))
}

func (env *ClassesTestEnviron) TestLigatureFirst() {
	f := makeFont(env.T(), []string{"f", "i", "l", "f_i", "f_l"})
	b := NewBuilder()
	DeriveFromNames(b, f, LigFirst)
	env.Equal([]string{"f_i", "f_l"}, b.Members("clig_f"))
	env.Equal([]string{"i", "l"}, b.Members("cligno_f"))
}

func (env *ClassesTestEnviron) TestLigatureSuffixHandling() {
	names := []string{"f", "i", "i.sc", "f_i", "f_i.sc"}
	// plain mode: suffix belongs to the whole ligature
	f := makeFont(env.T(), names)
	b := NewBuilder()
	DeriveFromNames(b, f, LigLast)
	env.Equal([]string{"i.sc", "f_i.sc"}, b.Members("c_sc"))
	env.False(b.Has("clig_i_sc"), "suffixed last component disqualifies ligature split")
	// comp mode: suffix belongs to the component, no suffix peeling
	b = NewBuilder()
	DeriveFromNames(b, f, LigLastComp)
	env.Equal([]string{"i.sc"}, b.Members("c_sc"))
	env.Equal([]string{"f_i.sc"}, b.Members("clig_i_sc"))
	env.Equal([]string{"f"}, b.Members("cligno_i_sc"))
}

func (env *ClassesTestEnviron) TestLigatureModeParsing() {
	for _, name := range []string{"", "none", "first", "last", "firstcomp", "LastComp"} {
		m, err := ParseLigatureMode(name)
		env.NoError(err)
		if name != "" {
			env.Equal(strings.ToLower(name), m.String())
		}
	}
	_, err := ParseLigatureMode("middle")
	env.Error(err)
}

func (env *ClassesTestEnviron) TestSealedBuilderPanics() {
	b := NewBuilder()
	b.Add("x", "a")
	set := b.Seal()
	env.Equal([]string{"a"}, set.Members("x"))
	env.Panics(func() { b.Add("x", "b") })
}

func (env *ClassesTestEnviron) TestBuilderDeduplicates() {
	b := NewBuilder()
	env.Equal(2, b.Add("x", "a", "b", "a"))
	env.Equal(1, b.Insert("x", 1, "b", "c"))
	env.Equal([]string{"a", "c", "b"}, b.Members("x"))
	b.AddGroups([]fontmodel.Group{{Name: "x", Members: []string{"d"}}, {Name: "empty"}})
	env.Equal([]string{"a", "c", "b", "d"}, b.Members("x"))
	env.True(b.Has("empty"))
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
