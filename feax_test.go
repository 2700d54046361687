package feax

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/feax/classes"
	"github.com/npillmayer/feax/fea"
	"github.com/npillmayer/feax/internal/ufotest"
	"github.com/npillmayer/feax/ufo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFont = ufotest.Font{
	Glyphs: []ufotest.Glyph{
		{Name: "a", Advance: 500, Anchors: []ufotest.Anchor{{Name: "top", X: 250, Y: 500}}},
		{Name: "a.sc", Advance: 450, Anchors: []ufotest.Anchor{{Name: "top", X: 250, Y: 400}}},
		{Name: "acutecomb", Anchors: []ufotest.Anchor{
			{Name: "_top", X: 0, Y: 500},
			{Name: "top", X: 0, Y: 700},
		}},
		{Name: "b", Advance: 500, Anchors: []ufotest.Anchor{{Name: "entry", X: 0, Y: 0}}},
	},
}

func writeUFO(t *testing.T, f ufotest.Font) *ufo.Font {
	dir := filepath.Join(t.TempDir(), "Test.ufo")
	require.NoError(t, ufotest.Write(dir, f))
	src, err := ufo.Open(dir)
	require.NoError(t, err)
	return src
}

func TestGenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feax")
	defer teardown()
	//
	font := testFont
	font.Info = map[string]string{"familyName": "Test Sans"}
	src := writeUFO(t, font)
	out, err := Generate(src, Options{
		OmittedAnchors: []string{"entry"},
		Defines:        map[string]string{"script": "DFLT"},
		FeatureSource:  strings.NewReader("languagesystem $script dflt;\n# $(info.familyName)\n"),
	})
	require.NoError(t, err)
	want := strings.Join([]string{
		"",
		"# Main Classes",
		"@GDEF_bases = [a a.sc b];",
		"@GDEF_marks = [acutecomb];",
		"@c_sc = [a.sc];",
		"@cno_sc = [a];",
		"",
		"# Positioning classes and statements",
		"",
		"# AP: top",
		"baseClass a <anchor 250 500> @top;",
		"baseClass a.sc <anchor 250 400> @top;",
		"baseClass acutecomb <anchor 0 700> @top_MarkBase;",
		"",
		"# AP: _top",
		"markClass acutecomb <anchor 0 500> @_top;",
		"languagesystem DFLT dflt;",
		"# Test Sans",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestGenerateIsDeterministic(t *testing.T) {
	font := testFont
	font.Groups = []ufotest.Group{
		{Name: "caps", Members: []string{"a.sc"}},
		{Name: "all", Members: []string{"@caps", "@GDEF_marks", "b"}},
	}
	src := writeUFO(t, font)
	first, err := Generate(src, Options{})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Generate(src, Options{})
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	assert.Less(t, strings.Index(first, "@caps ="), strings.Index(first, "@all ="))
	assert.Less(t, strings.Index(first, "@GDEF_marks ="), strings.Index(first, "@all ="))
}

func TestGenerateFailsOnCycle(t *testing.T) {
	font := testFont
	font.Groups = []ufotest.Group{
		{Name: "A", Members: []string{"@B"}},
		{Name: "B", Members: []string{"@A"}},
	}
	out, err := Generate(writeUFO(t, font), Options{})
	assert.Empty(t, out, "no partial output on error")
	var cycle *classes.CycleError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, []string{"A", "B"}, cycle.Unresolved)
}

func TestGenerateWithClassFile(t *testing.T) {
	dir := t.TempDir()
	classFile := filepath.Join(dir, "classes.xml")
	require.NoError(t, os.WriteFile(classFile, []byte(`<classes>
  <class name="vowels" exts=".sc">a e</class>
  <class name="GDEF_bases[0]">@vowels</class>
  <property name="case" value="lower">a b</property>
</classes>`), 0o644))
	var skipped []string
	m, err := Analyze(writeUFO(t, testFont), Options{
		ClassFile:              classFile,
		IncludeClassProperties: true,
		OnSkip:                 func(class, token string) { skipped = append(skipped, token) },
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.sc", "a"}, m.Classes.Members("vowels"))
	assert.Equal(t, []string{"@vowels", "a", "a.sc", "b"}, m.Classes.Members("GDEF_bases"))
	assert.Equal(t, []string{"a", "b"}, m.Classes.Members("case_lower"))
	assert.Equal(t, []string{"e.sc", "e"}, skipped)
	stmts, err := Build(m)
	require.NoError(t, err)
	order := make(map[string]int)
	for i, s := range stmts {
		if s.Kind == GlyphClassStatement {
			order[s.Class] = i
		}
	}
	assert.Less(t, order["vowels"], order["GDEF_bases"])
}

func TestEmitMapsStatements(t *testing.T) {
	doc := fea.NewDocument(fea.Environment{})
	Emit([]Statement{
		{Kind: CommentStatement, Text: "x"},
		{Kind: GlyphClassStatement, Class: "k", Glyphs: []string{"a"}},
		{Kind: MarkClassStatement, Class: "_top", Glyphs: []string{"m1", "m2"}},
		{Kind: BaseClassStatement, Class: "top", Glyphs: []string{"a"}},
	}, doc)
	require.Len(t, doc.Statements, 4)
	_, ok := doc.GlyphClass("k")
	assert.True(t, ok)
	mc, ok := doc.MarkClass("_top")
	require.True(t, ok)
	assert.Equal(t, "[m1 m2]", mc.Definitions[0].Glyphs.AsFea())
	bc, ok := doc.BaseClass("top")
	require.True(t, ok)
	assert.Equal(t, "a", bc.Definitions[0].Glyphs.AsFea())
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, []string{"entry", "exit", "_cap"}, ParseOmittedAnchors("entry, exit _cap"))
	defs, err := ParseDefines([]string{"a=1", "b=x=y"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y"}, defs)
	_, err = ParseDefines([]string{"novalue"})
	assert.Error(t, err)
}

func TestOpenSource(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Test.ufo")
	require.NoError(t, ufotest.Write(dir, testFont))
	src, err := OpenSource(dir)
	require.NoError(t, err)
	_, isUFO := src.(*ufo.Font)
	assert.True(t, isUFO)
	//
	_, err = OpenSource(filepath.Join(dir, "missing.otf"))
	assert.Error(t, err)
	_, err = OpenSource(filepath.Join(dir, "metainfo.plist"))
	assert.Error(t, err, "a plist is no binary font")
}
