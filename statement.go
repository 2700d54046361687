package feax

import (
	"github.com/npillmayer/feax/classes"
	"github.com/npillmayer/feax/fea"
	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/feax/position"
)

// StatementKind tags the variants of Statement.
type StatementKind int

const (
	CommentStatement StatementKind = iota
	GlyphClassStatement
	BaseClassStatement
	MarkClassStatement
)

func (k StatementKind) String() string {
	switch k {
	case CommentStatement:
		return "comment"
	case GlyphClassStatement:
		return "glyph-class-definition"
	case BaseClassStatement:
		return "base-class-definition"
	case MarkClassStatement:
		return "mark-class-definition"
	}
	return "unknown"
}

// Statement is a generated statement, independent of any feature document
// implementation. Fields are used depending on Kind:
//
//	comment:                Text
//	glyph-class-definition: Class, Glyphs (members)
//	base-/mark-class-def.:  Class, Glyphs, Anchor
type Statement struct {
	Kind   StatementKind
	Text   string
	Class  string
	Glyphs []string
	Anchor fontmodel.Point
}

// Section comments.
const (
	MainClassesComment = "Main Classes"
	PositioningComment = "Positioning classes and statements"
	apCommentPrefix    = "AP: "
)

// Build produces the ordered statements for the classes and attachment
// points of a model. It fails if the classes cannot be ordered.
func Build(m *Model) ([]Statement, error) {
	order, err := classes.Order(m.Classes)
	if err != nil {
		return nil, err
	}
	stmts := make([]Statement, 0, len(order)+2*m.Font.Anchors.Len()+2)
	stmts = append(stmts, Statement{Kind: CommentStatement, Text: MainClassesComment})
	for _, name := range order {
		stmts = append(stmts, Statement{
			Kind:   GlyphClassStatement,
			Class:  name,
			Glyphs: m.Classes.Members(name),
		})
	}
	stmts = append(stmts, Statement{Kind: CommentStatement, Text: PositioningComment})
	for _, ap := range position.Group(m.Font) {
		stmts = append(stmts, Statement{Kind: CommentStatement, Text: apCommentPrefix + ap.Name})
		for _, class := range ap.Classes {
			kind := BaseClassStatement
			if class.Kind == position.MarkClass {
				kind = MarkClassStatement
			}
			for _, def := range class.Definitions {
				stmts = append(stmts, Statement{
					Kind:   kind,
					Class:  class.Name,
					Glyphs: def.Glyphs,
					Anchor: def.Anchor,
				})
			}
		}
	}
	return stmts, nil
}

// Emit adds statements to a feature document, entering classes into the
// document's symbol tables.
func Emit(stmts []Statement, doc *fea.Document) {
	for _, s := range stmts {
		switch s.Kind {
		case CommentStatement:
			doc.AddStatement(fea.NewComment(s.Text))
		case GlyphClassStatement:
			gcd := &fea.GlyphClassDefinition{Name: s.Class, Class: fea.NewGlyphClass(s.Glyphs...)}
			doc.AddStatement(gcd)
			doc.DefineGlyphClass(s.Class, gcd)
		case BaseClassStatement:
			bc := doc.SetBaseClass(s.Class)
			def := &fea.BaseClassDefinition{Class: bc, Anchor: anchorOf(s), Glyphs: glyphsValue(s.Glyphs)}
			bc.AddDefinition(def)
			doc.AddStatement(def)
		case MarkClassStatement:
			mc := doc.SetMarkClass(s.Class)
			def := &fea.MarkClassDefinition{Class: mc, Anchor: anchorOf(s), Glyphs: glyphsValue(s.Glyphs)}
			mc.AddDefinition(def)
			doc.AddStatement(def)
		default:
			tracer().Errorf("cannot emit statement of kind %s", s.Kind)
		}
	}
}

func anchorOf(s Statement) fea.Anchor {
	return fea.Anchor{X: s.Anchor.X, Y: s.Anchor.Y}
}

func glyphsValue(glyphs []string) fea.GlyphsValue {
	if len(glyphs) == 1 {
		return fea.GlyphName(glyphs[0])
	}
	return fea.NewGlyphClass(glyphs...)
}
