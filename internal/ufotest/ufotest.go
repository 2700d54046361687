// Package ufotest writes small UFO font sources for tests.
package ufotest

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Anchor is a glyph anchor.
type Anchor struct {
	Name string
	X, Y float64
}

// Glyph describes a glyph to write. Contour holds on-curve points of a
// single closed contour, if any.
type Glyph struct {
	Name    string
	Advance float64
	Contour [][2]float64
	Anchors []Anchor
}

// Group is a glyph group.
type Group struct {
	Name    string
	Members []string
}

// Kern is a kerning pair.
type Kern struct {
	Left, Right string
	Value       float64
}

// Font describes a UFO source to write.
type Font struct {
	Glyphs  []Glyph
	Groups  []Group
	Kerning []Kern
	Skip    []string          // public.skipExportGlyphs
	Info    map[string]string // fontinfo.plist string entries
}

// Write creates a UFO 3 directory at dir.
func Write(dir string, f Font) error {
	if err := os.MkdirAll(filepath.Join(dir, "glyphs"), 0o755); err != nil {
		return err
	}
	files := map[string]string{
		"metainfo.plist": plist(dictOf("creator", str("ufotest"), "formatVersion", integer(3))),
	}
	var contents []string
	for i, g := range f.Glyphs {
		file := fmt.Sprintf("g%04d.glif", i)
		contents = append(contents, g.Name, str(file))
		files[filepath.Join("glyphs", file)] = glif(g)
	}
	files[filepath.Join("glyphs", "contents.plist")] = plist(dictOf(contents...))
	var groups []string
	for _, g := range f.Groups {
		groups = append(groups, g.Name, array(g.Members))
	}
	files["groups.plist"] = plist(dictOf(groups...))
	var lefts []string
	rights := make(map[string][]string)
	for _, k := range f.Kerning {
		if _, ok := rights[k.Left]; !ok {
			lefts = append(lefts, k.Left)
		}
		rights[k.Left] = append(rights[k.Left], k.Right, number(k.Value))
	}
	var kerning []string
	for _, l := range lefts {
		kerning = append(kerning, l, dictOf(rights[l]...))
	}
	files["kerning.plist"] = plist(dictOf(kerning...))
	if len(f.Skip) > 0 {
		files["lib.plist"] = plist(dictOf("public.skipExportGlyphs", array(f.Skip)))
	}
	var info []string
	for k, v := range f.Info {
		info = append(info, k, str(v))
	}
	files["fontinfo.plist"] = plist(dictOf(info...))
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func glif(g Glyph) string {
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<glyph name=\"%s\" format=\"2\">\n", escape(g.Name))
	fmt.Fprintf(&b, "  <advance width=\"%s\"/>\n", num(g.Advance))
	for _, a := range g.Anchors {
		fmt.Fprintf(&b, "  <anchor x=\"%s\" y=\"%s\" name=\"%s\"/>\n", num(a.X), num(a.Y), escape(a.Name))
	}
	if len(g.Contour) > 0 {
		b.WriteString("  <outline>\n    <contour>\n")
		for _, p := range g.Contour {
			fmt.Fprintf(&b, "      <point x=\"%s\" y=\"%s\" type=\"line\"/>\n", num(p[0]), num(p[1]))
		}
		b.WriteString("    </contour>\n  </outline>\n")
	}
	b.WriteString("</glyph>\n")
	return b.String()
}

func plist(value string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<plist version="1.0">` + "\n" + value + "\n</plist>\n"
}

// dictOf builds a dict from alternating keys and encoded values.
func dictOf(kv ...string) string {
	var b bytes.Buffer
	b.WriteString("<dict>\n")
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, "<key>%s</key>%s\n", escape(kv[i]), kv[i+1])
	}
	b.WriteString("</dict>")
	return b.String()
}

func array(items []string) string {
	var b bytes.Buffer
	b.WriteString("<array>")
	for _, s := range items {
		b.WriteString(str(s))
	}
	b.WriteString("</array>")
	return b.String()
}

func str(s string) string {
	return "<string>" + escape(s) + "</string>"
}

func integer(n int) string {
	return "<integer>" + strconv.Itoa(n) + "</integer>"
}

func number(f float64) string {
	if f == float64(int(f)) {
		return integer(int(f))
	}
	return "<real>" + num(f) + "</real>"
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
