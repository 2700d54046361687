/*
Package ufo reads font sources in the Unified Font Object format (UFO 2 and 3)
as far as needed for feature generation: glyph metrics and anchors of the
default layer, groups, kerning, font info and the list of glyphs not to export.

Font implements fontmodel.Source.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ufo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/feax/fontmodel"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'feax.ufo'
func tracer() tracing.Trace {
	return tracing.Select("feax.ufo")
}

const (
	glyphsDir      = "glyphs"
	contentsPlist  = "contents.plist"
	groupsPlist    = "groups.plist"
	kerningPlist   = "kerning.plist"
	libPlist       = "lib.plist"
	fontinfoPlist  = "fontinfo.plist"
	skipExportsKey = "public.skipExportGlyphs"
)

// Font is a UFO font source on disk.
type Font struct {
	Path string
}

// Open checks that dir is a UFO directory and returns a font source for it.
func Open(dir string) (*Font, error) {
	contents := filepath.Join(dir, glyphsDir, contentsPlist)
	if _, err := os.Stat(contents); err != nil {
		return nil, fmt.Errorf("not a UFO font source: %w", err)
	}
	return &Font{Path: dir}, nil
}

// Snapshot reads the font source. Glyphs are delivered in the order of the
// default layer's contents file.
func (u *Font) Snapshot() (*fontmodel.Snapshot, error) {
	snap := &fontmodel.Snapshot{}
	contents, err := readPlistDict(filepath.Join(u.Path, glyphsDir, contentsPlist))
	if err != nil {
		return nil, err
	}
	for _, name := range contents.Keys {
		file, ok := contents.Values[name].(string)
		if !ok {
			return nil, fmt.Errorf("contents.plist: invalid file name for glyph %s", name)
		}
		gd, err := u.readGlyph(file)
		if err != nil {
			return nil, fmt.Errorf("glyph %s: %w", name, err)
		}
		gd.Name = name
		snap.Glyphs = append(snap.Glyphs, gd)
	}
	if snap.Skip, err = u.skipExports(); err != nil {
		return nil, err
	}
	if snap.Groups, err = u.groups(); err != nil {
		return nil, err
	}
	if snap.Kerning, err = u.kerning(); err != nil {
		return nil, err
	}
	info, err := readPlistDict(filepath.Join(u.Path, fontinfoPlist))
	if err != nil {
		return nil, err
	}
	snap.Info = info.Map()
	tracer().Infof("read UFO %s: %d glyphs, %d groups, %d kerning pairs",
		u.Path, len(snap.Glyphs), len(snap.Groups), len(snap.Kerning))
	return snap, nil
}

func (u *Font) readGlyph(file string) (fontmodel.GlyphData, error) {
	f, err := os.Open(filepath.Join(u.Path, glyphsDir, file))
	if err != nil {
		return fontmodel.GlyphData{}, err
	}
	defer f.Close()
	return parseGlif(f)
}

func (u *Font) skipExports() ([]string, error) {
	lib, err := readPlistDict(filepath.Join(u.Path, libPlist))
	if err != nil {
		return nil, err
	}
	v := lib.Get(skipExportsKey)
	if v == nil {
		return nil, nil
	}
	skip, err := toStrings(v)
	if err != nil {
		return nil, fmt.Errorf("lib.plist %s: %w", skipExportsKey, err)
	}
	return skip, nil
}

func (u *Font) groups() ([]fontmodel.Group, error) {
	d, err := readPlistDict(filepath.Join(u.Path, groupsPlist))
	if err != nil {
		return nil, err
	}
	groups := make([]fontmodel.Group, 0, len(d.Keys))
	for _, name := range d.Keys {
		members, err := toStrings(d.Values[name])
		if err != nil {
			return nil, fmt.Errorf("groups.plist %s: %w", name, err)
		}
		groups = append(groups, fontmodel.Group{Name: name, Members: members})
	}
	return groups, nil
}

func (u *Font) kerning() ([]fontmodel.KerningPair, error) {
	d, err := readPlistDict(filepath.Join(u.Path, kerningPlist))
	if err != nil {
		return nil, err
	}
	var pairs []fontmodel.KerningPair
	for _, left := range d.Keys {
		rights, ok := d.Values[left].(*Dict)
		if !ok {
			return nil, fmt.Errorf("kerning.plist %s: expected dictionary", left)
		}
		for _, right := range rights.Keys {
			value, ok := toNumber(rights.Values[right])
			if !ok {
				return nil, fmt.Errorf("kerning.plist %s/%s: expected number", left, right)
			}
			pairs = append(pairs, fontmodel.KerningPair{Left: left, Right: right, Value: value})
		}
	}
	return pairs, nil
}
