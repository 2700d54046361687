package ufo

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/npillmayer/feax/fontmodel"
)

// expressions used for every glyph file
var (
	glifRoot     = xpath.MustCompile("/glyph")
	glifAdvance  = xpath.MustCompile("advance")
	glifAnchors  = xpath.MustCompile("anchor")
	glifContours = xpath.MustCompile("outline/contour")
	glifPoints   = xpath.MustCompile("point")
)

// parseGlif decodes a glyph file (GLIF format 1 or 2).
func parseGlif(r io.Reader) (fontmodel.GlyphData, error) {
	var gd fontmodel.GlyphData
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return gd, err
	}
	glyph := xmlquery.QuerySelector(doc, glifRoot)
	if glyph == nil {
		return gd, fmt.Errorf("missing <glyph> element")
	}
	gd.Name = glyph.SelectAttr("name")
	if adv := xmlquery.QuerySelector(glyph, glifAdvance); adv != nil {
		if gd.Advance, err = optFloat(adv, "width"); err != nil {
			return gd, err
		}
	}
	for _, a := range xmlquery.QuerySelectorAll(glyph, glifAnchors) {
		anchor, err := parseAnchor(a, a.SelectAttr("name"))
		if err != nil {
			return gd, err
		}
		gd.Anchors = append(gd.Anchors, anchor)
	}
	bbox := fontmodel.BBox{XMin: math.Inf(1), YMin: math.Inf(1), XMax: math.Inf(-1), YMax: math.Inf(-1)}
	onCurve := 0
	for _, contour := range xmlquery.QuerySelectorAll(glyph, glifContours) {
		points := xmlquery.QuerySelectorAll(contour, glifPoints)
		if len(points) == 1 && points[0].SelectAttr("type") == "move" && points[0].SelectAttr("name") != "" {
			// GLIF 1 anchor
			anchor, err := parseAnchor(points[0], points[0].SelectAttr("name"))
			if err != nil {
				return gd, err
			}
			gd.Anchors = append(gd.Anchors, anchor)
			continue
		}
		for _, p := range points {
			if p.SelectAttr("type") == "" { // off-curve
				continue
			}
			x, errx := optFloat(p, "x")
			y, erry := optFloat(p, "y")
			if errx != nil || erry != nil {
				return gd, fmt.Errorf("glyph %s: malformed point", gd.Name)
			}
			bbox.XMin, bbox.YMin = math.Min(bbox.XMin, x), math.Min(bbox.YMin, y)
			bbox.XMax, bbox.YMax = math.Max(bbox.XMax, x), math.Max(bbox.YMax, y)
			onCurve++
		}
	}
	if onCurve > 0 {
		gd.BBox = bbox
	}
	return gd, nil
}

func parseAnchor(n *xmlquery.Node, name string) (fontmodel.AnchorData, error) {
	anchor := fontmodel.AnchorData{Name: name}
	xs, ys := n.SelectAttr("x"), n.SelectAttr("y")
	if xs == "" || ys == "" {
		anchor.NoGeometry = true
		return anchor, nil
	}
	var err error
	if anchor.X, err = strconv.ParseFloat(xs, 64); err != nil {
		return anchor, fmt.Errorf("anchor %s: %w", name, err)
	}
	if anchor.Y, err = strconv.ParseFloat(ys, 64); err != nil {
		return anchor, fmt.Errorf("anchor %s: %w", name, err)
	}
	return anchor, nil
}

// optFloat reads a numeric attribute which defaults to 0.
func optFloat(n *xmlquery.Node, attr string) (float64, error) {
	s := n.SelectAttr(attr)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
