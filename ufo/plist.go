package ufo

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Dict is a plist dictionary which remembers the order of its keys.
type Dict struct {
	Keys   []string
	Values map[string]any
}

// Get returns the value for key, or nil.
func (d *Dict) Get(key string) any {
	if d == nil {
		return nil
	}
	return d.Values[key]
}

// Map flattens d into an unordered map.
func (d *Dict) Map() map[string]any {
	m := make(map[string]any, len(d.Keys))
	for _, k := range d.Keys {
		m[k] = d.Values[k]
	}
	return m
}

// readPlistDict reads a property list file with a dictionary at top level.
// A missing file yields an empty dictionary.
func readPlistDict(path string) (*Dict, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &Dict{Values: map[string]any{}}, nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	v, err := decodePlist(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d, ok := v.(*Dict)
	if !ok {
		return nil, fmt.Errorf("%s: top-level value is not a dictionary", path)
	}
	return d, nil
}

func decodePlist(r io.Reader) (any, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, err
	}
	root := xmlquery.FindOne(doc, "/plist")
	if root == nil {
		return nil, fmt.Errorf("not a property list")
	}
	elems := childElements(root)
	if len(elems) != 1 {
		return nil, fmt.Errorf("property list must hold exactly one value")
	}
	return decodeValue(elems[0])
}

func childElements(n *xmlquery.Node) []*xmlquery.Node {
	var elems []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			elems = append(elems, c)
		}
	}
	return elems
}

func decodeValue(n *xmlquery.Node) (any, error) {
	text := n.InnerText()
	switch n.Data {
	case "dict":
		elems := childElements(n)
		if len(elems)%2 != 0 {
			return nil, fmt.Errorf("dict with dangling key")
		}
		d := &Dict{Values: make(map[string]any, len(elems)/2)}
		for i := 0; i < len(elems); i += 2 {
			if elems[i].Data != "key" {
				return nil, fmt.Errorf("dict entry without key, found <%s>", elems[i].Data)
			}
			key := elems[i].InnerText()
			v, err := decodeValue(elems[i+1])
			if err != nil {
				return nil, err
			}
			if _, dup := d.Values[key]; !dup {
				d.Keys = append(d.Keys, key)
			}
			d.Values[key] = v
		}
		return d, nil
	case "array":
		elems := childElements(n)
		arr := make([]any, 0, len(elems))
		for _, e := range elems {
			v, err := decodeValue(e)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case "string", "date":
		return text, nil
	case "integer":
		return strconv.Atoi(strings.TrimSpace(text))
	case "real":
		return strconv.ParseFloat(strings.TrimSpace(text), 64)
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "data":
		return base64.StdEncoding.DecodeString(strings.Join(strings.Fields(text), ""))
	}
	return nil, fmt.Errorf("unknown property list element <%s>", n.Data)
}

// toNumber converts a decoded integer or real.
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// toStrings converts a decoded array of strings.
func toStrings(v any) ([]string, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected array, found %T", v)
	}
	strs := make([]string, 0, len(arr))
	for _, x := range arr {
		s, ok := x.(string)
		if !ok {
			return nil, fmt.Errorf("expected string array entry, found %T", x)
		}
		strs = append(strs, s)
	}
	return strs, nil
}
