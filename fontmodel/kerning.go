package fontmodel

import "sort"

// ClassMarker is prefixed to a token which names a glyph class.
const ClassMarker = "@"

// Kerning maps a left-side glyph or class reference to right-side glyphs
// and their kerning values.
type Kerning map[string]map[string]float64

// RepackKerning converts raw kerning pairs into a Kerning table. Left-side
// names contained in classNames are rewritten to class references.
// Duplicate pairs are not merged, the last value wins.
func RepackKerning(pairs []KerningPair, classNames map[string]bool) Kerning {
	kern := make(Kerning)
	for _, p := range pairs {
		left := p.Left
		if classNames[left] {
			left = ClassMarker + left
		}
		rights, ok := kern[left]
		if !ok {
			rights = make(map[string]float64)
			kern[left] = rights
		}
		rights[p.Right] = p.Value
	}
	return kern
}

// Value returns the kerning value for a pair.
func (k Kerning) Value(left, right string) (float64, bool) {
	v, ok := k[left][right]
	return v, ok
}

// Lefts returns all left-side keys, sorted.
func (k Kerning) Lefts() []string {
	return sortedKeys(k)
}

// Rights returns the right-side keys for left, sorted.
func (k Kerning) Rights(left string) []string {
	return sortedKeys(k[left])
}

// Len returns the number of kerning pairs.
func (k Kerning) Len() int {
	n := 0
	for _, rights := range k {
		n += len(rights)
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
