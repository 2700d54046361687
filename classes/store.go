package classes

import (
	"sort"
	"strings"

	"github.com/npillmayer/feax/fontmodel"
)

// Names of the classes holding the GDEF mark/base partition.
const (
	GDEFMarks = "GDEF_marks"
	GDEFBases = "GDEF_bases"
)

// IsReference reports whether token refers to another class.
func IsReference(token string) bool {
	return strings.HasPrefix(token, fontmodel.ClassMarker)
}

// Reference returns the class reference token for class name.
func Reference(name string) string {
	return fontmodel.ClassMarker + name
}

// classList is an ordered list of class members without duplicates.
type classList struct {
	tokens []string
	index  map[string]bool
}

func (cl *classList) has(token string) bool {
	return cl.index[token]
}

func (cl *classList) add(token string) bool {
	if cl.index[token] {
		return false
	}
	cl.index[token] = true
	cl.tokens = append(cl.tokens, token)
	return true
}

func (cl *classList) insert(at int, tokens []string) int {
	fresh := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !cl.index[t] {
			cl.index[t] = true
			fresh = append(fresh, t)
		}
	}
	if at < 0 {
		at = 0
	}
	if at > len(cl.tokens) {
		at = len(cl.tokens)
	}
	cl.tokens = append(cl.tokens[:at], append(fresh, cl.tokens[at:]...)...)
	return len(fresh)
}

// Builder accumulates glyph classes. Re-adding to an existing class
// appends to it. A builder is single-use: after Seal it must not be
// changed any more.
type Builder struct {
	names   []string
	classes map[string]*classList
	sealed  bool
}

// NewBuilder creates an empty class builder.
func NewBuilder() *Builder {
	return &Builder{classes: make(map[string]*classList)}
}

func (b *Builder) assertOpen() {
	if b.sealed {
		panic("classes: builder has already been sealed")
	}
}

func (b *Builder) class(name string) *classList {
	cl, ok := b.classes[name]
	if !ok {
		cl = &classList{index: make(map[string]bool)}
		b.classes[name] = cl
		b.names = append(b.names, name)
	}
	return cl
}

// Ensure creates class name if it does not exist yet.
func (b *Builder) Ensure(name string) {
	b.assertOpen()
	b.class(name)
}

// Add appends tokens to class name, skipping tokens already present.
// It returns the number of tokens actually appended.
func (b *Builder) Add(name string, tokens ...string) int {
	b.assertOpen()
	cl, n := b.class(name), 0
	for _, t := range tokens {
		if cl.add(t) {
			n++
		}
	}
	return n
}

// Insert inserts tokens as a consecutive run at a fixed position of class
// name. Positions beyond the end of the class append. Tokens already
// present are skipped.
func (b *Builder) Insert(name string, at int, tokens ...string) int {
	b.assertOpen()
	return b.class(name).insert(at, tokens)
}

// AddGroups adds the glyph groups of a font as classes.
func (b *Builder) AddGroups(groups []fontmodel.Group) {
	for _, g := range groups {
		b.Ensure(g.Name)
		b.Add(g.Name, g.Members...)
	}
}

// Has reports whether class name exists.
func (b *Builder) Has(name string) bool {
	_, ok := b.classes[name]
	return ok
}

// Contains reports whether class name contains token.
func (b *Builder) Contains(name, token string) bool {
	cl, ok := b.classes[name]
	return ok && cl.has(token)
}

// Members returns a copy of the members of class name.
func (b *Builder) Members(name string) []string {
	if cl, ok := b.classes[name]; ok {
		return append([]string(nil), cl.tokens...)
	}
	return nil
}

// Seal ends the building phase and returns the read-only set of classes.
func (b *Builder) Seal() *Set {
	b.assertOpen()
	b.sealed = true
	set := &Set{
		names:   append([]string(nil), b.names...),
		members: make(map[string][]string, len(b.classes)),
	}
	for name, cl := range b.classes {
		set.members[name] = append([]string(nil), cl.tokens...)
	}
	tracer().Debugf("sealed %d classes", len(set.names))
	return set
}

// Set is a read-only collection of glyph classes.
type Set struct {
	names   []string
	members map[string][]string
}

// Len returns the number of classes.
func (s *Set) Len() int {
	return len(s.names)
}

// Names returns the class names in order of creation.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Has reports whether class name exists.
func (s *Set) Has(name string) bool {
	_, ok := s.members[name]
	return ok
}

// Members returns a copy of the members of class name.
func (s *Set) Members(name string) []string {
	return append([]string(nil), s.members[name]...)
}

// References returns the distinct names of classes referenced by class
// name, in order of appearance.
func (s *Set) References(name string) []string {
	var refs []string
	seen := make(map[string]bool)
	for _, t := range s.members[name] {
		if !IsReference(t) {
			continue
		}
		ref := t[len(fontmodel.ClassMarker):]
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}
	return refs
}

// Sorted returns the class names in their stable order, see Order.
func (s *Set) Sorted() []string {
	names := s.Names()
	sort.Slice(names, func(i, j int) bool {
		return compareNames(names[i], names[j]) < 0
	})
	return names
}
