package classes

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// CycleError is returned by Order if some classes cannot be ordered, i.e.
// they (directly or indirectly) reference themselves or a class which is
// not defined. This is a configuration error of the class sources.
type CycleError struct {
	Unresolved []string // classes which could not be ordered, in stable order
	Undefined  []string // referenced names which are not classes
}

func (e *CycleError) Error() string {
	msg := "class reference loop(s) found: " + strings.Join(e.Unresolved, ", ")
	if len(e.Undefined) > 0 {
		msg += "; undefined classes referenced: " + strings.Join(e.Undefined, ", ")
	}
	return msg
}

// sortKey makes a class 'cno_X' sort next to 'c_X'.
func sortKey(name string) string {
	if strings.HasPrefix(name, NoSuffixPrefix) {
		return SuffixPrefix + name[len(NoSuffixPrefix):]
	}
	return name
}

func compareNames(a, b string) int {
	if c := strings.Compare(sortKey(a), sortKey(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func classComparator(a, b interface{}) int {
	return compareNames(a.(string), b.(string))
}

// Order returns the names of all classes of set in an order where every
// class appears after all the classes it references. Among the classes
// which are ready to be emitted, the first one in stable order comes first.
// Stable order is alphabetical, with class 'cno_X' sorted as if it were
// named 'c_X'.
//
// If not all classes can be ordered, Order returns a *CycleError and no
// order at all.
func Order(set *Set) ([]string, error) {
	names := set.Sorted()
	pending := make(map[string]int, len(names)) // count of un-output referenced classes
	users := make(map[string][]string)          // class → classes referencing it
	ready := treeset.NewWith(classComparator)
	var undefined []string
	for _, name := range names {
		refs := set.References(name)
		pending[name] = len(refs)
		for _, ref := range refs {
			users[ref] = append(users[ref], name)
			if !set.Has(ref) {
				undefined = append(undefined, ref)
			}
		}
		if len(refs) == 0 {
			ready.Add(name)
		}
	}
	ordered := make([]string, 0, len(names))
	for !ready.Empty() {
		it := ready.Iterator()
		it.First()
		name := it.Value().(string)
		ready.Remove(name)
		ordered = append(ordered, name)
		for _, user := range users[name] {
			pending[user]--
			if pending[user] == 0 {
				ready.Add(user)
			}
		}
	}
	if len(ordered) < len(names) {
		err := &CycleError{Undefined: uniqueSorted(undefined)}
		for _, name := range names {
			if pending[name] > 0 {
				err.Unresolved = append(err.Unresolved, name)
			}
		}
		tracer().Errorf(err.Error())
		return nil, err
	}
	return ordered, nil
}

func uniqueSorted(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	set := treeset.NewWithStringComparator()
	for _, n := range names {
		set.Add(n)
	}
	unique := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		unique = append(unique, v.(string))
	}
	return unique
}
