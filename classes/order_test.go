package classes

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func buildSet(classes map[string][]string) *Set {
	b := NewBuilder()
	for name, members := range classes {
		b.Ensure(name)
		b.Add(name, members...)
	}
	return b.Seal()
}

func TestOrderStableWithPairing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feax.classes")
	defer teardown()
	//
	set := buildSet(map[string][]string{
		"c_sc":       {"a.sc"},
		"cno_sc":     {"a"},
		"c_alt":      {"a.alt"},
		"cno_alt":    {"a"},
		"c_scx":      {"b.scx"},
		"GDEF_bases": {"a"},
		"d":          {"x"},
	})
	order, err := Order(set)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"GDEF_bases", "c_alt", "cno_alt", "c_sc", "cno_sc", "c_scx", "d"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("unexpected class order (-want +got):\n%s", diff)
	}
}

func TestOrderReferencesFirst(t *testing.T) {
	set := buildSet(map[string][]string{
		"a": {"@c", "x"},
		"b": {"y"},
		"c": {"@b", "@b"},
		"d": {"@a", "@c"},
	})
	order, err := Order(set)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"b", "c", "a", "d"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("unexpected class order (-want +got):\n%s", diff)
	}
}

func TestOrderDetectsCycle(t *testing.T) {
	set := buildSet(map[string][]string{
		"A": {"@B"},
		"B": {"@A"},
		"C": {"c"},
	})
	order, err := Order(set)
	if order != nil {
		t.Errorf("expected no order, got %v", order)
	}
	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B"}, cycle.Unresolved); diff != "" {
		t.Errorf("unexpected unresolved classes (-want +got):\n%s", diff)
	}
}

func TestOrderSelfReferenceAndUndefined(t *testing.T) {
	set := buildSet(map[string][]string{
		"A": {"@A"},
		"B": {"@nowhere"},
	})
	_, err := Order(set)
	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B"}, cycle.Unresolved); diff != "" {
		t.Errorf("unexpected unresolved classes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"nowhere"}, cycle.Undefined); diff != "" {
		t.Errorf("unexpected undefined classes (-want +got):\n%s", diff)
	}
}

// restartOrder is the straightforward scan-and-restart ordering which Order
// has to agree with.
func restartOrder(set *Set) []string {
	remaining := set.Sorted()
	counts := make(map[string]int)
	links := make(map[string][]string)
	for _, name := range remaining {
		refs := set.References(name)
		counts[name] = len(refs)
		for _, r := range refs {
			links[r] = append(links[r], name)
		}
	}
	var out []string
	for len(remaining) > 0 {
		found := false
		for i, name := range remaining {
			if counts[name] == 0 {
				out = append(out, name)
				remaining = append(remaining[:i], remaining[i+1:]...)
				for _, n := range links[name] {
					counts[n]--
				}
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	return out
}

func TestOrderIsTopologicalAndDeterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		classes := make(map[string][]string)
		n := 3 + rnd.Intn(12)
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("k%02d", rnd.Intn(40))
			if _, ok := classes[name]; ok {
				continue
			}
			classes[name] = []string{"g"}
		}
		names := make([]string, 0, len(classes))
		for name := range classes {
			names = append(names, name)
		}
		for _, name := range names {
			for _, other := range names {
				if other < name && rnd.Intn(3) == 0 { // acyclic by construction
					classes[name] = append(classes[name], "@"+other)
				}
			}
		}
		set := buildSet(classes)
		order, err := Order(set)
		if err != nil {
			t.Fatalf("round %d: unexpected error %v", round, err)
		}
		index := make(map[string]int)
		for i, name := range order {
			index[name] = i
		}
		for _, name := range order {
			for _, ref := range set.References(name) {
				if index[ref] >= index[name] {
					t.Fatalf("round %d: class %s emitted before its reference %s", round, name, ref)
				}
			}
		}
		if diff := cmp.Diff(restartOrder(set), order); diff != "" {
			t.Fatalf("round %d: order differs from restart scan (-want +got):\n%s", round, diff)
		}
		again, _ := Order(buildSet(classes))
		if diff := cmp.Diff(order, again); diff != "" {
			t.Fatalf("round %d: order is not deterministic:\n%s", round, diff)
		}
	}
}
