package ordered

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestIterAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	keys := drainAll(m.Keys().Next)
	require.Equal(t, []int{3, 4, 5, 7, 12, 14, 15, 16, 17, 18}, keys)
}

func TestIterOnEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	it := NewMap[int, int]().Iter()
	if it.Len() != 0 {
		t.Errorf("expected size hint 0 for empty map, is %d", it.Len())
	}
	if _, ok := it.Next(); ok {
		t.Error("did not expect an element from an empty map")
	}
}

func TestRevIterDescending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	keys := drainAll((&Keys[int, rune]{src: m.RevIter()}).Next)
	require.Equal(t, []int{18, 17, 16, 15, 14, 12, 7, 5, 4, 3}, keys)
}

// The size hint has to stay exact while the iterator is consumed.
func TestIterLenIsExactWhileConsuming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	for _, it := range []pairSource[int, rune]{m.Iter(), m.RevIter()} {
		expected := m.Len()
		for {
			if it.Len() != expected {
				t.Fatalf("expected size hint %d, is %d", expected, it.Len())
			}
			if _, ok := it.Next(); !ok {
				break
			}
			expected--
		}
		if expected != 0 {
			t.Errorf("expected iterator to yield %d elements, %d missing", m.Len(), expected)
		}
	}
}

func TestIterIsRestartable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	first := drainPairs(m.Iter().Next)
	second := drainPairs(m.Iter().Next)
	require.Equal(t, first, second)
}

func TestKeysValuesForwardSizeHint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	keys, values := m.Keys(), m.Values()
	require.Equal(t, 10, keys.Len())
	require.Equal(t, 10, values.Len())
	keys.Next()
	require.Equal(t, 9, keys.Len())
	require.Equal(t, []rune{'c', 'd', 'e', 'g', 'l', 'n', 'o', 'p', 'q', 'r'},
		drainAll(values.Next))
}

func TestRangeScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	r := m.Range(Included(6), Excluded(17))
	expected := []Pair[int, rune]{{7, 'g'}, {12, 'l'}, {14, 'n'}, {15, 'o'}, {16, 'p'}}
	require.Equal(t, expected, drainPairs(r.Next))
}

func TestRangeReverseScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	r := m.Range(Included(6), Excluded(17))
	keys := []int{}
	for {
		pair, ok := r.NextBack()
		if !ok {
			break
		}
		keys = append(keys, pair.Key)
	}
	require.Equal(t, []int{16, 15, 14, 12, 7}, keys)
}

func TestRangeUnbounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	r := m.Range(Unbounded[int](), Unbounded[int]())
	require.Equal(t, drainPairs(m.Iter().Next), drainPairs(r.Next))
}

func TestRangeInterleaved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	r := m.Range(Included(4), Included(16))
	var fromFront, fromBack []int
	for {
		pair, ok := r.Next()
		if !ok {
			break
		}
		fromFront = append(fromFront, pair.Key)
		pair, ok = r.NextBack()
		if !ok {
			break
		}
		fromBack = append(fromBack, pair.Key)
	}
	// both ends together must cover the range exactly once
	require.Equal(t, []int{4, 5, 7, 12}, fromFront)
	require.Equal(t, []int{16, 15, 14}, fromBack)
	if _, ok := r.Next(); ok {
		t.Error("did not expect an element after the cursors met")
	}
	if _, ok := r.NextBack(); ok {
		t.Error("did not expect an element after the cursors met")
	}
}

func TestRangeEmptyInterval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	m := scenarioMap()
	if got := drainPairs(m.Range(Excluded(7), Excluded(12)).Next); len(got) != 0 {
		t.Errorf("expected (7,12) to be empty, got %v", got)
	}
	if got := drainPairs(m.Range(Included(100), Unbounded[int]()).Next); len(got) != 0 {
		t.Errorf("expected [100,∞) to be empty, got %v", got)
	}
	if got := drainPairs(m.Range(Unbounded[int](), Excluded(3)).Next); len(got) != 0 {
		t.Errorf("expected (-∞,3) to be empty, got %v", got)
	}
}

// Property: for random trees and random bounds, the range must equal the
// filtered ascending sequence, forwards and backwards, and interleaved
// consumption must never double-yield or skip.
func TestRangeAgainstFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(4711))
	randomBound := func() Bound[int] {
		switch rng.Intn(3) {
		case 0:
			return Unbounded[int]()
		case 1:
			return Included(rng.Intn(120))
		}
		return Excluded(rng.Intn(120))
	}
	matches := func(k int, min, max Bound[int]) bool {
		minOK := min.kind == unbounded ||
			(min.kind == included && k >= min.key) || (min.kind == excluded && k > min.key)
		maxOK := max.kind == unbounded ||
			(max.kind == included && k <= max.key) || (max.kind == excluded && k < max.key)
		return minOK && maxOK
	}
	for round := 0; round < 200; round++ {
		m := NewMap[int, int]()
		var keys []int
		seen := map[int]bool{}
		for i := rng.Intn(60); i > 0; i-- {
			k := rng.Intn(120)
			m = m.With(k, k)
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		sort.Ints(keys)
		min, max := randomBound(), randomBound()
		var expected []int
		for _, k := range keys {
			if matches(k, min, max) {
				expected = append(expected, k)
			}
		}
		forward := []int{}
		for r := m.Range(min, max); ; {
			pair, ok := r.Next()
			if !ok {
				break
			}
			forward = append(forward, pair.Key)
		}
		require.Equal(t, len(expected), len(forward), "round %d: bounds %v %v", round, min, max)
		for i := range expected {
			require.Equal(t, expected[i], forward[i], "round %d", round)
		}
		backward := []int{}
		for r := m.Range(min, max); ; {
			pair, ok := r.NextBack()
			if !ok {
				break
			}
			backward = append(backward, pair.Key)
		}
		require.Equal(t, len(expected), len(backward), "round %d", round)
		for i := range expected {
			require.Equal(t, expected[len(expected)-1-i], backward[i], "round %d", round)
		}
		// random interleaving covers the range exactly once
		collected := map[int]int{}
		count := 0
		for r := m.Range(min, max); ; {
			var pair Pair[int, int]
			var ok bool
			if rng.Intn(2) == 0 {
				pair, ok = r.Next()
			} else {
				pair, ok = r.NextBack()
			}
			if !ok {
				// one exhausted end means the whole range is done
				if _, again := r.Next(); again {
					t.Fatalf("round %d: Next yielded after exhaustion", round)
				}
				if _, again := r.NextBack(); again {
					t.Fatalf("round %d: NextBack yielded after exhaustion", round)
				}
				break
			}
			collected[pair.Key]++
			count++
		}
		require.Equal(t, len(expected), count, "round %d: interleaved consumption", round)
		for _, k := range expected {
			require.Equal(t, 1, collected[k], "round %d: key %d", round, k)
		}
	}
}
