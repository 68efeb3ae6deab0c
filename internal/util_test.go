package internal

import (
	"reflect"
	"testing"
)

func lookup(links map[int]int) func(int) (int, bool) {
	return func(node int) (int, bool) {
		previous, ok := links[node]
		return previous, ok
	}
}

func TestCollectPredecessors(t *testing.T) {
	// 0 <- 1 <- 2 <- 3, start is its own predecessor
	links := map[int]int{0: 0, 1: 0, 2: 1, 3: 2}
	got := CollectPredecessors(lookup(links), 3)
	want := map[int]struct{}{0: {}, 1: {}, 2: {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCollectPredecessorsAtStart(t *testing.T) {
	got := CollectPredecessors(lookup(map[int]int{5: 5}), 5)
	if len(got) != 0 {
		t.Errorf("Expected nothing for the start itself, got %v", got)
	}
}

func TestCollectPredecessorsMissingLink(t *testing.T) {
	got := CollectPredecessors(lookup(map[int]int{3: 2}), 3)
	if !reflect.DeepEqual(got, map[int]struct{}{2: {}}) {
		t.Errorf("Expected the walk to stop at the missing link, got %v", got)
	}
}

func TestCollectPredecessorsCycle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic on cyclic links")
		}
	}()
	CollectPredecessors(lookup(map[int]int{1: 2, 2: 3, 3: 1}), 1)
}

func TestReconstructPath(t *testing.T) {
	links := map[string]string{"a": "a", "b": "a", "c": "b", "d": "c"}
	got := ReconstructPath(func(node string) (string, bool) {
		previous, ok := links[node]
		return previous, ok
	}, "d")
	if !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Errorf("Expected [a b c d], got %v", got)
	}
}
