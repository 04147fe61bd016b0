package vdlib

import "testing"

// buildTestTree builds:
//
//	      0
//	     / \
//	    1   2
//	   / \
//	  3   4
func buildTestTree() *Node {
	n3 := &Node{ID: 3}
	n4 := &Node{ID: 4}
	n1 := &Node{ID: 1, Left: n3, Right: n4}
	n3.Parent, n4.Parent = n1, n1
	n2 := &Node{ID: 2}
	n0 := &Node{ID: 0, Left: n1, Right: n2}
	n1.Parent, n2.Parent = n0, n0
	return n0
}

func TestPreOrderIteratorOrder(t *testing.T) {
	it := NewPreOrderIterator(buildTestTree())

	var order []int
	for !it.Done() {
		order = append(order, it.Current().ID)
		it.Next()
	}

	want := []int{0, 1, 3, 4, 2}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestPreOrderIteratorSkip(t *testing.T) {
	it := NewPreOrderIterator(buildTestTree())

	var order []int
	for !it.Done() {
		n := it.Current()
		order = append(order, n.ID)
		if n.ID == 1 {
			it.Skip()
			continue
		}
		it.Next()
	}

	want := []int{0, 1, 2}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
