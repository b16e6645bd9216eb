package main

import (
	"slices"
	"testing"
)

func TestParseOrders(t *testing.T) {
	bfs, err := parseOrders(" 4, 16 ,,64")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(bfs, []int{4, 16, 64}) {
		t.Fatalf("got %v, want [4 16 64]", bfs)
	}
	if _, err := parseOrders("4,x"); err == nil {
		t.Fatalf("expected an error for a non-numeric order")
	}
	if _, err := parseOrders(" , "); err == nil {
		t.Fatalf("expected an error for an empty list")
	}
}
