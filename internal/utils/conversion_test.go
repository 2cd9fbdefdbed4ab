package utils

import (
	"slices"
	"strings"
	"testing"
)

func TestMapStopsEarly(t *testing.T) {
	var seen []string
	for v := range Map(slices.Values([]string{"a", "b", "c"}), strings.ToUpper) {
		seen = append(seen, v)
		if v == "B" {
			break
		}
	}
	if !slices.Equal(seen, []string{"A", "B"}) {
		t.Fatalf("unexpected values %v", seen)
	}
}

func TestMapSlice(t *testing.T) {
	names := MapSlice([]string{"search_web", "edit_file"}, func(s string) int { return len(s) })
	if !slices.Equal(names, []int{10, 9}) {
		t.Fatalf("unexpected lengths %v", names)
	}
	if out := MapSlice([]string(nil), strings.ToUpper); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}
