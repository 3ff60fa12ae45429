package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeIDs(t *testing.T) {
	got := NormalizeIDs([]string{" s001", "", "S002 ", "  "})
	want := []string{"S001", "S002"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeIDs = %v, want %v", got, want)
	}
}

func TestHasDuplicates(t *testing.T) {
	if !HasDuplicates([]string{"S001", "s001"}) {
		t.Fatalf("case-insensitive duplicate not detected")
	}
	if HasDuplicates([]string{"S001", "S002", ""}) {
		t.Fatalf("unexpected duplicate")
	}
}
