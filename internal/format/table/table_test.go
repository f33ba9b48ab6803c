package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	got := FormatGap([][]string{
		{"1066", "●"},
		{"500 BC", "○"},
	}, []Alignment{AlignRight, AlignLeft}, 2)
	want := []string{
		"  1066  ●",
		"500 BC  ○",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatGapPadsShortRows(t *testing.T) {
	got := FormatGap([][]string{
		{"a", "bb"},
		{"ccc"},
	}, nil, 1)
	want := []string{
		"a   bb",
		"ccc   ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatMeasuresStyledCells(t *testing.T) {
	styled := "\x1b[1m1066\x1b[0m"
	got := FormatGap([][]string{{styled}, {"12345"}}, []Alignment{AlignRight}, 1)
	if got[0] != " "+styled {
		t.Fatalf("expected one pad cell before styled text, got %q", got[0])
	}
	if FormatGap(nil, nil, 1) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
