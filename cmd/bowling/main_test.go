package main

import (
	"strings"
	"testing"
)

func TestParseOnOff(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"ON", true, false},
		{"yes", true, false},
		{"off", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		got, err := parseOnOff("hints", tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseOnOff(%q) = %v, %v; want %v, error %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestSheetText(t *testing.T) {
	rolls := make([]int, 12)
	for i := range rolls {
		rolls[i] = 10
	}

	text := sheetText(rolls)
	lines := strings.Split(text, "\n")
	if len(lines) != 5 {
		t.Fatalf("sheet has %d lines, want 5", len(lines))
	}
	if !strings.Contains(lines[3], "300") {
		t.Errorf("totals row %q missing 300", lines[3])
	}

	indented := indent(text, "  ")
	for i, l := range strings.Split(indented, "\n") {
		if !strings.HasPrefix(l, "  ") {
			t.Errorf("line %d not indented: %q", i, l)
		}
	}
}
