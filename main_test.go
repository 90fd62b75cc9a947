package main

import (
	"errors"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		records int
		want    int
	}{
		{"clean run", nil, 6, 0},
		{"partial data still succeeds", errors.New("promoter tab timeout"), 3, 0},
		{"empty listing without error", nil, 0, 0},
		{"browser never launched", errors.New("listing: navigate: exec: no chrome binary"), 0, 1},
	}

	for _, tt := range tests {
		if got := exitCode(tt.err, tt.records); got != tt.want {
			t.Errorf("%s: exitCode(%v, %d) = %d; want %d",
				tt.name, tt.err, tt.records, got, tt.want)
		}
	}
}
