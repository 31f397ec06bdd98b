package db

import "testing"

func TestTableOptions(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{"mysql", "CHARSET=utf8mb4 COLLATE=utf8mb4_bin"},
		{"sqlite", ""},
		{"postgres", ""},
	}
	for _, tt := range tests {
		if got := tableOptions(tt.dialect); got != tt.want {
			t.Errorf("tableOptions(%q) = %q, want %q", tt.dialect, got, tt.want)
		}
	}
}
