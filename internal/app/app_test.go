package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "no trailing newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "empty file", content: "", want: []string{""}},
		{name: "blank interior line", content: "a\n\nb\n", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			got, err := readLines(path)
			if err != nil {
				t.Fatalf("readLines error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("readLines (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	got, err := readLines(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("readLines error: %v", err)
	}
	if got != nil {
		t.Errorf("readLines = %v, want nil for a fresh scratch buffer", got)
	}
}

func TestReadLinesEmptyPath(t *testing.T) {
	got, err := readLines("")
	if err != nil {
		t.Fatalf("readLines error: %v", err)
	}
	if got != nil {
		t.Errorf("readLines = %v, want nil", got)
	}
}
