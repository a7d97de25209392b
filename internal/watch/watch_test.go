package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
)

var patterns = []string{"*.fy", "*.fynk"}

func TestMatches(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	single := filepath.Join(other, "notes.txt")
	if err := os.WriteFile(single, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New([]string{dir, single}, Config{Patterns: patterns}, func(string) {}, mdwlog.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.watcher.Close()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"fy in dir", filepath.Join(dir, "a.fy"), true},
		{"fynk in dir", filepath.Join(dir, "b.fynk"), true},
		{"other ext in dir", filepath.Join(dir, "c.txt"), false},
		{"nested dir", filepath.Join(dir, "sub", "a.fy"), false},
		{"explicit file", single, true},
		{"sibling of explicit file", filepath.Join(other, "a.fy"), false},
		{"unclean path", dir + "/./a.fy", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Matches(tt.path); got != tt.want {
				t.Errorf("Expected Matches(%s) = %v, got %v", tt.path, tt.want, got)
			}
		})
	}
}

func TestNewMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "a.fy")
	_, err := New([]string{missing}, Config{Patterns: patterns}, func(string) {}, mdwlog.Discard())
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeSourceRead) {
		t.Errorf("Expected CodeSourceRead, got %v", mdwerror.GetCode(err))
	}
}

func TestRunReportsChanges(t *testing.T) {
	dir := t.TempDir()
	changes := make(chan string, 16)

	w, err := New([]string{dir}, Config{Patterns: patterns}, func(path string) {
		changes <- path
	}, mdwlog.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	ignored := filepath.Join(dir, "readme.txt")
	if err := os.WriteFile(ignored, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	source := filepath.Join(dir, "main.fy")
	if err := os.WriteFile(source, []byte("x = 1;"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changes:
		if got != source {
			t.Errorf("Expected change for %s, got %s", source, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expected a change report")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}

	for len(changes) > 0 {
		if got := <-changes; got != source {
			t.Errorf("Expected only %s to be reported, got %s", source, got)
		}
	}
}

func TestRunReportsFinalContents(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "main.fy")
	contents := make(chan string, 16)

	w, err := New([]string{dir}, Config{Patterns: patterns, Debounce: 150 * time.Millisecond}, func(path string) {
		data, _ := os.ReadFile(path)
		contents <- string(data)
	}, mdwlog.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// An editor truncating the file and then writing it
	if err := os.WriteFile(source, nil, 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(source, []byte("x = 1;"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-contents:
		if got != "x = 1;" {
			t.Errorf("Expected the final contents, got %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expected a change report")
	}

	select {
	case got := <-contents:
		t.Errorf("Expected a single report, got another with %q", got)
	case <-time.After(400 * time.Millisecond):
	}
}
