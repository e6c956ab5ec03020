package parser

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func drain(t *testing.T, source *FileSource) []Line {
	t.Helper()
	ctx := context.Background()
	var lines []Line
	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			return lines
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		lines = append(lines, line)
	}
}

func TestFileSource_Next(t *testing.T) {
	path := writeTempLog(t, "[2025-08-14 10:00:00] ERROR: First\n[2025-08-14 10:00:01] ERROR: Second\n")

	source := NewFileSource(path)
	defer source.Close()

	lines := drain(t, source)
	if len(lines) != 2 {
		t.Fatalf("Got %d lines, want 2", len(lines))
	}
	if lines[0].LineNum != 1 || lines[1].LineNum != 2 {
		t.Errorf("LineNums = %d, %d, want 1, 2", lines[0].LineNum, lines[1].LineNum)
	}
	if lines[0].Source != path {
		t.Errorf("Source = %q, want %q", lines[0].Source, path)
	}
	if lines[1].Content != "[2025-08-14 10:00:01] ERROR: Second" {
		t.Errorf("Content = %q", lines[1].Content)
	}
}

func TestFileSource_InvalidUTF8Replaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	content := append([]byte("bad "), 0xff, 0xfe)
	content = append(content, " bytes\n"...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	source := NewFileSource(path)
	defer source.Close()

	lines := drain(t, source)
	if len(lines) != 1 {
		t.Fatalf("Got %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0].Content, "�") {
		t.Errorf("Content = %q, want replacement rune for invalid bytes", lines[0].Content)
	}
}

func TestFileSource_EmptyFile(t *testing.T) {
	path := writeTempLog(t, "")

	source := NewFileSource(path)
	defer source.Close()

	if _, err := source.Next(context.Background()); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestFileSource_FileNotFound(t *testing.T) {
	source := NewFileSource("/nonexistent/file.log")
	defer source.Close()

	if _, err := source.Next(context.Background()); err == nil {
		t.Error("Next() expected error for missing file")
	}
}

func TestFileSource_ContextCancellation(t *testing.T) {
	path := writeTempLog(t, "[2025-08-14 10:00:00] ERROR: line\n")

	source := NewFileSource(path)
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	if _, err := source.Next(ctx); err != context.Canceled {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}

func TestFileSource_Close(t *testing.T) {
	path := writeTempLog(t, "[2025-08-14 10:00:00] ERROR: line\n")

	source := NewFileSource(path)
	if _, err := source.Next(context.Background()); err != nil && err != io.EOF {
		t.Fatalf("Next() error = %v", err)
	}

	if err := source.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	// Closing again is a no-op
	if err := source.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
