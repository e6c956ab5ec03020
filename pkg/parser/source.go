package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileSource implements LineSource for reading a single log file.
type FileSource struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	lineNum int
}

// NewFileSource creates a LineSource that reads from the given file.
// The file is opened lazily on the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Next returns the next raw line with its 1-based line number.
// Bytes that are not valid UTF-8 are replaced with U+FFFD rather than
// failing the read. Returns io.EOF once the file is exhausted.
func (s *FileSource) Next(ctx context.Context) (Line, error) {
	// Check for context cancellation
	select {
	case <-ctx.Done():
		return Line{}, ctx.Err()
	default:
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return Line{}, err
		}
	}

	if s.scanner.Scan() {
		s.lineNum++
		return Line{
			Content: strings.ToValidUTF8(s.scanner.Text(), "�"),
			Source:  s.path,
			LineNum: s.lineNum,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return Line{}, fmt.Errorf("reading %s: %w", s.path, err)
	}

	return Line{}, io.EOF
}

// Close releases the underlying file.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.scanner = nil
	return err
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return nil
}
