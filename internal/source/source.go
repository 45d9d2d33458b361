package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 1024 * 1024
)

// OversizedLine stands in for a line longer than the maximum line length.
// It never parses as a record.
const OversizedLine = "\x00"

// ReadLines returns every line of the file at path. A missing file is an
// error; callers decide whether that is fatal. Lines longer than 1MB are
// skipped to their end and returned as OversizedLine, so one runaway line
// does not hide the rest of the file.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = file.Close() }()

	var (
		lines     []string
		line      []byte
		oversized bool
	)
	reader := bufio.NewReaderSize(file, initialLineBuffer)
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		if !oversized {
			if len(line)+len(chunk) > maxLineLength {
				oversized = true
				line = line[:0]
			} else {
				line = append(line, chunk...)
			}
		}
		if isPrefix {
			continue
		}
		if oversized {
			lines = append(lines, OversizedLine)
		} else {
			lines = append(lines, string(line))
		}
		line = line[:0]
		oversized = false
	}
	return lines, nil
}

// Size returns the current byte length of the file at path.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("stat source: %s is a directory", path)
	}
	return info.Size(), nil
}
