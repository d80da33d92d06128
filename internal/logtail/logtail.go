package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		var lines []string
		err := eachLine(path, func(line string) {
			lines = append(lines, line)
		})
		return lines, err
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	err := eachLine(path, func(line string) {
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	})
	if err != nil {
		return nil, err
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// ReadSince returns the lines appended after the cursor since.
//
// Without a cursor (hasCursor false) it falls back to the last tail lines so a
// first run does not report the whole history. With a cursor, a timestamped
// line starts or stops capture depending on whether it is strictly newer than
// since; lines without a timestamp inherit the state of the record above them.
func ReadSince(path string, since time.Time, hasCursor bool, tail int) ([]string, error) {
	if !hasCursor {
		return Read(path, tail)
	}

	var lines []string
	capturing := false
	err := eachLine(path, func(line string) {
		if ts, ok := ExtractTimestamp(line); ok {
			capturing = ts.After(since)
		}
		if capturing {
			lines = append(lines, line)
		}
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// eachLine calls fn for every line of the file in order. A missing file yields
// no lines and no error.
func eachLine(path string, fn func(string)) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 64*1024)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			fn(strings.ToValidUTF8(line, "\uFFFD"))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read log: %w", err)
		}
	}
}
