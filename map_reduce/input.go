package map_reduce

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines splits r into lines. "\n", "\r\n" and a lone "\r" all end a
// line. Each line loses its terminator and then every trailing space.
func ReadLines(r io.Reader) ([]Line, error) {
	var (
		lines []Line
		text  strings.Builder
	)
	br := bufio.NewReader(r)

	emit := func() {
		lines = append(lines, Line{Index: len(lines), Text: strings.TrimRight(text.String(), " ")})
		text.Reset()
	}

	for {
		c, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			if text.Len() > 0 {
				emit()
			}
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", len(lines), err)
		}

		switch c {
		case '\n':
			emit()
		case '\r':
			emit()
			if next, err := br.Peek(1); err == nil && next[0] == '\n' {
				br.ReadByte()
			}
		default:
			text.WriteByte(c)
		}
	}
}

func ReadLinesFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
