package map_reduce

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

type Format string

const (
	FormatTuple Format = "tuple"
	FormatTSV   Format = "tsv"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTuple, FormatTSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatPair renders kv as ('word', n).
func FormatPair(kv KeyValue) string {
	return fmt.Sprintf("(%s, %d)", quote(kv.Key), kv.Value)
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch {
		case r == '\\' || r == '\'':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// WriteResults writes one line per pair in the given format.
func WriteResults(w io.Writer, kvs []KeyValue, format Format) error {
	for _, kv := range kvs {
		var err error
		switch format {
		case FormatTuple:
			_, err = fmt.Fprintln(w, FormatPair(kv))
		case FormatTSV:
			_, err = fmt.Fprintf(w, "%v\t%v\n", kv.Key, kv.Value)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
		}
		if err != nil {
			return fmt.Errorf("failed to write %q: %w", kv.Key, err)
		}
	}
	return nil
}
