package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the character set assumed for export files.
const DefaultEncoding = "utf-8"

// ErrUnknownEncoding is returned for a character set label x/text does not
// recognise.
var ErrUnknownEncoding = errors.New("unknown encoding")

// maxLineBytes bounds a single export line; real exports stay far below it.
const maxLineBytes = 1 << 20

// LookupEncoding resolves a WHATWG character set label such as "utf-8",
// "windows-1252" or "latin1".
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	return enc, nil
}

// ReadLines decodes r from the named character set and returns its lines
// without line terminators or a leading byte order mark.
func ReadLines(r io.Reader, charset string) ([]string, error) {
	enc, err := LookupEncoding(charset)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(transform.NewReader(r, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(lines) == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// ReadFile reads the lines of the export file at path.
func ReadFile(path, charset string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	lines, err := ReadLines(file, charset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
