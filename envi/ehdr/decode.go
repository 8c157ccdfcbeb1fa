package ehdr

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"envi-binreader/envi/eerr"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Load opens the header file at path and parses it.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, eerr.ErrHeaderRead{Path: path, Cause: err}
	}
	defer file.Close()

	store, err := Parse(file)
	if err != nil {
		err := errors.Wrapf(err, `ehdr.Load error parsing "%s"`, path)
		return nil, err
	}
	return store, nil
}

// Parse reads "key = value" lines from reader. A value opened with "{" runs
// until the matching "}" and may span several lines, which are joined with a
// single space. Lines without a delimiter are ignored.
func Parse(reader io.Reader) (*Store, error) {
	store := NewStore()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	pendingKey := ""
	pendingValue := strings.Builder{}
	inBraces := false
	lineNumber := 0

	for scanner.Scan() {
		line := decodeLine(scanner.Bytes())
		lineNumber++

		if inBraces {
			pendingValue.WriteString(" ")
			pendingValue.WriteString(strings.TrimSpace(line))
			if strings.Contains(line, "}") {
				store.Set(pendingKey, strings.TrimSpace(pendingValue.String()))
				inBraces = false
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if lineNumber == 1 && strings.EqualFold(trimmed, MagicLine) {
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, ";") {
			continue
		}
		key, value, found := strings.Cut(trimmed, Delimiter)
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}
		if strings.HasPrefix(value, "{") && !strings.Contains(value, "}") {
			pendingKey = key
			pendingValue.Reset()
			pendingValue.WriteString(value)
			inBraces = true
			continue
		}
		store.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		err := errors.Wrap(err, "ehdr.Parse error")
		return nil, err
	}
	if inBraces {
		// an unterminated brace value keeps whatever was read up to the end of file
		store.Set(pendingKey, strings.TrimSpace(pendingValue.String()))
	}

	return store, nil
}

// decodeLine falls back to ISO-8859-1 for lines that are not valid UTF-8,
// which is what older tools write into description fields.
func decodeLine(bs []byte) string {
	if utf8.Valid(bs) {
		return string(bs)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(bs)
	if err != nil {
		return string(bs)
	}
	return string(decoded)
}
