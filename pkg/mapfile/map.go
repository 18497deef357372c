package mapfile

import (
	"io"
	"unicode/utf8"
)

// FromString parses a Valve 220 .map document: a sequence of top-level
// entity blocks. Anything left over once the next non-ignored byte isn't
// '{' is treated as an empty tail rather than a parse error, so trailing
// whitespace, comments, or stray text after the last entity is tolerated.
func FromString(s string) (Map, error) {
	sc := newScanner(s)

	var entities []Entity
	for {
		sc.skipIgnored()
		if sc.eof() || sc.peek() != '{' {
			break
		}
		e, err := sc.entity()
		if err != nil {
			return Map{}, err
		}
		entities = append(entities, e)
	}

	return Map{Entities: entities}, nil
}

// FromBytes validates b as UTF-8 and parses it as a Valve 220 document.
func FromBytes(b []byte) (Map, error) {
	if !utf8.Valid(b) {
		pos := 0
		for pos < len(b) {
			r, size := utf8.DecodeRune(b[pos:])
			if r == utf8.RuneError && size == 1 {
				break
			}
			pos += size
		}
		return Map{}, &Utf8Error{Cause: &ParseError{Position: pos, Expected: "valid UTF-8"}}
	}
	return FromString(string(b))
}

// FromReader reads r fully into memory, then parses it as a Valve 220
// document. It reads r sequentially to EOF before parsing and does no
// concurrent I/O.
func FromReader(r io.Reader) (Map, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Map{}, wrapIOError(err)
	}
	return FromBytes(b)
}
