// Package dictionary loads word dictionaries from JSON files.
//
// The loader scans the JSON token stream rather than unmarshaling whole
// documents: the file format requires that a "word" field be immediately
// followed by its "type" field, and field order inside an object is not
// observable after unmarshaling into a map.
package dictionary

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/storyforge/madlib/pkg/types"
)

// Field names recognized in dictionary records.
const (
	fieldWord = "word"
	fieldType = "type"
)

// Load reads the dictionary file at path and returns the Dictionary built
// from its entries. Returns the open error unchanged when the path cannot
// be opened, and a *types.ParseError when the content is malformed.
func Load(path string) (types.Dictionary, error) {
	entries, err := LoadEntries(path)
	if err != nil {
		return nil, err
	}
	return types.NewDictionary(entries), nil
}

// LoadEntries reads the dictionary file at path and returns its entries in
// file order. Used directly by the word bank import, which needs order
// preserved across types.
func LoadEntries(path string) ([]types.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := parse(f)
	if err != nil {
		return nil, wrapParseError(path, err)
	}
	return entries, nil
}

// parse scans the JSON token stream and collects (word, type) pairs.
//
// The root must be an array of objects. Inside each object, a "word" key
// must be immediately followed by a "type" key; any other field is skipped,
// and objects without a "word" field contribute nothing. An empty input
// yields no entries.
func parse(r io.Reader) ([]types.WordEntry, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, offsetError(dec, types.ErrNotArray)
	}

	var entries []types.WordEntry
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		delim, ok := tok.(json.Delim)
		if !ok {
			return nil, offsetError(dec, types.ErrNotObject)
		}
		if delim == ']' {
			return entries, nil
		}
		if delim != '{' {
			return nil, offsetError(dec, types.ErrNotObject)
		}

		recEntries, err := parseRecord(dec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, recEntries...)
	}
}

// parseRecord consumes one object's tokens, up to and including the closing
// brace, and returns the (word, type) pairs it declares.
func parseRecord(dec *json.Decoder) ([]types.WordEntry, error) {
	var entries []types.WordEntry
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return entries, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, offsetError(dec, types.ErrNotObject)
		}
		if key != fieldWord {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}

		word, err := stringValue(dec)
		if err != nil {
			return nil, err
		}

		// Every word must have a type as the very next field.
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		if key, ok := tok.(string); !ok || key != fieldType {
			return nil, offsetError(dec, types.ErrMissingType)
		}

		typ, err := stringValue(dec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, types.WordEntry{Word: word, Type: typ})
	}
}

// stringValue reads the next token and requires it to be a JSON string.
func stringValue(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", offsetError(dec, types.ErrValueType)
	}
	return s, nil
}

// skipValue consumes one complete value from the stream, descending into
// nested arrays and objects.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if _, ok := tok.(json.Delim); !ok {
		// Scalar value; nothing more to consume.
		return nil
	}
	// Opened a nested array or object; consume tokens until it closes.
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// offsetError attaches the decoder's current byte offset to err.
func offsetError(dec *json.Decoder, err error) error {
	return &types.ParseError{Offset: dec.InputOffset(), Err: err}
}

// wrapParseError normalizes loader failures into *types.ParseError carrying
// the source path. Syntax errors from encoding/json keep their own offset;
// read errors pass through unchanged.
func wrapParseError(path string, err error) error {
	var parseErr *types.ParseError
	if errors.As(err, &parseErr) {
		parseErr.Path = path
		return parseErr
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &types.ParseError{Path: path, Offset: syntaxErr.Offset, Err: err}
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return &types.ParseError{Path: path, Err: err}
	}

	return err
}
