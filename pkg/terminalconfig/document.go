package terminalconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// document is a JSON-with-comments text that supports in-place value edits.
// Lookups run against a masked copy in which comments and trailing commas are
// blanked out; the masking keeps every byte offset, so positions found in the
// mask apply directly to the original text.
type document struct {
	text []byte
	mask []byte
}

func newDocument(text []byte) *document {
	d := &document{text: text}
	d.remask()
	return d
}

func (d *document) remask() {
	d.mask = jsonc.ToJSON(d.text)
}

func (d *document) get(path string) gjson.Result {
	return gjson.GetBytes(d.mask, path)
}

func (d *document) valid() bool {
	trimmed := bytes.TrimSpace(d.mask)
	return len(trimmed) > 0 && trimmed[0] == '{' && gjson.ValidBytes(d.mask)
}

// set replaces the value at path, or inserts it as a new member of the
// parent object when the key does not exist yet.
func (d *document) set(path string, value interface{}) error {
	literal, err := encodeLiteral(value)
	if err != nil {
		return err
	}

	if current := d.get(path); current.Exists() && current.Index > 0 {
		d.splice(current.Index, current.Index+len(current.Raw), literal)
		return nil
	}

	parentPath, key := splitPath(path)
	start, end, err := d.objectBounds(parentPath)
	if err != nil {
		return err
	}

	keyLiteral, _ := encodeLiteral(key)
	member := append(append(keyLiteral, ": "...), literal...)

	// end is the closing brace; find the last token before it
	last := start
	for i := end - 1; i > start; i-- {
		if !isSpace(d.mask[i]) {
			last = i
			break
		}
	}
	if last == start {
		d.splice(start+1, start+1, member)
	} else {
		d.splice(last+1, last+1, append([]byte(", "), member...))
	}
	return nil
}

func (d *document) splice(from, to int, with []byte) {
	out := make([]byte, 0, len(d.text)-(to-from)+len(with))
	out = append(out, d.text[:from]...)
	out = append(out, with...)
	out = append(out, d.text[to:]...)
	d.text = out
	d.remask()
}

// objectBounds returns the offsets of the opening and closing braces of the
// object at path; an empty path means the document root
func (d *document) objectBounds(path string) (int, int, error) {
	if path == "" {
		start := bytes.IndexByte(d.mask, '{')
		end := bytes.LastIndexByte(d.mask, '}')
		if start < 0 || end < start {
			return 0, 0, fmt.Errorf("document root is not an object")
		}
		return start, end, nil
	}

	obj := d.get(path)
	if !obj.IsObject() || obj.Index <= 0 {
		return 0, 0, fmt.Errorf("%s is not an object", path)
	}
	return obj.Index, obj.Index + len(obj.Raw) - 1, nil
}

func splitPath(path string) (string, string) {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

func encodeLiteral(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
