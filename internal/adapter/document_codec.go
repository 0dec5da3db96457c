package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	m "obsportable.dev/pkg/obsportable/internal/model"
)

// DefaultIndent matches the indentation OBS-facing tooling writes scene
// collections with.
const DefaultIndent = "    "

// DocumentCodec converts scene files to and from the order-preserving
// document tree.
type DocumentCodec interface {
	Decode(data []byte) (m.Node, error)
	Encode(node m.Node) ([]byte, error)
}

// JSONCodec implements DocumentCodec with go-json token streaming so mapping
// keys keep their file order and numbers keep their original lexeme.
type JSONCodec struct {
	indent string
}

// NewJSONCodec constructs a codec writing DefaultIndent.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{indent: DefaultIndent}
}

// Decode parses a single JSON document.
func (c *JSONCodec) Decode(data []byte) (m.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode document: empty input")
		}

		return nil, fmt.Errorf("decode document: %w", err)
	}

	node, err := c.decodeToken(dec, tok)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode document: unexpected data after top-level value")
	}

	return node, nil
}

func (c *JSONCodec) decodeToken(dec *json.Decoder, tok json.Token) (m.Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return c.decodeMapping(dec)
		case '[':
			return c.decodeSequence(dec)
		}

		return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
	case string:
		return m.String(v), nil
	case json.Number:
		return m.Number(v), nil
	case bool:
		return m.Bool(v), nil
	case nil:
		return m.Null{}, nil
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

func (c *JSONCodec) decodeMapping(dec *json.Decoder) (m.Node, error) {
	mp := m.NewMapping(0)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		value, err := c.decodeToken(dec, valueTok)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		mp.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return mp, nil
}

func (c *JSONCodec) decodeSequence(dec *json.Decoder) (m.Node, error) {
	seq := m.Sequence{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		value, err := c.decodeToken(dec, tok)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", len(seq), err)
		}

		seq = append(seq, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return seq, nil
}

// Encode serialises a document with one entry per line.
func (c *JSONCodec) Encode(node m.Node) ([]byte, error) {
	var buf bytes.Buffer

	if err := c.encodeNode(&buf, node, 0); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

//nolint:cyclop // One case per node variant.
func (c *JSONCodec) encodeNode(buf *bytes.Buffer, node m.Node, depth int) error {
	switch n := node.(type) {
	case *m.Mapping:
		if n.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}

		buf.WriteString("{\n")

		for i, entry := range n.Entries {
			c.writeIndent(buf, depth+1)

			if err := writeString(buf, entry.Key); err != nil {
				return err
			}

			buf.WriteString(": ")

			if err := c.encodeNode(buf, entry.Value, depth+1); err != nil {
				return fmt.Errorf("key %q: %w", entry.Key, err)
			}

			if i < n.Len()-1 {
				buf.WriteByte(',')
			}

			buf.WriteByte('\n')
		}

		c.writeIndent(buf, depth)
		buf.WriteByte('}')
	case m.Sequence:
		if len(n) == 0 {
			buf.WriteString("[]")
			return nil
		}

		buf.WriteString("[\n")

		for i, item := range n {
			c.writeIndent(buf, depth+1)

			if err := c.encodeNode(buf, item, depth+1); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}

			if i < len(n)-1 {
				buf.WriteByte(',')
			}

			buf.WriteByte('\n')
		}

		c.writeIndent(buf, depth)
		buf.WriteByte(']')
	case m.String:
		return writeString(buf, string(n))
	case m.Number:
		if !json.Valid([]byte(n)) {
			return fmt.Errorf("invalid number %q", string(n))
		}

		buf.WriteString(string(n))
	case m.Bool:
		buf.WriteString(strconv.FormatBool(bool(n)))
	case m.Null, nil:
		buf.WriteString("null")
	default:
		return fmt.Errorf("unsupported node %T", node)
	}

	return nil
}

func (c *JSONCodec) writeIndent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat(c.indent, depth))
}

func writeString(buf *bytes.Buffer, s string) error {
	encoded, err := json.MarshalNoEscape(s)
	if err != nil {
		return err
	}

	buf.Write(encoded)

	return nil
}
