// Package json decodes the navigation tree from its JSON source format.
package json

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fwojciec/docindex"
	gojson "github.com/goccy/go-json"
)

// wireNode is the on-the-wire shape of a tree node. Both fields are kept raw
// so that a malformed children field can degrade to a leaf.
type wireNode struct {
	Value    gojson.RawMessage `json:"value"`
	Children gojson.RawMessage `json:"children"`
}

// DecodeTree reads a tree of the form {"value": ..., "children": [...]}.
//
// A children field that is missing, null or not an array makes the node a
// leaf. A child that is not an object returns EMALFORMED. The value may be an
// object with title, link and type, a string used as the title, or any other
// scalar whose literal text becomes the title.
func DecodeTree(r io.Reader) (*docindex.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}
	return UnmarshalTree(data)
}

// UnmarshalTree is like DecodeTree but takes the encoded tree directly.
func UnmarshalTree(data []byte) (*docindex.Node, error) {
	if !isObject(data) {
		return nil, docindex.Errorf(docindex.EMALFORMED, "tree root is not an object")
	}
	return decodeNode(data, "root")
}

func decodeNode(data []byte, path string) (*docindex.Node, error) {
	var w wireNode
	if err := gojson.Unmarshal(data, &w); err != nil {
		return nil, docindex.Errorf(docindex.EMALFORMED, "node %s: %v", path, err)
	}

	n := &docindex.Node{Value: decodeValue(w.Value)}

	var children []gojson.RawMessage
	if !isArray(w.Children) || gojson.Unmarshal(w.Children, &children) != nil {
		return n, nil
	}

	for i, raw := range children {
		if isNull(raw) {
			continue
		}
		childPath := fmt.Sprintf("%s/%d", path, i)
		if !isObject(raw) {
			return nil, docindex.Errorf(docindex.EMALFORMED, "node %s is not an object", childPath)
		}
		child, err := decodeNode(raw, childPath)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func decodeValue(raw gojson.RawMessage) *docindex.Value {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || isNull(raw) {
		return nil
	}

	switch raw[0] {
	case '{':
		var v docindex.Value
		if err := gojson.Unmarshal(raw, &v); err == nil {
			return &v
		}
	case '"':
		var s string
		if err := gojson.Unmarshal(raw, &s); err == nil {
			return &docindex.Value{Title: s}
		}
	}
	return &docindex.Value{Title: string(raw)}
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func isArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}

// EncodeTree writes n in the source format.
func EncodeTree(w io.Writer, n *docindex.Node) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}
