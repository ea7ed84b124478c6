package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SaveMargins persists the four margins into the window section of the
// config file, leaving every other field and any comments untouched. The
// daemon calls this after a drag ends with changed margins; a failure is
// logged by the caller and the in-memory state stays authoritative.
func SaveMargins(path string, top, right, bottom, left int) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	window := ensureMapping(doc, "window")
	setInt(window, "margin_top", top)
	setInt(window, "margin_right", right)
	setInt(window, "margin_bottom", bottom)
	setInt(window, "margin_left", left)

	return writeDocument(path, doc)
}

// SaveOutput persists the current output name the same way.
func SaveOutput(path, outputName string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	window := ensureMapping(doc, "window")
	setString(window, "output", outputName)

	return writeDocument(path, doc)
}

// SaveAnchor persists the anchor keyword string, written together with
// margins when a migration flips an edge.
func SaveAnchor(path, anchor string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	window := ensureMapping(doc, "window")
	setString(window, "anchor", anchor)

	return writeDocument(path, doc)
}

// readDocument parses the file into a node tree. yaml.v3 keeps comments
// on the nodes, so a later marshal preserves them.
func readDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config for writeback: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse config for writeback: %w", err)
		}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	return &doc, nil
}

func writeDocument(path string, doc *yaml.Node) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ensureMapping returns the mapping node under the given top-level key,
// creating an empty one if absent.
func ensureMapping(doc *yaml.Node, key string) *yaml.Node {
	root := doc.Content[0]
	if node := mappingValue(root, key); node != nil {
		return node
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
	valNode := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, keyNode, valNode)
	return valNode
}

// mappingValue finds the value node for key in a mapping, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func setInt(m *yaml.Node, key string, v int) {
	setScalar(m, key, strconv.Itoa(v), "!!int")
}

func setString(m *yaml.Node, key, v string) {
	setScalar(m, key, v, "!!str")
}

// setScalar updates an existing value node in place, keeping whatever
// comments hang off it, or appends a new key/value pair.
func setScalar(m *yaml.Node, key, value, tag string) {
	if node := mappingValue(m, key); node != nil {
		node.Kind = yaml.ScalarNode
		node.Tag = tag
		node.Value = value
		node.Style = 0
		return
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value},
	)
}
