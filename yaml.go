package visualijoper

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Document is one decoded YAML document.
type Document struct {
	// Line is the line the document's content starts on.
	Line  int
	Value any
}

// DecodeYAMLDocuments decodes every document in data. Mappings become
// [Map] so their keys keep the order they were written in, sequences become
// []any and scalars take their resolved YAML type. JSON input is accepted.
func DecodeYAMLDocuments(data []byte) ([]Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []Document
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode yaml document %d", len(docs)+1)
		}
		c := converter{
			active: make(map[*yaml.Node]bool),
			budget: expansionBudget(countNodes(&node)),
		}
		v, err := c.convert(&node)
		if err != nil {
			return nil, errors.Wrapf(err, "convert yaml document %d", len(docs)+1)
		}
		line := node.Line
		if len(node.Content) > 0 {
			line = node.Content[0].Line
		}
		docs = append(docs, Document{Line: line, Value: v})
	}
}

// DecodeYAML decodes data into a renderable value. A stream with several
// documents decodes to a []any holding one value per document; an empty
// stream decodes to nil.
func DecodeYAML(data []byte) (any, error) {
	docs, err := DecodeYAMLDocuments(data)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		return docs[0].Value, nil
	}
	values := make([]any, len(docs))
	for i, d := range docs {
		values[i] = d.Value
	}
	return values, nil
}

// Aliases may expand a document to at most expansionFactor times its own
// node count, and never less than minExpansion nodes.
const (
	expansionFactor = 100
	minExpansion    = 10000
)

func expansionBudget(nodes int) int {
	return max(nodes*expansionFactor, minExpansion)
}

// countNodes counts the nodes written in a document. Aliases count once
// and are not followed.
func countNodes(n *yaml.Node) int {
	count := 1
	if n.Kind == yaml.AliasNode {
		return count
	}
	for _, child := range n.Content {
		count += countNodes(child)
	}
	return count
}

// converter expands a node graph. active holds the anchored nodes being
// converted so an alias pointing at one of them is reported as a cycle.
// produced counts converted nodes against budget.
type converter struct {
	active   map[*yaml.Node]bool
	budget   int
	produced int
}

func (c *converter) convert(n *yaml.Node) (any, error) {
	c.produced++
	if c.produced > c.budget {
		return nil, errors.Wrapf(ErrAliasExpansion, "more than %d nodes at line %d", c.budget, n.Line)
	}
	if n.Anchor != "" {
		c.active[n] = true
		defer delete(c.active, n)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return c.convert(n.Content[0])
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := c.convert(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(Map, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := c.keyText(n.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := c.convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out = append(out, Pair{Key: key, Value: v})
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "decode scalar at line %d", n.Line)
		}
		return v, nil
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, errors.Newf("unresolved alias %q at line %d", n.Value, n.Line)
		}
		if c.active[n.Alias] {
			return nil, errors.Wrapf(ErrCyclicAlias, "alias %q at line %d", n.Value, n.Line)
		}
		return c.convert(n.Alias)
	default:
		return nil, errors.Newf("unexpected yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

func (c *converter) keyText(n *yaml.Node) (string, error) {
	if n.Kind == yaml.ScalarNode {
		return n.Value, nil
	}
	v, err := c.convert(n)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}
