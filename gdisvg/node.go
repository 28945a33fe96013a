package gdisvg

import (
	"encoding/xml"
	"io"
)

// node is a mutable element of the output document.
// Text nodes have an empty name.
type node struct {
	name     string
	attrs    []xml.Attr
	children []*node
	text     string
}

// newNode returns an element with the given attributes,
// provided as key, value pairs.
func newNode(name string, attrs ...string) *node {
	n := &node{name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.set(attrs[i], attrs[i+1])
	}
	return n
}

func textNode(s string) *node { return &node{text: s} }

// set adds or replaces an attribute.
func (n *node) set(key, value string) *node {
	for i, attr := range n.attrs {
		if attr.Name.Local == key {
			n.attrs[i].Value = value
			return n
		}
	}
	n.attrs = append(n.attrs, xml.Attr{Name: xml.Name{Local: key}, Value: value})
	return n
}

func (n *node) unset(key string) {
	for i, attr := range n.attrs {
		if attr.Name.Local == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

func (n *node) get(key string) (string, bool) {
	for _, attr := range n.attrs {
		if attr.Name.Local == key {
			return attr.Value, true
		}
	}
	return "", false
}

func (n *node) add(children ...*node) *node {
	n.children = append(n.children, children...)
	return n
}

// prepend inserts `child` as first child.
func (n *node) prepend(child *node) {
	n.children = append([]*node{child}, n.children...)
}

func (n *node) remove(child *node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *node) isEmpty() bool { return len(n.children) == 0 }

// clone returns a deep copy of `n`.
func (n *node) clone() *node {
	out := &node{name: n.name, text: n.text}
	out.attrs = append([]xml.Attr(nil), n.attrs...)
	for _, c := range n.children {
		out.children = append(out.children, c.clone())
	}
	return out
}

// find returns the first descendant (or `n` itself) with the given name and id.
func (n *node) find(name, id string) *node {
	if n.name == name {
		if v, _ := n.get("id"); v == id {
			return n
		}
	}
	for _, c := range n.children {
		if found := c.find(name, id); found != nil {
			return found
		}
	}
	return nil
}

func (n *node) encode(enc *xml.Encoder) error {
	if n.name == "" {
		return enc.EncodeToken(xml.CharData(n.text))
	}
	start := xml.StartElement{Name: xml.Name{Local: n.name}, Attr: n.attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// writeDocument serializes the tree rooted at `n`, with an XML declaration.
func writeDocument(w io.Writer, n *node) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if err := n.encode(enc); err != nil {
		return err
	}
	return enc.Flush()
}
