// Package xmltree is an order-preserving XML document tree.
//
// Unlike encoding/xml it keeps the raw bytes of everything it does not
// understand or does not need to touch: attribute value text, inter-element
// whitespace, comments, processing instructions and the empty-element form
// all survive a parse/serialize cycle unchanged. A document that is parsed
// and written back without mutation is byte-identical to the input.
package xmltree

// Attr is a single element attribute. The value is kept in its raw escaped
// form so untouched attributes serialize back to their original bytes.
type Attr struct {
	Name string
	raw  string
	q    byte
}

// Value returns the decoded attribute value.
func (a Attr) Value() string { return unescape(a.raw) }

// Node is one element in the tree. Text and Tail follow the lxml
// convention: Text is the raw character data before the first child
// element, Tail the raw character data after this element's end tag.
// Comments, CDATA and processing instructions inside an element are folded
// into Text/Tail verbatim; they are content we never edit.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Tail     string
	Parent   *Node
	Children []*Node

	empty      bool // written as an empty-element tag
	emptySpace bool // a space preceded the "/>" in the source
}

// NewElement returns a detached element with no attributes or children.
func NewElement(tag string) *Node {
	return &Node{Tag: tag, empty: true}
}

// Attr returns the decoded value of the named attribute, or "" when the
// attribute is absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value()
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	for _, a := range n.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttr sets the named attribute, preserving the position of an existing
// attribute and appending new ones at the end.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs[i].raw = escape(value)
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, raw: escape(value), q: '"'})
}

// AppendChild attaches child as the last child of n. A previously
// empty-element node is rewritten with an explicit end tag so the child
// has somewhere to live.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
	n.empty = false
}

// RemoveChild detaches child from n. The child's tail text is removed with
// it. Removing a node that is not a child of n is a no-op.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// ClearChildren drops every child element and the inner text of n.
// Attributes are kept.
func (n *Node) ClearChildren() {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = nil
	n.Text = ""
}

// Clone returns a deep copy of n, detached from any parent.
func (n *Node) Clone() *Node {
	c := &Node{
		Tag:        n.Tag,
		Text:       n.Text,
		empty:      n.empty,
		emptySpace: n.emptySpace,
	}
	c.Attrs = append([]Attr(nil), n.Attrs...)
	for _, child := range n.Children {
		cc := child.Clone()
		cc.Tail = child.Tail
		cc.Parent = c
		c.Children = append(c.Children, cc)
	}
	return c
}
