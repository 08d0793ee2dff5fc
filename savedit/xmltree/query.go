package xmltree

import "strconv"

// Child returns the first direct child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Find walks a chain of direct children by tag and returns the node at the
// end of the path, or nil when any step is missing.
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, tag := range path {
		cur = cur.Child(tag)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// ChildWithAttr returns the first direct child with the given tag whose
// named attribute equals value, or nil.
func (n *Node) ChildWithAttr(tag, name, value string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag && c.HasAttr(name) && c.Attr(name) == value {
			return c
		}
	}
	return nil
}

// FindAll returns every descendant of n, in document order, with the given
// tag. n itself is not considered.
func (n *Node) FindAll(tag string) []*Node {
	return n.FindAllFunc(func(c *Node) bool { return c.Tag == tag })
}

// FindAllFunc returns every descendant of n, in document order, for which
// match returns true.
func (n *Node) FindAllFunc(match func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// AttrInt returns the named attribute parsed as an integer. A missing
// attribute reads as zero; a present but non-numeric value is an error so
// callers can skip the malformed element.
func (n *Node) AttrInt(name string) (int, error) {
	s := n.Attr(name)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
