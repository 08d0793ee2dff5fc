package xmltree

import (
	"io"
	"strings"
)

// Bytes serializes the document. For a tree that has not been mutated the
// output is byte-identical to the input the tree was parsed from.
func (d *Document) Bytes() []byte {
	var b strings.Builder
	b.WriteString(d.Prolog)
	if d.Root != nil {
		writeNode(&b, d.Root)
	}
	b.WriteString(d.Trailer)
	return []byte(b.String())
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}

func writeNode(b *strings.Builder, n *Node) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteByte('=')
		q := a.q
		if q == 0 {
			q = '"'
		}
		b.WriteByte(q)
		b.WriteString(a.raw)
		b.WriteByte(q)
	}
	if n.empty && len(n.Children) == 0 && n.Text == "" {
		if n.emptySpace {
			b.WriteByte(' ')
		}
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
		b.WriteString(n.Text)
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
	b.WriteString(n.Tail)
}
