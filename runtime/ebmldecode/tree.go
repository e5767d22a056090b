package ebmldecode

import "io"

// Node is one element of a document tree built by BuildTree. Master
// elements carry Children; every other type carries a decoded value in
// whichever of Value, FloatValue, or String its Type selects.
type Node struct {
	Name       string
	Type       Type
	Depth      int
	Size       uint64
	Value      uint64
	FloatValue float64
	String     string
	RawBytes   []byte
	Children   []*Node
}

// BuildTree reads a complete EBML document from r and returns its
// root: a synthetic Node (Name "", Type TypeMaster) whose Children are
// the document's top-level elements. It is a convenience built on
// StreamReader for callers that want a tree rather than an event loop;
// nothing about the decoder itself requires materializing one.
func BuildTree(r io.Reader, lookup Lookup) (*Node, error) {
	sr := NewStreamReader(r, lookup)
	d := sr.Decoder()

	root := &Node{Type: TypeMaster}
	stack := []*Node{root}

	attach := func(n *Node) {
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
	}

	for {
		ev, err := sr.Next()
		if err == io.EOF {
			return root, nil
		}
		if err != nil {
			return nil, err
		}

		switch ev {
		case EventElemStart:
			if d.Type != TypeMaster {
				continue
			}
			node := &Node{Name: d.Name, Type: d.Type, Depth: d.ThisDepth, Size: d.Size}
			attach(node)
			stack = append(stack, node)

		case EventElemEnd:
			if d.Type != TypeMaster {
				node := &Node{
					Name:       d.Name,
					Type:       d.Type,
					Depth:      d.ThisDepth,
					Size:       d.Size,
					Value:      d.Value,
					FloatValue: d.FloatValue,
					String:     d.String(),
					RawBytes:   d.RawBytes(),
				}
				attach(node)
			}
			// +1 to account for the synthetic root occupying stack[0].
			want := d.Depth() + 1
			if want < len(stack) {
				stack = stack[:want]
			}
		}
	}
}
