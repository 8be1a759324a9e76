// Package captree assembles the browsable capability tree: adapters,
// their outputs and display modes, and one subtree per negotiated device
// interface with its feature-level summaries and format tables.
package captree

import (
	"errors"

	"github.com/kirides/dxcaps/fields"
)

// ErrSkip returned from a WalkFunc skips the node's children.
var ErrSkip = errors.New("skip children")

type resolveFunc func(view fields.View) fields.Table

// Node is one entry of the tree. Nodes without a resolver only group
// their children.
type Node struct {
	Label    string
	Children []*Node

	resolve resolveFunc
	tables  map[fields.View]fields.Table
}

// NewNode returns a node resolving its table with fn. A nil fn makes a
// grouping node.
func NewNode(label string, fn func(view fields.View) fields.Table, children ...*Node) *Node {
	return &Node{Label: label, resolve: fn, Children: children}
}

func folder(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

func leaf(label string, fn resolveFunc) *Node {
	return &Node{Label: label, resolve: fn}
}

func (n *Node) add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// HasTable reports whether the node carries a table.
func (n *Node) HasTable() bool { return n.resolve != nil }

// Table resolves the node's rows for view. The first call per view runs
// the device queries; later calls return the same table.
func (n *Node) Table(view fields.View) (fields.Table, bool) {
	if n.resolve == nil {
		return fields.Table{}, false
	}
	if t, ok := n.tables[view]; ok {
		return t, true
	}
	if n.tables == nil {
		n.tables = make(map[fields.View]fields.Table, 2)
	}
	t := n.resolve(view).Filter(view)
	n.tables[view] = t
	return t, true
}

// Child returns the child at index i, or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Find returns the first child labelled label, or nil.
func (n *Node) Find(label string) *Node {
	for _, c := range n.Children {
		if c.Label == label {
			return c
		}
	}
	return nil
}

// Path follows a list of child indices from n.
func (n *Node) Path(indices ...int) *Node {
	cur := n
	for _, i := range indices {
		if cur = cur.Child(i); cur == nil {
			return nil
		}
	}
	return cur
}

// WalkFunc is called for every visited node. table is only valid when
// ok is true.
type WalkFunc func(depth int, n *Node, table fields.Table, ok bool) error

// Walk visits n and its descendants depth first, resolving each table
// for view on the way.
func (n *Node) Walk(view fields.View, fn WalkFunc) error {
	return n.walk(0, view, fn)
}

func (n *Node) walk(depth int, view fields.View, fn WalkFunc) error {
	t, ok := n.Table(view)
	if err := fn(depth, n, t, ok); err != nil {
		if errors.Is(err, ErrSkip) {
			return nil
		}
		return err
	}
	for _, c := range n.Children {
		if err := c.walk(depth+1, view, fn); err != nil {
			return err
		}
	}
	return nil
}
