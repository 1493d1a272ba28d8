package ir

// Kind discriminates the node union.
type Kind int

const (
	RootKind Kind = iota
	DataKind
	CommentKind
)

func (k Kind) String() string {
	switch k {
	case RootKind:
		return "root"
	case DataKind:
		return "data"
	case CommentKind:
		return "comment"
	default:
		return "unknown"
	}
}

// Kinds returns all node kinds.
func Kinds() []Kind {
	return []Kind{RootKind, DataKind, CommentKind}
}

type Node struct {
	Kind     Kind
	Tag      string
	Value    string
	Depth    int
	Parent   *Node
	Children []*Node
}

// Root returns a new document root. The root has depth -1 so that
// every source line, including unindented ones, nests beneath it.
func Root() *Node {
	return &Node{Kind: RootKind, Depth: -1}
}

func Data(tag, value string) *Node {
	return &Node{Kind: DataKind, Tag: tag, Value: value}
}

func Comment(text string) *Node {
	return &Node{Kind: CommentKind, Value: text}
}

func (n *Node) WithDepth(d int) *Node {
	n.Depth = d
	return n
}

// Append attaches child as the last child of n and returns child.
func (n *Node) Append(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Root walks parent links up to the tree root.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Visit runs f over the subtree rooted at n in depth-first order. f is
// called with isPost false before a node's children and true after
// them; returning false from the pre call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Walk runs f over the subtree rooted at n in pre-order.
func (n *Node) Walk(f func(n *Node)) {
	n.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			f(n)
		}
		return true, nil
	})
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

// CloneTo deep-copies n into dst. dst keeps n's parent pointer so a
// clone can stand in for the original in its tree; cloned children
// point at dst.
func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Tag = n.Tag
	dst.Value = n.Value
	dst.Depth = n.Depth
	dst.Parent = n.Parent
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dstC := &Node{}
		c.CloneTo(dstC)
		dstC.Parent = dst
		dst.Children[i] = dstC
	}
	return dst
}
