package ir

import (
	"encoding/json"
)

// The JSON form leaves out Parent (it is recomputed on unmarshal) and
// Depth (informational only, recomputed by the parser).
type irBase struct {
	Kind     Kind    `json:"kind"`
	Tag      string  `json:"tag,omitempty"`
	Value    string  `json:"value,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(d []byte) error {
	var s string
	if err := json.Unmarshal(d, &s); err != nil {
		return err
	}
	switch s {
	case "root":
		*k = RootKind
	case "comment":
		*k = CommentKind
	default:
		*k = DataKind
	}
	return nil
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(&irBase{
		Kind:     n.Kind,
		Tag:      n.Tag,
		Value:    n.Value,
		Children: n.Children,
	})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Kind = tmp.Kind
	n.Tag = tmp.Tag
	n.Value = tmp.Value
	n.Children = tmp.Children
	n.Depth = 0
	if n.Kind == RootKind {
		n.Depth = -1
	}
	for _, c := range n.Children {
		c.Parent = n
	}
	return nil
}

// ToJSON renders the subtree rooted at n in the IR JSON form.
func ToJSON(n *Node) ([]byte, error) {
	return json.Marshal(n)
}

// FromJSON reads a tree in the IR JSON form.
func FromJSON(d []byte) (*Node, error) {
	n := &Node{}
	if err := json.Unmarshal(d, n); err != nil {
		return nil, err
	}
	return n, nil
}
