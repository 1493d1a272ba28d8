package debug

import (
	"fmt"
	"os"

	"github.com/otml-format/go-otml/encode"
	"github.com/otml-format/go-otml/ir"
)

// Tree wraps a node so %s in Logf renders its canonical OTML.
type Tree struct{ *ir.Node }

func (t Tree) String() string {
	s, err := encode.String(t.Node)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", t.Node)
	}
	return s
}

func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = Tree{x}
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
