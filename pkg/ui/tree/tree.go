// Package tree dumps the structure of converted lines, one node per
// component, for debugging markup.
package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/pterm/pterm"
)

// Node builds the pterm tree of c. Hover values appear as an extra
// child holding their own tree.
func Node(c component.Component) pterm.TreeNode {
	switch n := c.(type) {
	case component.Text:
		return pterm.TreeNode{Text: strconv.Quote(string(n))}
	case *component.Styled:
		if n == nil {
			return pterm.TreeNode{Text: "<nil>"}
		}
		node := pterm.TreeNode{Text: label(n)}
		for _, e := range n.Events {
			if v, ok := e.Action.Value.(component.ComponentValue); ok {
				node.Children = append(node.Children, pterm.TreeNode{
					Text:     e.Type.String() + " value",
					Children: []pterm.TreeNode{Node(v.Component)},
				})
			}
		}
		for _, child := range n.Children {
			node.Children = append(node.Children, Node(child))
		}
		return node
	}
	return pterm.TreeNode{Text: fmt.Sprintf("%T", c)}
}

func label(n *component.Styled) string {
	parts := []string{strconv.Quote(n.Text)}
	if !n.Style.IsInherit() {
		parts = append(parts, "["+n.Style.String()+"]")
	}
	for _, e := range n.Events {
		if _, nested := e.Action.Value.(component.ComponentValue); nested {
			parts = append(parts, e.Type.String()+":"+e.Action.Kind.String())
			continue
		}
		parts = append(parts, e.String())
	}
	return strings.Join(parts, " ")
}

// Lines roots every line under a single "lines" node.
func Lines(lines []*component.Styled) pterm.TreeNode {
	root := pterm.TreeNode{Text: fmt.Sprintf("lines (%d)", len(lines))}
	for i, line := range lines {
		child := Node(line)
		child.Text = fmt.Sprintf("#%d %s", i+1, child.Text)
		root.Children = append(root.Children, child)
	}
	return root
}

// Renderer writes component trees
type Renderer struct {
	output io.Writer
}

// New creates a new tree renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// Sprint renders the tree for lines to a string.
func Sprint(lines []*component.Styled) (string, error) {
	return pterm.DefaultTree.WithRoot(Lines(lines)).Srender()
}

// RenderLines writes the tree of all lines
func (r *Renderer) RenderLines(lines []*component.Styled) error {
	out, err := Sprint(lines)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(r.output, out)
	return err
}

// RenderError renders an error with pterm's error prefix
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, pterm.Error.Sprint(err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
