// Package inspect prints placement trees for terminals.
package inspect

import (
	"fmt"
	"strings"

	"waterlayout/pkg/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	colorName    = lipgloss.Color("#BD93F9")
	colorFrame   = lipgloss.Color("#8BE9FD")
	colorContext = lipgloss.Color("#FFB86C")
	colorMuted   = lipgloss.Color("#6272A4")
)

// Printer renders placements as a tree, one node per view.
type Printer struct {
	name    lipgloss.Style
	frame   lipgloss.Style
	context lipgloss.Style
	branch  lipgloss.Style
	// Contexts shows every node's safe-area context, not only the ones
	// that differ from their parent's.
	Contexts bool
}

// NewPrinter returns a printer; color selects styled or plain output.
func NewPrinter(color bool) *Printer {
	p := &Printer{
		name:    lipgloss.NewStyle(),
		frame:   lipgloss.NewStyle(),
		context: lipgloss.NewStyle(),
		branch:  lipgloss.NewStyle(),
	}
	if color {
		p.name = p.name.Foreground(colorName).Bold(true)
		p.frame = p.frame.Foreground(colorFrame)
		p.context = p.context.Foreground(colorContext).Italic(true)
		p.branch = p.branch.Foreground(colorMuted)
	}
	return p
}

// Name returns the label used for a placement: its layout for containers,
// its view otherwise.
func Name(p layout.Placement) string {
	switch {
	case p.Layout != nil:
		return fmt.Sprint(p.Layout)
	case p.View == nil:
		return "empty"
	}
	if s, ok := p.View.(fmt.Stringer); ok {
		return s.String()
	}
	name := fmt.Sprintf("%T", p.View)
	return name[strings.LastIndex(name, ".")+1:]
}

func (pr *Printer) label(p layout.Placement, parent *layout.LayoutContext) string {
	parts := []string{pr.name.Render(Name(p)), pr.frame.Render(p.Frame.String())}
	inherited := layout.LayoutContext{}
	if parent != nil {
		inherited = *parent
	}
	if pr.Contexts || p.Context != inherited {
		parts = append(parts, pr.context.Render(p.Context.String()))
	}
	return strings.Join(parts, " ")
}

// Tree builds the lipgloss tree for p.
func (pr *Printer) Tree(p layout.Placement) *tree.Tree {
	t := pr.subtree(p, nil)
	return t.Enumerator(tree.RoundedEnumerator).EnumeratorStyle(pr.branch)
}

func (pr *Printer) subtree(p layout.Placement, parent *layout.LayoutContext) *tree.Tree {
	t := tree.Root(pr.label(p, parent))
	for _, child := range p.Children {
		if len(child.Children) == 0 {
			t.Child(pr.label(child, &p.Context))
			continue
		}
		t.Child(pr.subtree(child, &p.Context))
	}
	return t
}

// Render returns the tree as text.
func (pr *Printer) Render(p layout.Placement) string {
	return pr.Tree(p).String()
}

// Dump renders p without color.
func Dump(p layout.Placement) string {
	return NewPrinter(false).Render(p)
}
