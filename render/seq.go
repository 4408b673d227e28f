package render

import "github.com/teranos/cgen/style"

// Lines renders its nodes one per line at the current indentation.
// The first node starts wherever the cursor already is.
type Lines []Node

// Render writes each node, preceded (after the first) by a newline and indentation.
func (l Lines) Render(w *Sink, cfg style.Config) error {
	for i, n := range l {
		if i > 0 {
			if err := lineBreak(w, cfg); err != nil {
				return err
			}
		}
		if err := renderNode(w, n, cfg); err != nil {
			return err
		}
	}
	return nil
}

// Join renders its nodes back to back.
type Join []Node

// Render writes each node with nothing in between.
func (j Join) Render(w *Sink, cfg style.Config) error {
	for _, n := range j {
		if err := renderNode(w, n, cfg); err != nil {
			return err
		}
	}
	return nil
}

// Separated renders Items with Sep between neighbours and no line breaks.
type Separated struct {
	Items []Node
	Sep   Node
}

// Sep builds a Separated from a separator and items.
func Sep(sep Node, items ...Node) Separated {
	return Separated{Items: items, Sep: sep}
}

// CommaList separates items with ", ".
func CommaList(items ...Node) Separated {
	return Sep(Text(", "), items...)
}

// Render writes the items and separators.
func (s Separated) Render(w *Sink, cfg style.Config) error {
	for i, n := range s.Items {
		if i > 0 {
			if err := renderNode(w, s.Sep, cfg); err != nil {
				return err
			}
		}
		if err := renderNode(w, n, cfg); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(w *Sink, n Node, cfg style.Config) error {
	if n == nil {
		return nil
	}
	return n.Render(w, cfg)
}

// Texts converts strings into Text nodes.
func Texts(lines ...string) []Node {
	nodes := make([]Node, len(lines))
	for i, l := range lines {
		nodes[i] = Text(l)
	}
	return nodes
}
