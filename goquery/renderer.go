// Package goquery renders the navigation index as an HTML tree and applies
// location highlighting to it.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/index"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names and attributes used in the rendered tree.
const (
	TreeClass   = "index_tree"
	MarkedClass = "marked"
	HoverClass  = "hoverbox"
	IconPrefix  = "index_icon_"
	BulletSrc   = "css/pixel.png"
	EntryAttr   = "data-entry"
	hiddenStyle = "display: none"
)

var _ docindex.Renderer = (*Renderer)(nil)

// Renderer owns the HTML tree of an index. Each entry is rendered as a
// bullet image, a label span and, when it has children, a list of child
// items.
type Renderer struct {
	doc      *goquery.Document
	bullets  []*goquery.Selection
	labels   []*goquery.Selection
	children []*goquery.Selection // nil for leaves

	// collapsed records which child lists StyleBullet hid initially.
	collapsed []bool
}

// NewRenderer renders idx into a div with the given id. Labels hold the
// entries' display markup as produced by the index formatter.
func NewRenderer(idx *index.Index, id string) *Renderer {
	container := element(atom.Div,
		html.Attribute{Key: "id", Val: id},
		html.Attribute{Key: "class", Val: TreeClass},
	)

	n := idx.Len()
	bulletNodes := make([]*html.Node, n)
	labelNodes := make([]*html.Node, n)
	childNodes := make([]*html.Node, n)

	var render func(parent *html.Node, e *docindex.Entry)
	render = func(parent *html.Node, e *docindex.Entry) {
		entryID := html.Attribute{Key: EntryAttr, Val: strconv.Itoa(e.ID)}

		bullet := element(atom.Img, html.Attribute{Key: "src", Val: BulletSrc}, entryID)
		parent.AppendChild(bullet)
		bulletNodes[e.ID] = bullet

		label := element(atom.Span, entryID)
		appendMarkup(label, e.Display)
		parent.AppendChild(label)
		labelNodes[e.ID] = label

		if !e.HasChildren() {
			return
		}
		list := element(atom.Ul)
		parent.AppendChild(list)
		childNodes[e.ID] = list
		for _, child := range idx.ChildrenOf(e) {
			li := element(atom.Li)
			list.AppendChild(li)
			render(li, child)
		}
	}
	render(container, idx.Root())

	doc := goquery.NewDocumentFromNode(container)
	r := &Renderer{
		doc:       doc,
		bullets:   make([]*goquery.Selection, n),
		labels:    make([]*goquery.Selection, n),
		children:  make([]*goquery.Selection, n),
		collapsed: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		r.bullets[i] = doc.FindNodes(bulletNodes[i])
		r.labels[i] = doc.FindNodes(labelNodes[i])
		if childNodes[i] != nil {
			r.children[i] = doc.FindNodes(childNodes[i])
		}
	}
	return r
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// appendMarkup parses markup as a fragment in the context of parent and
// appends the resulting nodes. Unparseable markup is appended as text.
func appendMarkup(parent *html.Node, markup string) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: markup})
		return
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

// LinkFormatter renders a value as its title, wrapped in a link when the
// value has one. Titles are markup and are inserted as-is; only the link is
// escaped.
func LinkFormatter(v *docindex.Value) string {
	if v == nil {
		return ""
	}
	if v.Link == "" {
		return v.Title
	}
	return `<a href="` + html.EscapeString(v.Link) + `">` + v.Title + `</a>`
}

// Style adds the value's type as a class of the entry's label.
// It is meant to be registered as the index styler.
func (r *Renderer) Style(e *docindex.Entry, n *docindex.Node) {
	if n.Value == nil || n.Value.Type == "" {
		return
	}
	r.labels[e.ID].AddClass(n.Value.Type)
}

// StyleBullet decorates typed entries' bullets with a type icon class. Entries
// with children get a clickable bullet (see Toggle), and their children start
// collapsed below the root. It is meant to be registered as the index bullet
// styler.
func (r *Renderer) StyleBullet(e *docindex.Entry, n *docindex.Node) {
	if n.Value == nil || n.Value.Type == "" {
		return
	}
	bullet := r.bullets[e.ID]
	bullet.AddClass(IconPrefix + n.Value.Type)
	bullet.SetAttr("width", "16")
	bullet.SetAttr("height", "16")

	children := r.children[e.ID]
	if children == nil {
		return
	}
	bullet.AddClass(HoverClass)
	if e.Depth > 0 {
		children.SetAttr("style", hiddenStyle)
		r.collapsed[e.ID] = true
	}
}

// Toggle flips the visibility of the entry's children, as a click on its
// bullet would. It is a no-op for leaves.
func (r *Renderer) Toggle(e *docindex.Entry) {
	children := r.children[e.ID]
	if children == nil {
		return
	}
	if r.IsHidden(e) {
		children.RemoveAttr("style")
	} else {
		children.SetAttr("style", hiddenStyle)
	}
}

// Mark adds the marked class to the entry's label.
func (r *Renderer) Mark(e *docindex.Entry) {
	r.labels[e.ID].AddClass(MarkedClass)
}

// Unmark removes the marked class from the entry's label.
func (r *Renderer) Unmark(e *docindex.Entry) {
	r.labels[e.ID].RemoveClass(MarkedClass)
}

// Reveal shows the entry's children.
func (r *Renderer) Reveal(e *docindex.Entry) {
	if children := r.children[e.ID]; children != nil {
		children.RemoveAttr("style")
	}
}

// Reset clears every mark and returns each child list to the visibility
// StyleBullet gave it, undoing Reveal and Toggle.
func (r *Renderer) Reset() {
	for id, label := range r.labels {
		label.RemoveClass(MarkedClass)
		children := r.children[id]
		if children == nil {
			continue
		}
		if r.collapsed[id] {
			children.SetAttr("style", hiddenStyle)
		} else {
			children.RemoveAttr("style")
		}
	}
}

// IsMarked reports whether the entry's label is marked.
func (r *Renderer) IsMarked(e *docindex.Entry) bool {
	return r.labels[e.ID].HasClass(MarkedClass)
}

// IsHidden reports whether the entry's children are hidden. Leaves are
// never hidden.
func (r *Renderer) IsHidden(e *docindex.Entry) bool {
	children := r.children[e.ID]
	if children == nil {
		return false
	}
	style, _ := children.Attr("style")
	return strings.Contains(style, "display: none")
}

// Label returns the entry's label selection.
func (r *Renderer) Label(e *docindex.Entry) *goquery.Selection {
	return r.labels[e.ID]
}

// Bullet returns the entry's bullet selection.
func (r *Renderer) Bullet(e *docindex.Entry) *goquery.Selection {
	return r.bullets[e.ID]
}

// HTML returns the rendered tree.
func (r *Renderer) HTML() (string, error) {
	return goquery.OuterHtml(r.doc.Selection)
}
