package vdom

import (
	"strconv"

	"github.com/vcrobe/nojs-inviewport/dom"
)

// TextTag marks a pure text node with no element wrapper.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	Key        string         // Identity of the component that produced this subtree
	// Ref, when set, receives the DOM element backing this node each time the
	// node is created or patched. Components use it to reach their element.
	Ref func(dom.Element)
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// WithRef sets Ref and returns the node for chaining.
func (v *VNode) WithRef(ref func(dom.Element)) *VNode {
	v.Ref = ref
	return v
}

// WithKey sets Key and returns the node for chaining.
func (v *VNode) WithKey(key string) *VNode {
	v.Key = key
	return v
}

// Text creates a text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text and attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1-6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	level = min(max(level, 1), 6)
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Div creates a <div> VNode with the given children and attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// List creates a <ul> VNode with the given items.
func List(attrs map[string]any, items ...*VNode) *VNode {
	return NewVNode("ul", attrs, items, "")
}

// ListItem creates an <li> VNode holding text.
func ListItem(text string, attrs map[string]any) *VNode {
	return NewVNode("li", attrs, nil, text)
}

// Walk visits n and its descendants depth-first, passing each node's path
// (child indexes from the root joined by "/", "" for the root).
func Walk(n *VNode, fn func(path string, node *VNode)) {
	walk(n, "", fn)
}

func walk(n *VNode, path string, fn func(string, *VNode)) {
	if n == nil {
		return
	}
	fn(path, n)
	for i, child := range n.Children {
		p := strconv.Itoa(i)
		if path != "" {
			p = path + "/" + p
		}
		walk(child, p, fn)
	}
}
