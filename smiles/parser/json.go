package parser

import "encoding/json"

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Text     string      `json:"text,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonError struct {
	Kind     string   `json:"kind"`
	Message  string   `json:"message"`
	Offset   int      `json:"offset"`
	Expected []string `json:"expected,omitempty"`
	Got      string   `json:"got,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON(true))
}

// MarshalJSONWithoutSpans renders the tree without source spans.
func (n *Node) MarshalJSONWithoutSpans() ([]byte, error) {
	return json.Marshal(n.toJSON(false))
}

func (n *Node) toJSON(spans bool) *jsonNode {
	jn := &jsonNode{
		Kind: n.Kind.String(),
		Text: n.Text,
	}

	if spans && !n.IsAbsent() {
		jn.Span = &jsonSpan{Start: n.Span.Start, End: n.Span.End}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = child.toJSON(spans)
		}
	}

	return jn
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(&jsonError{
		Kind:     e.Kind.String(),
		Message:  e.Message,
		Offset:   e.Offset,
		Expected: e.Expected,
		Got:      e.Got,
	})
}
