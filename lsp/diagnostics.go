package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/smiles/smiles/parser"
)

const diagnosticSource = "smiles"

// Diagnostics converts the failed lines of doc to protocol diagnostics.
// Columns are byte offsets; expressions are ASCII.
func Diagnostics(doc *Document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, line := range doc.Errors() {
		start := min(line.Err.Offset, len(line.Text))
		end := min(start+max(len(line.Err.Got), 1), len(line.Text))
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(line.Number), Character: protocol.UInteger(start)},
				End:   protocol.Position{Line: protocol.UInteger(line.Number), Character: protocol.UInteger(end)},
			},
			Severity: severityPtr(protocol.DiagnosticSeverityError),
			Source:   stringPtr(diagnosticSource),
			Message:  line.Err.Message,
		})
	}
	return diagnostics
}

// Report formats the failed lines of doc as "path:line:col: message"
// records followed by the caret rendering.
func Report(doc *Document) string {
	var sb strings.Builder
	for _, line := range doc.Errors() {
		fmt.Fprintf(&sb, "%s:%d:%d: %s\n", doc.Path, line.Number+1, line.Err.Offset+1, line.Err.Message)
		sb.WriteString(line.Err.Render(line.Text))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// HoverText describes the node under a position as markdown.
func HoverText(path []*parser.Node) string {
	if len(path) == 0 {
		return ""
	}
	n := path[len(path)-1]
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**", n.Kind)
	if n.Text != "" {
		fmt.Fprintf(&sb, " `%s`", n.Text)
	}
	sb.WriteString("\n\n")
	kinds := make([]string, len(path))
	for i, p := range path {
		kinds[i] = p.Kind.String()
	}
	sb.WriteString(strings.Join(kinds, " > "))
	return sb.String()
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func stringPtr(s string) *string {
	return &s
}
