package lsp

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/smiles/smiles/parser"
)

func TestAnalyze(t *testing.T) {
	doc := Analyze("mols.smi", []byte("CCO ethanol\r\nC(C\n\n[Xx]\n"))
	if len(doc.Lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(doc.Lines))
	}
	if doc.Lines[0].Tree == nil || doc.Lines[0].Text != "CCO ethanol" {
		t.Errorf("line 0 = %+v", doc.Lines[0])
	}
	if doc.Lines[2].Tree == nil {
		t.Error("empty line should parse as an empty expression")
	}
	errs := doc.Errors()
	if len(errs) != 2 || errs[0].Number != 1 || errs[1].Number != 3 {
		t.Fatalf("Errors() = %+v", errs)
	}
}

func TestDiagnostics(t *testing.T) {
	doc := Analyze("mols.smi", []byte("CC\n[Xx]\nC(C\n[C"))
	diags := Diagnostics(doc)
	if len(diags) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(diags))
	}

	tests := []struct {
		line       protocol.UInteger
		start, end protocol.UInteger
		message    string
	}{
		{1, 1, 3, "Expected one of H, He"},
		{2, 1, 2, "Expected end of expression"},
		{3, 2, 2, "Expected ], got end of input"},
	}
	for i, tt := range tests {
		d := diags[i]
		if d.Range.Start.Line != tt.line || d.Range.End.Line != tt.line {
			t.Errorf("diagnostic %d on line %d, want %d", i, d.Range.Start.Line, tt.line)
		}
		if d.Range.Start.Character != tt.start || d.Range.End.Character != tt.end {
			t.Errorf("diagnostic %d range %d-%d, want %d-%d", i,
				d.Range.Start.Character, d.Range.End.Character, tt.start, tt.end)
		}
		if !strings.HasPrefix(d.Message, tt.message) {
			t.Errorf("diagnostic %d message %q, want prefix %q", i, d.Message, tt.message)
		}
		if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
			t.Errorf("diagnostic %d severity = %v", i, d.Severity)
		}
	}

	if got := Diagnostics(Analyze("ok.smi", []byte("CC\n"))); got == nil || len(got) != 0 {
		t.Errorf("clean document diagnostics = %#v, want empty slice", got)
	}
}

func TestReport(t *testing.T) {
	doc := Analyze("mols.smi", []byte("CC\nC(C\n"))
	want := "mols.smi:2:2: Expected end of expression\n" +
		"Failed to parse: Expected end of expression\n" +
		"C(C\n" +
		" ^\n"
	if got := Report(doc); got != want {
		t.Errorf("Report() =\n%s\nwant\n%s", got, want)
	}
}

func TestNodeAtAndHover(t *testing.T) {
	doc := Analyze("mols.smi", []byte("CC\nC[13CH3]\n"))
	nodes := doc.NodeAt(1, 4)
	if len(nodes) == 0 {
		t.Fatal("NodeAt returned nothing")
	}
	leaf := nodes[len(nodes)-1]
	if leaf.Kind != parser.KindElementSymbol || leaf.Text != "C" {
		t.Errorf("leaf = %s %q", leaf.Kind, leaf.Text)
	}
	hover := HoverText(nodes)
	if !strings.HasPrefix(hover, "**ElementSymbol** `C`") {
		t.Errorf("hover = %q", hover)
	}
	if !strings.HasSuffix(hover, "Smiles > Chain > Chain > BranchedAtom > BracketAtom > ElementSymbol") {
		t.Errorf("hover path = %q", hover)
	}

	if doc.NodeAt(5, 0) != nil {
		t.Error("NodeAt past the last line should be nil")
	}
	if doc.NodeAt(0, 10) != nil {
		t.Error("NodeAt past the end of a line should be nil")
	}
}

func TestWorkspaceUpdate(t *testing.T) {
	w := New(t.TempDir(), parser.WithMaxDepth(2))
	var seen []string
	w.OnUpdate(func(doc *Document) {
		seen = append(seen, doc.Path)
	})

	doc := w.UpdateFile("a.smi", []byte("C(C(C(C)))\n"))
	if len(doc.Errors()) != 1 || doc.Errors()[0].Err.Kind != parser.ErrLimit {
		t.Errorf("depth limit not applied: %+v", doc.Errors())
	}
	if w.GetFile("a.smi") != doc {
		t.Error("GetFile did not return the analyzed document")
	}
	if len(seen) != 1 || seen[0] != "a.smi" {
		t.Errorf("listener saw %v", seen)
	}

	w.RemoveFile("a.smi")
	if w.GetFile("a.smi") != nil {
		t.Error("RemoveFile kept the document")
	}
}

func TestWorkspaceUpdateReusesLines(t *testing.T) {
	w := New(t.TempDir())
	first := w.UpdateFile("a.smi", []byte("CCO\nC(C\nc1ccccc1\n"))
	if first.Parsed != 3 {
		t.Fatalf("first analysis parsed %d lines, want 3", first.Parsed)
	}

	second := w.UpdateFile("a.smi", []byte("CCO\nC(C)\nc1ccccc1\nCCO\n"))
	if second.Parsed != 1 {
		t.Errorf("update parsed %d lines, want only the edited one", second.Parsed)
	}
	if second.Lines[0].Tree != first.Lines[0].Tree {
		t.Error("unchanged line 0 was parsed again")
	}
	if second.Lines[2].Tree != first.Lines[2].Tree {
		t.Error("unchanged line 2 was parsed again")
	}
	if second.Lines[3].Tree != first.Lines[0].Tree || second.Lines[3].Number != 3 {
		t.Errorf("repeated line = %+v", second.Lines[3])
	}
	if len(second.Errors()) != 0 {
		t.Errorf("edited line still reports %+v", second.Errors())
	}

	// A fresh Analyze has no previous version to reuse.
	if doc := Analyze("a.smi", second.Content); doc.Parsed != 4 {
		t.Errorf("Analyze parsed %d lines, want 4", doc.Parsed)
	}
}

func TestScanAllMatchesWatcher(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.smi":               "C\n",
		"b.smiles":            "CC\n",
		"notes.txt":           "C(C\n",
		"sub/c.smi":           "CCC\n",
		".hidden/d.smi":       "CCCC\n",
		"sub/.cache/e.smiles": "O\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{
		filepath.Join(dir, "a.smi"),
		filepath.Join(dir, "b.smiles"),
		filepath.Join(dir, "sub/c.smi"),
	}

	scanned := New(dir)
	if err := scanned.ScanAll(); err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	got := scanned.Paths()
	sort.Strings(got)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ScanAll found %v, want %v", got, want)
	}

	watched := New(dir)
	updated, removed := NewFileWatcher(watched).scan()
	if strings.Join(updated, ",") != strings.Join(want, ",") || len(removed) != 0 {
		t.Errorf("scan() = %v, %v, want %v", updated, removed, want)
	}
}

func TestFileWatcherScan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mols.smi")
	if err := os.WriteFile(path, []byte("CC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("C(C\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(dir)
	fw := NewFileWatcher(w)
	fw.scan()
	if doc := w.GetFile(path); doc == nil || len(doc.Errors()) != 0 {
		t.Fatalf("document after first scan = %+v", doc)
	}
	if updated, _ := fw.scan(); len(updated) != 0 {
		t.Errorf("unchanged file re-analyzed: %v", updated)
	}
	if len(w.Paths()) != 1 {
		t.Errorf("Paths() = %v, want only the .smi file", w.Paths())
	}

	later := time.Now().Add(2 * time.Second)
	if err := os.WriteFile(path, []byte("C(C\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	fw.scan()
	if doc := w.GetFile(path); doc == nil || len(doc.Errors()) != 1 {
		t.Fatalf("document after change = %+v", doc)
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, removed := fw.scan(); len(removed) != 1 || removed[0] != path {
		t.Errorf("scan() removed %v, want %s", removed, path)
	}
	if w.GetFile(path) != nil {
		t.Error("removed file is still in the workspace")
	}
}

func TestFileWatcherSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("[Na+].[Cl-]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := New(path)
	NewFileWatcher(w).scan()
	if w.GetFile(path) == nil {
		t.Error("a single-file root should be watched regardless of extension")
	}
}

func TestURIConversion(t *testing.T) {
	path, err := uriToPath("file:///tmp/mols.smi")
	if err != nil || path != "/tmp/mols.smi" {
		t.Errorf("uriToPath() = %q, %v", path, err)
	}
	if got := pathToURI("/tmp/mols.smi"); got != "file:///tmp/mols.smi" {
		t.Errorf("pathToURI() = %q", got)
	}
	if got := pathToURI("jdk:thing"); got == "" {
		t.Error("pathToURI() returned empty string")
	}
}

func TestEnvOptions(t *testing.T) {
	t.Setenv(MaxDepthEnv, "3")
	opts := envOptions()
	if len(opts) != 1 {
		t.Fatalf("envOptions() returned %d options, want 1", len(opts))
	}
	p := parser.New(opts...)
	if _, err := p.Parse("C(C(C(C(C))))"); err == nil {
		t.Error("depth limit from environment not applied")
	}

	t.Setenv(MaxDepthEnv, "deep")
	if opts := envOptions(); len(opts) != 0 {
		t.Errorf("invalid value produced %d options", len(opts))
	}
}
