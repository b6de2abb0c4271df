// Package lsp serves diagnostics and hovers for files holding one
// expression per line.
package lsp

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/smiles/smiles/parser"
)

// SourceExtensions lists the file extensions scanned in a workspace.
var SourceExtensions = []string{".smi", ".smiles"}

func isSource(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// walkSources calls fn for every source file under root, skipping hidden
// directories. A root that is itself a file is reported whatever its
// extension.
func walkSources(root string, fn func(path string, info os.FileInfo)) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root || isSource(path) {
			fn(path, info)
		}
		return nil
	})
}

// Line is one parsed line of a document. Exactly one of Tree and Err is
// set.
type Line struct {
	Number int
	Text   string
	Tree   *parser.Node
	Err    *parser.Error
}

type Document struct {
	Path    string
	Content []byte
	Lines   []Line
	// Parsed counts the lines run through the parser. Lines whose text is
	// unchanged from the previous version keep their earlier result.
	Parsed int
}

// Analyze parses every line of content as an expression. Trailing carriage
// returns are not part of the expression.
func Analyze(path string, content []byte, opts ...parser.Option) *Document {
	return reanalyze(nil, path, content, parser.New(opts...))
}

// reanalyze is Analyze reusing the results of prev for lines with the same
// text. prev may be nil.
func reanalyze(prev *Document, path string, content []byte, p *parser.Parser) *Document {
	doc := &Document{Path: path, Content: content}
	text := string(content)
	if text == "" {
		return doc
	}
	known := make(map[string]Line)
	if prev != nil {
		for _, l := range prev.Lines {
			if _, ok := known[l.Text]; !ok {
				known[l.Text] = l
			}
		}
	}
	for i, raw := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		line := Line{Number: i, Text: strings.TrimSuffix(raw, "\r")}
		if old, ok := known[line.Text]; ok {
			line.Tree, line.Err = old.Tree, old.Err
			doc.Lines = append(doc.Lines, line)
			continue
		}
		doc.Parsed++
		tree, err := p.Parse(line.Text)
		if err != nil {
			var perr *parser.Error
			if !errors.As(err, &perr) {
				perr = &parser.Error{Message: err.Error()}
			}
			line.Err = perr
		} else {
			line.Tree = tree
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

// Errors returns the lines that failed to parse.
func (d *Document) Errors() []Line {
	var out []Line
	for _, l := range d.Lines {
		if l.Err != nil {
			out = append(out, l)
		}
	}
	return out
}

// NodeAt returns the innermost node under the given zero-based line and
// byte column, with its ancestors from the root down.
func (d *Document) NodeAt(line, column int) []*parser.Node {
	if line < 0 || line >= len(d.Lines) || d.Lines[line].Tree == nil {
		return nil
	}
	return pathTo(d.Lines[line].Tree, column)
}

func pathTo(n *parser.Node, offset int) []*parser.Node {
	if n.IsAbsent() || offset < n.Span.Start || offset >= n.Span.End {
		return nil
	}
	path := []*parser.Node{n}
	for _, child := range n.Children {
		if sub := pathTo(child, offset); sub != nil {
			return append(path, sub...)
		}
	}
	return path
}

// Workspace holds the analyzed documents under a root directory.
type Workspace struct {
	mu       sync.RWMutex
	rootDir  string
	docs     map[string]*Document
	parser   *parser.Parser
	listener func(*Document)
}

func New(rootDir string, opts ...parser.Option) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		docs:    make(map[string]*Document),
		parser:  parser.New(opts...),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// OnUpdate registers fn to be called after a document is analyzed. It
// replaces any earlier listener.
func (w *Workspace) OnUpdate(fn func(*Document)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listener = fn
}

func (w *Workspace) ScanAll() error {
	return walkSources(w.rootDir, func(path string, _ os.FileInfo) {
		if err := w.ScanFile(path); err != nil {
			log.Warningf("%s: %v", path, err)
		}
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile re-analyzes path with new content. Only lines that differ from
// the stored version are parsed again.
func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	w.mu.RLock()
	prev := w.docs[path]
	w.mu.RUnlock()

	doc := reanalyze(prev, path, content, w.parser)

	w.mu.Lock()
	w.docs[path] = doc
	listener := w.listener
	w.mu.Unlock()

	if listener != nil {
		listener(doc)
	}
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[path]
}

// Paths returns the paths of all known documents.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.docs))
	for path := range w.docs {
		paths = append(paths, path)
	}
	return paths
}
