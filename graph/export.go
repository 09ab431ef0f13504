// Package graph writes a syntax tree as a directed graph: one edge statement
// per parent/child pair, then one label statement per node.
//
// Node ids are handed out in traversal order during the edge pass and reused
// by the label pass, so exporting the same tree twice gives the same bytes.
package graph

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/astdot/ast"
	"github.com/pontaoski/astdot/errors"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/astdot", "graph")

// ErrorText is the label of a function whose name is not an identifier.
const ErrorText = "ERRO!!!"

type Stats struct {
	Nodes  int
	Edges  int
	Labels int
}

// Errors is every problem recorded while exporting with ContinueOnError.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

type Exporter struct {
	cfg   Config
	w     *bufio.Writer
	ids   map[ast.Node]int
	stats Stats
	errs  Errors
}

func NewExporter(cfg Config) *Exporter {
	return &Exporter{cfg: cfg}
}

// Export renders root and everything reachable from it.
func Export(root *ast.Function, cfg Config) (string, error) {
	var b strings.Builder
	err := NewExporter(cfg).Export(&b, root)
	return b.String(), err
}

// Stats describes the last Export call.
func (e *Exporter) Stats() Stats {
	return e.stats
}

func (e *Exporter) Export(w io.Writer, root *ast.Function) error {
	e.w = bufio.NewWriter(w)
	e.ids = make(map[ast.Node]int)
	e.stats = Stats{}
	e.errs = nil

	if e.cfg.Wrap {
		e.w.WriteString("digraph {\n")
	}

	if root != nil {
		if err := e.edges(nil, root); err != nil {
			e.w.Flush()
			return err
		}
		if err := e.labels(root); err != nil {
			e.w.Flush()
			return err
		}
	}

	if e.cfg.Wrap {
		e.w.WriteString("}\n")
	}

	if err := e.w.Flush(); err != nil {
		return tracerr.Wrap(err)
	}

	plog.Debugf("exported %d nodes, %d edges, %d labels", e.stats.Nodes, e.stats.Edges, e.stats.Labels)

	if len(e.errs) > 0 {
		return e.errs
	}
	return nil
}

// fail either stops the export with err or, with ContinueOnError, writes
// a diagnostic line in its place and carries on.
func (e *Exporter) fail(err error) error {
	if !e.cfg.ContinueOnError {
		return tracerr.Wrap(err)
	}

	plog.Warningf("%s", err)
	e.errs = append(e.errs, err)
	fmt.Fprintf(e.w, "// %s\n", err)
	return nil
}

func (e *Exporter) edges(parent, n ast.Node) error {
	if _, seen := e.ids[n]; seen {
		return tracerr.Wrap(errors.AliasedNode{Node: fmt.Sprintf("%T", n)})
	}
	id := e.stats.Nodes
	e.ids[n] = id
	e.stats.Nodes++

	if parent != nil {
		if e.cfg.Wrap {
			fmt.Fprintf(e.w, "%d -> %d\n", e.ids[parent], id)
		} else {
			fmt.Fprintf(e.w, "%d, %d\n", e.ids[parent], id)
		}
		e.stats.Edges++
	}

	kids, err := ast.Children(n)
	if err != nil {
		return e.fail(err)
	}

	for _, kid := range kids {
		if err := e.edges(n, kid); err != nil {
			return err
		}
	}

	return nil
}

func (e *Exporter) labels(n ast.Node) error {
	id, ok := e.ids[n]
	if !ok {
		return tracerr.Errorf("graph: %T was not numbered by the edge pass", n)
	}

	text, emit, err := e.label(n)
	if err != nil {
		if err := e.fail(err); err != nil {
			return err
		}
	} else if emit {
		if e.cfg.Wrap {
			text = dotEscaper.Replace(text)
		}
		fmt.Fprintf(e.w, "%d [label=\"%s\"];\n", id, text)
		e.stats.Labels++
	}

	kids, err := ast.Children(n)
	if err != nil {
		// already reported by the edge pass
		return nil
	}

	for _, kid := range kids {
		if err := e.labels(kid); err != nil {
			return err
		}
	}

	return nil
}
