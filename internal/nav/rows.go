package nav

import (
	"strings"

	"github.com/five82/docshell/internal/topics"
)

// RowKind distinguishes section headers from topic entries.
type RowKind int

const (
	RowHeader RowKind = iota
	RowTopic
)

// Row is one line of the rendered topic list.
type Row struct {
	Kind    RowKind
	Label   string
	Locator string // empty for headers
	Section int
	Visible bool
}

// IsTopic reports whether the row is a selectable topic.
func (r Row) IsTopic() bool {
	return r.Kind == RowTopic
}

func buildRows(tree topics.Tree) []Row {
	rows := make([]Row, 0, len(tree.Sections)+tree.Len())
	for i, s := range tree.Sections {
		rows = append(rows, Row{Kind: RowHeader, Label: s.Header, Section: i, Visible: true})
		for _, t := range s.Topics {
			rows = append(rows, Row{
				Kind:    RowTopic,
				Label:   t.Name,
				Locator: t.File,
				Section: i,
				Visible: true,
			})
		}
	}
	return rows
}

// Match reports whether name contains query, ignoring case. An empty query
// matches every name.
func Match(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}
