package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/five82/docshell/internal/app"
	"github.com/five82/docshell/internal/nav"
	"github.com/five82/docshell/internal/topics"
)

func newTopicsCmd(flags *globalFlags) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Print the topic tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(flags.options())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			src, err := app.ResolveSources(cfg)
			if err != nil {
				return fmt.Errorf("load topics: %w", err)
			}
			if !printTopics(cmd.OutOrStdout(), src.Tree, filter) {
				return fmt.Errorf("no topics match %q", filter)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only list topics whose name contains this text")
	return cmd
}

// printTopics writes the tree as a table, hiding sections without a
// matching topic. It reports whether any topic matched.
func printTopics(w io.Writer, tree topics.Tree, filter string) bool {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	found := false
	for _, s := range tree.Sections {
		var rows [][2]string
		for _, t := range s.Topics {
			if nav.Match(t.Name, filter) {
				rows = append(rows, [2]string{t.Name, t.File})
			}
		}
		if len(rows) == 0 {
			continue
		}
		if found {
			tbl.AddRow("", "")
		}
		found = true
		tbl.AddRow(bold.Sprint(s.Header), "")
		for _, r := range rows {
			tbl.AddRow("  "+r[0], faint.Sprint(r[1]))
		}
	}
	if found {
		_, _ = fmt.Fprintln(w, tbl)
	}
	return found
}
