package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/five82/docshell/internal/app"
	"github.com/five82/docshell/internal/logtail"
)

func newLogsCmd(flags *globalFlags) *cobra.Command {
	var (
		lines int
		level string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the docshell log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			minLevel, err := logrus.ParseLevel(level)
			if err != nil {
				return err
			}
			cfg, err := app.LoadConfig(flags.options())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			entries, err := logtail.Read(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no log entries in %s\n", cfg.LogFile)
				return nil
			}
			printLogLines(cmd.OutOrStdout(), logtail.Filter(entries, minLevel))
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 100, "number of lines to read, 0 for all")
	cmd.Flags().StringVar(&level, "level", "trace", "minimum level to show")
	return cmd
}

var levelColors = map[logrus.Level]*color.Color{
	logrus.PanicLevel: color.New(color.FgRed, color.Bold),
	logrus.FatalLevel: color.New(color.FgRed, color.Bold),
	logrus.ErrorLevel: color.New(color.FgRed),
	logrus.WarnLevel:  color.New(color.FgYellow),
	logrus.InfoLevel:  color.New(color.FgGreen),
	logrus.DebugLevel: color.New(color.FgCyan),
	logrus.TraceLevel: color.New(color.Faint),
}

func printLogLines(w io.Writer, lines []logtail.Line) {
	for _, l := range lines {
		c, ok := levelColors[l.Level]
		if !l.HasLevel || !ok {
			_, _ = fmt.Fprintln(w, l.Text)
			continue
		}
		_, _ = fmt.Fprintln(w, c.Sprint(l.Text))
	}
}
