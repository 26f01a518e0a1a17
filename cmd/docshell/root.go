package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/docshell/internal/app"
)

// globalFlags are shared by every subcommand that reads the config.
type globalFlags struct {
	configPath string
	docsDir    string
	topicsFile string
}

func (g *globalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (default ~/.config/docshell/config.toml)")
	cmd.PersistentFlags().StringVar(&g.docsDir, "docs", "", "docs directory (overrides docs_dir)")
	cmd.PersistentFlags().StringVar(&g.topicsFile, "topics", "", "topic file (overrides topics_file)")
}

func (g *globalFlags) options() app.Options {
	return app.Options{
		ConfigPath: g.configPath,
		DocsDir:    g.docsDir,
		TopicsFile: g.topicsFile,
	}
}

func newRootCmd() *cobra.Command {
	var (
		flags     globalFlags
		themeName string
		prefsPath string
		delay     time.Duration
		noWatch   bool
	)

	cmd := &cobra.Command{
		Use:   "docshell",
		Short: "Browse documentation in the terminal",
		Long: `docshell shows a documentation site in the terminal: a sidebar of topics
grouped by section, a search filter and the selected page.

Without a docs directory it opens its own built-in handbook.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags.options()
			opts.ThemeName = themeName
			opts.PrefsPath = prefsPath
			opts.NoWatch = noWatch
			if cmd.Flags().Changed("delay") {
				opts.Delay = &delay
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&themeName, "theme", "", "color theme (Dracula or Slate)")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/docshell/prefs.toml)")
	cmd.Flags().DurationVar(&delay, "delay", 0, "loading placeholder delay, 0 to load directly")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload pages when they change on disk")

	cmd.AddCommand(newTopicsCmd(&flags))
	cmd.AddCommand(newLogsCmd(&flags))
	cmd.AddCommand(newVersionCmd())
	return cmd
}
