package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Style definitions using lipgloss
var (
	// Theme colors
	primaryColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	infoColor    = lipgloss.Color("#3B82F6")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(infoColor).
			Padding(0, 1)
)

// displayHeader prints the application banner before interactive flows
func displayHeader() {
	banner := "🚀 " + titleStyle.Render(ClientName) + " - " + T("root_short")
	fmt.Println(panelStyle.Render(banner))
}

// NewRootCmd creates the root command with Cobra/Fang integration
func NewRootCmd() *cobra.Command {
	config := &Config{}

	var (
		listFlag   bool
		createFlag bool
		editFlag   bool
	)

	rootCmd := &cobra.Command{
		Use:          ClientName + " [alias]",
		Short:        T("root_short"),
		Long:         titleStyle.Render(ClientName) + " - " + T("root_long"),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag-style dispatch kept for compatibility with the
			// classic invocation: ossh --create / --edit / --list.
			switch {
			case listFlag:
				return (&ListCommand{Config: config}).Run(cmd.Context())
			case createFlag:
				return (&CreateCommand{Config: config}).Run(cmd.Context())
			case editFlag:
				return (&EditCommand{Config: config}).Run(cmd.Context())
			}

			connectCmd := &ConnectCommand{Config: config}
			if len(args) > 0 {
				connectCmd.Target = args[0]
			}
			return connectCmd.Run(cmd.Context())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&config.ConfigPath, "config", "F", "", T("flag_config_help"))
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, T("flag_verbose_help"))
	rootCmd.PersistentFlags().StringVar(&config.Language, "lang", "", T("flag_lang_help"))

	// Classic mode-selection flags
	rootCmd.Flags().BoolVar(&listFlag, "list", false, T("flag_list_help"))
	rootCmd.Flags().BoolVar(&createFlag, "create", false, T("flag_create_help"))
	rootCmd.Flags().BoolVar(&editFlag, "edit", false, T("flag_edit_help"))
	rootCmd.MarkFlagsMutuallyExclusive("list", "create", "edit")

	// Add subcommands
	rootCmd.AddCommand(
		newListCmd(config),
		newCreateCmd(config),
		newEditCmd(config),
		newRemoveCmd(config),
		newConnectCmd(config),
		newVersionCmd(config),
	)

	return rootCmd
}

// newListCmd creates the list subcommand
func newListCmd(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   T("list_short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (&ListCommand{Config: config}).Run(cmd.Context())
		},
	}
}

// newCreateCmd creates the create subcommand
func newCreateCmd(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   T("create_short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (&CreateCommand{Config: config}).Run(cmd.Context())
		},
	}
}

// newEditCmd creates the edit subcommand
func newEditCmd(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: T("edit_short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return (&EditCommand{Config: config}).Run(cmd.Context())
		},
	}
}

// newRemoveCmd creates the remove subcommand
func newRemoveCmd(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "remove [alias]",
		Aliases: []string{"rm", "delete"},
		Short:   T("remove_short"),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removeCmd := &RemoveCommand{Config: config}
			if len(args) > 0 {
				removeCmd.Target = args[0]
			}
			return removeCmd.Run(cmd.Context())
		},
	}
}

// newConnectCmd creates the connect subcommand
func newConnectCmd(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:     "connect [alias]",
		Aliases: []string{"ssh"},
		Short:   T("connect_short"),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			connectCmd := &ConnectCommand{Config: config}
			if len(args) > 0 {
				connectCmd.Target = args[0]
			}
			return connectCmd.Run(cmd.Context())
		},
	}
}

// newVersionCmd creates the version subcommand
func newVersionCmd(config *Config) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: T("version_short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			versionCmd := &VersionCommand{Config: config, Short: short}
			return versionCmd.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show short version only")

	return cmd
}

// initI18nForCLI initializes i18n from the raw argument list so the
// command descriptions are already translated when cobra builds help.
func initI18nForCLI(args []string) {
	for i, arg := range args {
		if arg == "--lang" && i+1 < len(args) {
			initI18n(args[i+1])
			return
		}
		if strings.HasPrefix(arg, "--lang=") {
			initI18n(strings.TrimPrefix(arg, "--lang="))
			return
		}
	}
	initI18n("")
}

// ExecuteWithFang runs the CLI with Fang enhancements
func ExecuteWithFang(ctx context.Context) error {
	initI18nForCLI(os.Args)

	rootCmd := NewRootCmd()

	return fang.Execute(ctx, rootCmd)
}
