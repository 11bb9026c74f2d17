package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shade/internal/app/errors"
	"shade/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandHelp CommandType = iota
	CommandRender
	CommandInspect
	CommandServe
	CommandInit
	CommandVersion
)

// Output formats for render
const (
	FormatCSS  = "css"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options contains the parsed command-line arguments
type Options struct {
	Type       CommandType
	Config     string
	Background string
	Accent     string
	Mode       string
	Format     string
	Output     string
	Host       string
	Port       int
	Force      bool
}

// Parse parses command-line args into Options
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:   CommandHelp,
		Format: FormatCSS,
	}

	var showVersion bool

	root := buildRootCommand(result, &showVersion)
	root.AddCommand(
		buildRenderCommand(result),
		buildInspectCommand(result),
		buildServeCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if showVersion {
		result.Type = CommandVersion
	}

	if err := result.validate(); err != nil {
		return nil, err
	}

	return result, nil
}

func (o *Options) validate() error {
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))

	switch o.Format {
	case FormatCSS, FormatJSON, FormatYAML:
	case "yml":
		o.Format = FormatYAML
	default:
		return fmt.Errorf("%w: %q (must be css, json or yaml)", errors.ErrUnknownFormat, o.Format)
	}

	if o.Port < 0 || o.Port > 65535 {
		return errors.ErrInvalidPort
	}

	return nil
}

func buildRootCommand(result *Options, showVersion *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         config.AppDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w %q", errors.ErrUnknownCommand, args[0])
			}

			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandHelp
		},
	}

	cmd.PersistentFlags().StringVarP(&result.Config, "config", "c", "", "Path to "+config.ConfigFile)
	cmd.Flags().BoolVarP(showVersion, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

func addColorFlags(cmd *cobra.Command, result *Options) {
	cmd.Flags().StringVarP(&result.Background, "background", "b", "", "Background color (#RRGGBB)")
	cmd.Flags().StringVarP(&result.Accent, "accent", "a", "", "Accent color (#RRGGBB)")
	cmd.Flags().StringVarP(&result.Mode, "mode", "m", "", "Stylesheet mode (custom-properties or legacy)")
}

func buildRenderCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Aliases: []string{"r"},
		Short:   "Print the theme stylesheet or palette",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRender
		},
	}

	addColorFlags(cmd, result)
	cmd.Flags().StringVarP(&result.Format, "format", "f", FormatCSS, "Output format (css, json or yaml)")
	cmd.Flags().StringVarP(&result.Output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func buildInspectCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect",
		Aliases: []string{"i"},
		Short:   "Show palette swatches and contrast ratios",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInspect
		},
	}

	addColorFlags(cmd, result)

	return cmd
}

func buildServeCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Serve the theme over http",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandServe
		},
	}

	cmd.Flags().StringVar(&result.Host, "host", "", "Listen host (default from config)")
	cmd.Flags().IntVarP(&result.Port, "port", "p", 0, "Listen port (default from config)")

	return cmd
}

func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate " + config.ConfigFile + " with default settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVar(&result.Force, "force", false, "Overwrite an existing file")

	return cmd
}

func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}

// ApplyServerFlags copies --host and --port onto cfg
func (o *Options) ApplyServerFlags(cfg *config.Config) {
	if o.Host != "" {
		cfg.Server.Host = o.Host
	}

	if o.Port != 0 {
		cfg.Server.Port = o.Port
	}
}
