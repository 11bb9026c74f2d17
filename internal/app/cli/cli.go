//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"shade/internal/app/errors"
	"shade/internal/app/server"
	"shade/internal/app/theme"
	"shade/internal/app/watcher"
	"shade/internal/config"
	"shade/internal/config/logger"
)

// CLI runs the parsed command
type CLI interface {
	Execute() (exitCode int, err error)
}

type cli struct {
	opts    *Options
	cfg     *config.Config
	store   theme.Store
	server  server.Server
	watcher watcher.Watcher
	log     logger.Logger
	out     io.Writer
	errOut  io.Writer
}

// NewCLI creates a CLI writing to stdout and stderr
func NewCLI(
	opts *Options,
	cfg *config.Config,
	store theme.Store,
	srv server.Server,
	w watcher.Watcher,
	log logger.Logger,
) CLI {
	return &cli{
		opts:    opts,
		cfg:     cfg,
		store:   store,
		server:  srv,
		watcher: w,
		log:     log.WithComponent("CLI"),
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// Execute runs the command and maps failure to exit code 1
func (c *cli) Execute() (int, error) {
	if err := c.run(); err != nil {
		c.log.Debug().Err(err).Msg("Command failed")
		fmt.Fprintln(c.errOut, RenderError(err))

		return 1, err
	}

	return 0, nil
}

func (c *cli) run() error {
	switch c.opts.Type {
	case CommandRender:
		return c.handleRender()
	case CommandInspect:
		return c.handleInspect()
	case CommandServe:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return c.handleServe(ctx)
	case CommandInit:
		return c.handleInit()
	case CommandVersion:
		return c.handleVersion()
	case CommandHelp:
		return c.handleHelp()
	default:
		return fmt.Errorf("%w: %d", errors.ErrUnknownCommand, c.opts.Type)
	}
}

func (c *cli) overrides() theme.Overrides {
	return theme.Overrides{
		Background: c.opts.Background,
		Accent:     c.opts.Accent,
		Mode:       c.opts.Mode,
	}
}

// handleRender writes the stylesheet, or the palette report as json or yaml
func (c *cli) handleRender() error {
	data, err := c.renderOutput()
	if err != nil {
		return err
	}

	if c.opts.Output == "" {
		if _, err := c.out.Write(data); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrFailedToWriteOutput, err)
		}

		return nil
	}

	if err := config.WriteFileAtomic(c.opts.Output, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteOutput, err)
	}

	c.log.Info().Str("path", c.opts.Output).Str("format", c.opts.Format).Msg("Theme written")

	return nil
}

func (c *cli) renderOutput() ([]byte, error) {
	if c.opts.Format == FormatCSS {
		sheet, _, err := c.store.Stylesheet(c.overrides())
		if err != nil {
			return nil, err
		}

		return []byte(sheet.String()), nil
	}

	p, settings, err := c.store.Palette(c.overrides())
	if err != nil {
		return nil, err
	}

	report := theme.NewReport(settings, p)

	switch c.opts.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(report)
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownFormat, c.opts.Format)
	}
}

func (c *cli) handleInspect() error {
	p, settings, err := c.store.Palette(c.overrides())
	if err != nil {
		return err
	}

	fmt.Fprint(c.out, renderInspect(theme.NewReport(settings, p), isTerminal(c.out)))

	return nil
}

// handleServe runs the http service and the config watcher until ctx is done
func (c *cli) handleServe(ctx context.Context) error {
	if err := c.server.Start(); err != nil {
		return err
	}

	if err := c.watcher.Start(ctx); err != nil {
		c.log.Warn().Err(err).Msg("Config hot-reload unavailable")
	}

	defer c.watcher.Close()

	<-ctx.Done()

	return c.server.Shutdown(context.Background())
}

func (c *cli) handleInit() error {
	path := c.opts.Config
	if path == "" {
		path = config.ConfigFile
	}

	if err := config.WriteDefault(path, c.opts.Force); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%s %s\n", passStyle.Render("Created"), path)

	return nil
}

func (c *cli) handleVersion() error {
	fmt.Fprintln(c.out, RenderTitle())
	return nil
}

func (c *cli) handleHelp() error {
	fmt.Fprint(c.out, renderHelp())
	return nil
}

func renderHelp() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		body.Render("  "+commandName.Render("shade render")+"     Print the stylesheet (--format css|json|yaml, -o file)"),
		body.Render("  "+commandName.Render("shade inspect")+"    Show palette swatches and contrast ratios"),
		body.Render("  "+commandName.Render("shade serve")+"      Serve /theme.css and the colors API"),
		body.Render("  "+commandName.Render("shade init")+"       Generate "+config.ConfigFile),
		body.Render("  "+commandName.Render("shade version")+"    Show version"),
	)

	options := lipgloss.JoinVertical(
		lipgloss.Left,
		body.Render("  "+commandName.Render("-c, --config")+"     Config file path"),
		body.Render("  "+commandName.Render("-b, --background")+" Background color"),
		body.Render("  "+commandName.Render("-a, --accent")+"     Accent color"),
		body.Render("  "+commandName.Render("-m, --mode")+"       custom-properties or legacy"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		body.Render("  "+exampleCode.Render("shade render -b '#1c1c1c' -a '#ffab00'")),
		body.Render("  "+exampleCode.Render("shade render --mode legacy -o theme.css")),
		body.Render("  "+exampleCode.Render("shade serve --port 8099")),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Options:"),
		options,
		sectionHeader.Render("Examples:"),
		examples,
		label.Render("Colors are #RRGGBB, the leading # is optional"),
	) + "\n"
}
