package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/assetkit/internal/config"
	ferrors "git.home.luguber.info/inful/assetkit/internal/foundation/errors"
	"git.home.luguber.info/inful/assetkit/internal/foundation/normalization"
	"git.home.luguber.info/inful/assetkit/internal/logfields"
	"git.home.luguber.info/inful/assetkit/internal/version"
)

// LogLevelEnv overrides the log level selected by --verbose.
const LogLevelEnv = "ASSETKIT_LOG_LEVEL"

// Global carries per-invocation state shared by all subcommands.
type Global struct {
	Context context.Context
	Logger  *slog.Logger
	RunID   string
	Stdout  io.Writer
	Stderr  io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"assetkit.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Extract    ExtractCmd    `cmd:"" help:"Extract the todo sections from the combined pomodoro assets"`
	Index      IndexCmd      `cmd:"" help:"Build compact vocabulary index files"`
	Duplicates DuplicatesCmd `cmd:"" help:"Report headwords that appear more than once in a word bank"`
	Init       InitCmd       `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	handler := slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)})
	g.RunID = uuid.NewString()
	g.Logger = slog.New(handler).With(logfields.RunID(g.RunID))
	slog.SetDefault(g.Logger)
	return nil
}

var logLevels = normalization.NewNormalizer(map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
})

// parseLogLevel maps --verbose and ASSETKIT_LOG_LEVEL to a slog level. The
// environment variable wins when it holds a known level name.
func parseLogLevel(verbose bool) slog.Level {
	if level, ok := logLevels.Lookup(os.Getenv(LogLevelEnv)); ok {
		return level
	}
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// loadConfig loads the configuration named by --config.
func loadConfig(root *CLI) (*config.Config, error) {
	return config.Load(root.Config)
}

type exitRequest int

// Execute parses args, runs the selected command and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			code = int(req)
		}
	}()

	var cli CLI
	global := &Global{Context: ctx, Logger: slog.Default(), Stdout: stdout, Stderr: stderr}
	parser, err := kong.New(&cli,
		kong.Name("assetkit"),
		kong.Description("Offline build tools for the study site's static assets."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitRequest(c)) }),
		kong.Bind(global),
	)
	if err != nil {
		fmt.Fprintf(stderr, "assetkit: %v\n", err)
		return 10
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "assetkit: error: %v\n", err)
		return 2
	}

	if err := kctx.Run(global, &cli); err != nil {
		return ferrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).WithOutput(stderr).Report(err)
	}
	return 0
}
