package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"sor-reader/config"
	"sor-reader/logging"
	"sor-reader/sor"
	"sor-reader/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
		Config      string          `arg:"--config,env:SORREADER_CONFIG" help:"path to a TOML config file" placeholder:"FILE"`
		LogLevel    string          `arg:"--log-level,env:SORREADER_LOG_LEVEL" help:"debug, info, warn or error" placeholder:"LEVEL"`
		LogFormat   string          `arg:"--log-format,env:SORREADER_LOG_FORMAT" help:"text or json" placeholder:"FORMAT"`
	}
	InteractiveCmd struct {
		Dir string `help:"folder to browse" placeholder:"DIR" default:"."`
	}
	ConvertCmd struct {
		From   string `arg:"required" help:"path to source file" placeholder:"trace.sor"`
		To     string `arg:"required" help:"path to destination file, - for stdout" placeholder:"file.json"`
		Format string `arg:"env:SORREADER_FORMAT" help:"json or yaml" placeholder:"FORMAT"`
		Force  bool   `help:"overwrite the destination file"`
		Debug  bool   `help:"write the raw block list instead of the name-keyed map"`
	}
)

const Stdout = "-"

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to convert SOR (Telcordia SR-4731 version 2) OTDR trace files",
			"to JSON or YAML in the command line.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// ResolveConfig loads the config file, then lets the command line override it.
func ResolveConfig(args Args) (config.Config, error) {
	cfg, err := config.Load(args.Config)
	if err != nil {
		return cfg, err
	}
	if args.LogLevel != "" {
		cfg.Log.Level = args.LogLevel
	}
	if args.LogFormat != "" {
		cfg.Log.Format = args.LogFormat
	}
	if args.Convert != nil {
		if args.Convert.Format != "" {
			cfg.Output.Format = args.Convert.Format
		}
		if args.Convert.Debug {
			cfg.Output.Debug = true
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Convert decodes the SOR file at from and writes the rendering to to, or
// to stdout when to is "-".
func Convert(from string, to string, force bool, options sor.Options, stdout io.Writer) error {
	if !CheckExistence(from) {
		return errors.Errorf(`source file "%s" does not exist`, from)
	}
	if to != Stdout && CheckExistence(to) && !force {
		return errors.Errorf(`destination file "%s" exists, use --force to overwrite it`, to)
	}

	fileBytes, err := os.ReadFile(from)
	if err != nil {
		return errors.Wrapf(err, `reading "%s"`, from)
	}
	if !sor.IsSORFile(fileBytes) {
		return errors.Errorf(`"%s" is not a version 2 SOR file`, from)
	}

	slog.Info("converting", "from", from, "to", to, "format", string(options.Format))
	decodedBytes, err := sor.DecodeSOR(fileBytes, options)
	if err != nil {
		return errors.Wrapf(err, `decoding "%s"`, from)
	}

	if to == Stdout {
		_, err := stdout.Write(decodedBytes)
		return errors.Wrap(err, "writing to stdout")
	}
	if err := os.WriteFile(to, decodedBytes, 0644); err != nil {
		return errors.Wrapf(err, `writing to "%s"`, to)
	}
	return nil
}

func StartConverting(cmd ConvertCmd, options sor.Options) {
	if err := Convert(cmd.From, cmd.To, cmd.Force, options, os.Stdout); err != nil {
		slog.Error("convert failed", "error", err)
		os.Exit(1)
	}
	if cmd.To != Stdout {
		println("Done converting. Please check your result file at: " + cmd.To)
	}
}

func StartInteractive(cmd InteractiveCmd, options sor.Options) {
	dir, err := filepath.Abs(cmd.Dir)
	if err != nil {
		slog.Error("interactive failed", "error", err)
		os.Exit(1)
	}
	if err := ui.Start(dir, options); err != nil {
		slog.Error("interactive failed", "error", err)
		os.Exit(1)
	}
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	cfg, err := ResolveConfig(args)
	if err != nil {
		parser.Fail(err.Error())
	}
	logging.Setup(cfg.LoggingConfig())

	if args.Convert != nil {
		StartConverting(*args.Convert, cfg.SOROptions())
		return
	}
	interactive := InteractiveCmd{Dir: "."}
	if args.Interactive != nil {
		interactive = *args.Interactive
	}
	StartInteractive(interactive, cfg.SOROptions())
}
