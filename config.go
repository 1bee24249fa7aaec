package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//
// Settings come from three places, later ones winning: built-in
// defaults, an optional YAML file, and the command line
//

type options struct {
	configPath string
	stats      bool
	trace      string
	logLevel   string
	script     string
}

func defaultConfig(interactive bool) config {

	cfg := config{
		InputPrompt: defaultInputPrompt,
		LogLevel:    "warn",
	}

	if interactive {
		cfg.Prompt = defaultPrompt
	}

	return cfg
}

func parseOptions(args []string, stderr io.Writer) (options, error) {

	var opts options

	flags := flag.NewFlagSet("minibasic", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.BoolVar(&opts.stats, "stats", false, "print statistics after each RUN")
	flags.StringVar(&opts.trace, "trace", "",
		"comma separated trace flags: exec, vars, dump")
	flags.StringVar(&opts.logLevel, "log-level", "",
		"diagnostic log level: debug, info, warn, error")

	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: minibasic [flags] [program]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	switch flags.NArg() {
	case 0:
		// nothing to do

	case 1:
		opts.script = flags.Arg(0)

	default:
		flags.Usage()
		return opts, errors.New("too many arguments")
	}

	return opts, nil
}

//
// Asking for -h is not a failure
//

func optionsExitCode(err error) int {

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	return 2
}

//
// Load a YAML config file over cfg.  If the file was not asked for
// explicitly, it not existing is fine
//

func loadConfigFile(path string, explicit bool, cfg *config) error {

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("configuration loaded", "file", path)

	return nil
}

func defaultConfigPath() string {

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, defaultConfigName)
}

//
// Command line flags override whatever the config file said
//

func applyOptions(cfg *config, opts options) error {

	if opts.stats {
		cfg.Stats = true
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	if opts.trace == "" {
		return nil
	}

	for _, f := range strings.Split(opts.trace, ",") {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "exec":
			cfg.Trace.Exec = true

		case "vars":
			cfg.Trace.Vars = true

		case "dump":
			cfg.Trace.Dump = true

		case "":
			// nothing to do

		default:
			return fmt.Errorf("unknown trace flag %q", f)
		}
	}

	return nil
}

//
// Build the full configuration.  A broken config file is reported and
// ignored, bad flags are fatal
//

func buildConfig(opts options, interactive bool) (config, error) {

	cfg := defaultConfig(interactive)

	path, explicit := opts.configPath, true
	if path == "" {
		path, explicit = defaultConfigPath(), false
	}

	if path != "" {
		if err := loadConfigFile(path, explicit, &cfg); err != nil {
			slog.Warn("ignoring configuration file", "err", err)
			cfg = defaultConfig(interactive)
		}
	}

	if err := applyOptions(&cfg, opts); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {

	var level slog.Level

	if s == "" {
		return slog.LevelWarn, nil
	}

	err := level.UnmarshalText([]byte(s))

	return level, err
}

func setupLogging(w io.Writer, levelName string) {

	level, err := parseLogLevel(levelName)
	if err != nil {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	slog.SetDefault(slog.New(handler))

	if err != nil {
		slog.Warn("unknown log level, using warn", "level", levelName)
	}
}
