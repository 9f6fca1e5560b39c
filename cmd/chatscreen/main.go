package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"chatscreen/internal/chat"
	"chatscreen/internal/config"
	"chatscreen/internal/logging"
	"chatscreen/internal/platform"
	"chatscreen/internal/telemetry"
	"chatscreen/internal/transcript"
	"chatscreen/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// rootFlags holds the command-line overrides for a chatscreen run.
type rootFlags struct {
	configPath  string
	platform    string
	locale      string
	timezone    string
	logFile     string
	rejectBlank bool
	verbose     bool
	noMouse     bool
	transcript  bool
}

func newRootCmd() (*cobra.Command, *rootFlags) {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "chatscreen",
		Short: "A terminal chat screen with a local, in-memory message list",
		Long: `chatscreen shows a scrollable message list above a single-line input.
Messages you send are kept in memory for this session only.

Keys: enter or ctrl+s sends, tab switches between input and list,
esc or ctrl+c quits. Clicking [ Send ] also sends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}
			var out io.Writer
			if f.transcript {
				out = cmd.OutOrStdout()
			}
			return run(cmd.Context(), cfg, out)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "path to config.yaml (default: user config dir)")
	fl.StringVar(&f.platform, "platform", "", "label shown in the header (default: detected host)")
	fl.StringVar(&f.locale, "locale", "", "BCP 47 locale for weekday casing, e.g. en, fr")
	fl.StringVar(&f.timezone, "timezone", "", "IANA time zone for message times (default: local)")
	fl.StringVar(&f.logFile, "log-file", "", "write JSON logs to this file")
	fl.BoolVar(&f.rejectBlank, "reject-blank", false, "refuse to send empty or whitespace-only messages")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")
	fl.BoolVar(&f.noMouse, "no-mouse", false, "disable mouse support")
	fl.BoolVar(&f.transcript, "transcript", false, "print the session's messages as a table on exit")
	return cmd, &f
}

// loadConfig layers flags over the file and environment, then validates.
func loadConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed("platform") {
		cfg.Platform = f.platform
	}
	if fl.Changed("locale") {
		cfg.Locale = f.locale
	}
	if fl.Changed("timezone") {
		cfg.TimeZone = f.timezone
	}
	if fl.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if fl.Changed("reject-blank") {
		cfg.RejectBlank = f.rejectBlank
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
	if f.noMouse {
		cfg.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// run starts the screen and blocks until the user quits. When transcriptOut is
// non-nil the session's messages are printed to it afterwards.
func run(ctx context.Context, cfg config.Config, transcriptOut io.Writer) error {
	logger, err := logging.New(logging.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tel, err := telemetry.New(ctx, telemetry.Options{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		logger.Warn("telemetry disabled", zap.Error(err))
		tel = telemetry.Disabled()
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	tag, err := cfg.LanguageTag()
	if err != nil {
		return err
	}
	formatter := chat.NewFormatter(loc, tag)

	screen := ui.NewScreen(ui.ScreenOptions{
		Policy:    cfg.SendPolicy(),
		Formatter: formatter,
		Platform:  platform.Resolve(ctx, cfg.Platform),
		Logger:    logger,
		Recorder:  tel,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(screen.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("run screen: %w", err)
	}

	if transcriptOut != nil {
		transcript.Write(transcriptOut, screen.Messages(), formatter)
	}
	return nil
}

func main() {
	cmd, _ := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "chatscreen: %v\n", err)
		os.Exit(1)
	}
}
