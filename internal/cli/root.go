package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootConfig struct {
	cfgDirectory string
}

// NewRootCommand creates the dlist command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dlist",
		Short: "Doubly linked list driver",
		Long: `Exercises the dlist container, either with the built-in
demonstration sequence or with a YAML script of operations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfig.cfgDirectory, "config", ".config", "configuration directory")
	// Settings read through viper so the config file and DLIST_* env can override them.
	flags.String("log", "info", "Log level: trace, debug, info, warn, (error), fatal, panic, disabled")
	flags.Bool("color", false, "Use color (only for console output).")
	flags.Bool("trace", false, "Print the list after every step.")

	_ = viper.BindPFlag("log", flags.Lookup("log"))
	_ = viper.BindPFlag("color", flags.Lookup("color"))
	_ = viper.BindPFlag("trace", flags.Lookup("trace"))

	rootCmd.AddCommand(newDemoCommand(), newRunCommand())

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command) error {
	viper.AddConfigPath(rootConfig.cfgDirectory)
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvPrefix("DLIST")
	viper.AutomaticEnv()

	cfgErr := viper.ReadInConfig()

	setupLogging(cmd.ErrOrStderr(), viper.GetString("log"), viper.GetBool("color"))

	if cfgErr == nil {
		log.Info().Msgf("Using config file:%s", viper.ConfigFileUsed())
	} else {
		log.Debug().Err(cfgErr).Msg("Could not find config file")
	}

	return nil
}

func setupLogging(w io.Writer, level string, useColor bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: w, NoColor: !useColor, TimeFormat: "15:04:05"}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "t", "trc", "trace":
		return zerolog.TraceLevel
	case "d", "dbg", "debug":
		return zerolog.DebugLevel
	case "i", "inf", "info":
		return zerolog.InfoLevel
	case "w", "warn", "warning":
		return zerolog.WarnLevel
	case "e", "err", "error":
		return zerolog.ErrorLevel
	case "f", "fatal":
		return zerolog.FatalLevel
	case "p", "panic":
		return zerolog.PanicLevel
	case "dis", "disable", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.ErrorLevel
	}
}
