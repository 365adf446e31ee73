package cmd

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiosk404/scryer/internal/scryctl/cmd/feedbackcmd"
	"github.com/kiosk404/scryer/internal/scryctl/cmd/replay"
	"github.com/kiosk404/scryer/internal/scryctl/cmd/serve"
	"github.com/kiosk404/scryer/internal/scryctl/cmd/watch"
	"github.com/kiosk404/scryer/pkg/log"
)

var (
	cfgFile  string
	logLevel string
)

// NewDefaultScryCtlCommand creates the `scryctl` command with default
// arguments.
func NewDefaultScryCtlCommand() *cobra.Command {
	cmds := &cobra.Command{
		Use:   "scryctl",
		Short: "scryctl renders agent progress and responses in the terminal",
		Long: heredoc.Doc(`
			scryctl attaches to an external agent process's event stream and
			renders its progress (tool steps and tasks) and responses, routing
			one-shot approve/reject/free-text feedback back to the producer.

			It never owns agent state: every update replaces the previous
			snapshot wholesale, and the newest item is simply the last one.
		`),
		Run: runHelp,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.Init(logLevel)
			loadConfig()
		},
	}

	flags := cmds.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: $HOME/.scryer/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlags(flags)

	cmds.AddCommand(
		watch.NewCmdWatch(),
		replay.NewCmdReplay(),
		feedbackcmd.NewCmdFeedback(),
		serve.NewCmdServe(),
	)

	return cmds
}

// loadConfig wires viper to the config file and re-applies the log level on
// change so a long-lived watch session picks up edits.
func loadConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home + "/.scryer")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("SCRYER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.WithError(err).Warn("read config")
		}
		return
	}
	log.WithField("file", viper.ConfigFileUsed()).Debug("config loaded")

	viper.OnConfigChange(func(e fsnotify.Event) {
		log.WithField("file", e.Name).Debug("config reloaded")
		if lvl := viper.GetString("log-level"); lvl != "" {
			log.Init(lvl)
		}
	})
	viper.WatchConfig()
}

func runHelp(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}
