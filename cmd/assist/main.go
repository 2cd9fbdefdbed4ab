// Command assist runs the tool-calling chat on a hosted model and the
// streaming chat on a locally served model.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/iftachshalev/shalev-assist/internal/config"
	"github.com/iftachshalev/shalev-assist/internal/utils"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:           "assist",
		Short:         "Chat with a tool-using assistant or a local model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR")

	rootCmd.AddCommand(newChatCmd(flags), newLocalCmd(flags), newToolsCmd())
	return rootCmd
}

// load reads the configuration and applies the persistent flags on top.
func (f *rootFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg, nil
}

// sessionLogger keeps logs away from the chat: they go to the configured log
// file, or nowhere. The returned func closes the file.
func sessionLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return utils.NilLogger(), func() {}, nil
	}
	logger, file, err := utils.FileLogger(cfg.LogFile, utils.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { file.Close() }, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		utils.SetupLogger().Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
