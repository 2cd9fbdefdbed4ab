package main

import (
	"github.com/google/uuid"
	"github.com/iftachshalev/shalev-assist/internal/cli"
	"github.com/iftachshalev/shalev-assist/internal/localchat"
	"github.com/iftachshalev/shalev-assist/internal/provider"
	"github.com/iftachshalev/shalev-assist/internal/types"
	"github.com/spf13/cobra"
)

func newLocalCmd(flags *rootFlags) *cobra.Command {
	var model, url string
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Stream a chat with a locally served model",
		Long: `Chat with a model served locally behind an OpenAI compatible completions
endpoint (llama.cpp server, vLLM, Ollama). Replies are printed as they are
generated.

Type 'exit', 'quit' or 'q' to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if model != "" {
				cfg.LocalModel = model
			}
			if url != "" {
				cfg.LocalURL = url
			}

			logger, closeLog, err := sessionLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()
			logger = logger.With("session_id", uuid.NewString())

			gen := provider.NewLocal(types.ModelConfig{
				Model:   cfg.LocalModel,
				BaseURL: cfg.LocalURL,
			}, logger)
			chat := localchat.NewChat(gen, localchat.SystemPromptFor(cfg.LocalModel), logger)

			logger.Info("starting local chat", "model", cfg.LocalModel, "url", cfg.LocalURL)
			prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			return cli.RunLocalChat(cmd.Context(), chat, prompter, cmd.OutOrStdout(), logger)
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Local model name (default from LOCAL_MODEL)")
	cmd.Flags().StringVar(&url, "url", "", "Completions endpoint base URL (default from LOCAL_MODEL_URL)")
	return cmd
}
