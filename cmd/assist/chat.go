package main

import (
	"github.com/google/uuid"
	"github.com/iftachshalev/shalev-assist/internal/cli"
	"github.com/iftachshalev/shalev-assist/internal/provider"
	"github.com/iftachshalev/shalev-assist/internal/runner"
	"github.com/iftachshalev/shalev-assist/internal/tools"
	"github.com/iftachshalev/shalev-assist/internal/types"
	"github.com/spf13/cobra"
)

func newChatCmd(flags *rootFlags) *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with a hosted model that can call local tools",
		Long: `Chat with a hosted OpenAI compatible model. The model may search the web,
read and edit files in the playground, run Python snippets, install packages
and, after you approve, run shell commands.

Type 'exit' or 'quit' to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if model != "" {
				cfg.Model = model
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			playground, err := cfg.EnsurePlayground()
			if err != nil {
				return err
			}

			logger, closeLog, err := sessionLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()
			logger = logger.With("session_id", uuid.NewString())

			registry, err := tools.NewRegistry(tools.Catalog()...)
			if err != nil {
				return err
			}

			prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			renderer := cli.NewRenderer(cmd.OutOrStdout())
			env := &tools.Env{
				Playground: playground,
				Python:     cfg.Python,
				Search: tools.GoogleSearch{
					APIKey:   cfg.Search.APIKey,
					CX:       cfg.Search.CX,
					Endpoint: cfg.Search.Endpoint,
				},
				Confirm: prompter,
				Runner:  tools.ExecRunner{},
				Logger:  logger,
			}

			llm := provider.NewOpenAI(types.ModelConfig{
				Model:   cfg.Model,
				BaseURL: cfg.BaseURL,
				APIKey:  cfg.APIKey,
			}, logger)
			session := runner.NewSession(llm, registry, env, runner.Options{
				SystemPrompt: cli.ToolChatPrompt,
				Logger:       logger,
				OnEvent:      renderer.OnEvent,
			})

			logger.Info("starting tool chat",
				"model", cfg.Model,
				"playground", playground,
				"num_tools", len(registry.Names()))
			return cli.RunToolChat(cmd.Context(), session, prompter, renderer, cfg.Model, logger)
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Hosted model name (default from MODEL_NAME)")
	return cmd
}
