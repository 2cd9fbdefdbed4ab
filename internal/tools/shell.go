package tools

import (
	"context"
	"fmt"
	"strings"
)

const (
	shellCancelled = "Command execution cancelled by user."
	shellNoOutput  = "Command ran successfully but produced no output."
)

// RunShellCommands runs a command line in the playground once the operator
// approves it.
type RunShellCommands struct {
	Commands string `json:"commands" jsonschema_description:"The shell command to run (e.g. 'ls' or 'cat notes.txt')."`
}

func (r RunShellCommands) Run(ctx context.Context, env *Env) string {
	line := strings.TrimSpace(r.Commands)
	if line == "" {
		return "Error running command: command cannot be empty"
	}

	if env.Confirm == nil {
		return shellCancelled
	}
	question := fmt.Sprintf("Permission required to run shell command:\n    `%s`\nAllow? (y/n): ", line)
	approved, err := env.Confirm.Confirm(ctx, question)
	if err != nil {
		env.logger().Warn("permission prompt failed", "error", err)
		return shellCancelled
	}
	if !approved {
		env.logger().Info("shell command refused", "commands", line)
		return shellCancelled
	}

	res, err := env.Runner.Run(ctx, ShellCommand(env.Playground, line))
	if err != nil {
		return fmt.Sprintf("Error running command: %v", err)
	}
	env.logger().Debug("shell command finished", "commands", line, "exit_code", res.ExitCode)

	if out := strings.TrimSpace(res.Stdout); out != "" {
		return out
	}
	if out := strings.TrimSpace(res.Stderr); out != "" {
		return out
	}
	return shellNoOutput
}
