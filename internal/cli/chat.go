package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/iftachshalev/shalev-assist/internal/runner"
)

// ToolChatPrompt is the system message of the tool chat.
const ToolChatPrompt = "You are a helpful assistant. Use available tools if needed to answer accurately."

var toolChatExits = []string{"exit", "quit"}

// RunToolChat reads user lines until an exit keyword or end of input and
// sends each to session. The session's events should be rendered by r. A
// failed model call ends the loop with its error.
func RunToolChat(ctx context.Context, session *runner.Session, p *Prompter, r *Renderer, model string, logger *slog.Logger) error {
	r.Banner(model)
	for {
		line, ok := p.ReadLine("You: ")
		if !ok {
			logger.Info("input closed, ending session")
			return nil
		}
		if isExit(line, toolChatExits...) {
			logger.Info("user ended session")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if _, err := session.Turn(ctx, line); err != nil {
			r.Error(err)
			return err
		}
	}
}
