package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/iftachshalev/shalev-assist/internal/localchat"
)

var localChatExits = []string{"exit", "quit", "q"}

// RunLocalChat streams replies from chat for each user line until an exit
// keyword or end of input. Fragments are printed as they arrive, followed by
// the elapsed generation time.
func RunLocalChat(ctx context.Context, chat *localchat.Chat, p *Prompter, out io.Writer, logger *slog.Logger) error {
	reply := color.New(color.FgCyan)
	meta := color.New(color.FgHiBlack)
	if !isTerminal(out) {
		reply.DisableColor()
		meta.DisableColor()
	}

	for {
		line, ok := p.ReadLine("")
		if !ok {
			logger.Info("input closed, ending session")
			return nil
		}
		if isExit(line, localChatExits...) {
			logger.Info("user ended session")
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, err := chat.Send(ctx, line, func(fragment string) {
			reply.Fprint(out, fragment)
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		meta.Fprintf(out, "(%.2fs, %d prompt tokens)\n", result.Elapsed.Seconds(), result.PromptTokens)
	}
}
