package localchat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/iftachshalev/shalev-assist/internal/provider"
)

// Stream starts gen on its own goroutine and returns the channel its
// fragments arrive on. The channel is unbuffered so the producer waits for
// the consumer. wait blocks until generation ends and returns its error; call
// it after the channel is drained.
func Stream(ctx context.Context, gen provider.Generator, prompt string, params provider.GenerationParams) (fragments <-chan string, wait func() error) {
	out := make(chan string)
	done := make(chan error, 1)

	go func() {
		defer close(out)
		done <- gen.Generate(ctx, prompt, params, out)
	}()

	return out, func() error { return <-done }
}

// Reply is one completed assistant answer.
type Reply struct {
	Text         string
	PromptTokens int
	Elapsed      time.Duration
}

// Chat is a local model conversation.
type Chat struct {
	gen        provider.Generator
	transcript *Transcript
	counter    *Counter
	params     provider.GenerationParams
	logger     *slog.Logger
}

// NewChat starts a conversation with gen using systemMessage.
func NewChat(gen provider.Generator, systemMessage string, logger *slog.Logger) *Chat {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chat{
		gen:        gen,
		transcript: NewTranscript(systemMessage),
		counter:    &Counter{},
		params:     provider.DefaultGeneration,
		logger:     logger,
	}
}

// Transcript returns the lines sent so far.
func (c *Chat) Transcript() []string {
	return c.transcript.Lines()
}

// Send appends line as a user turn and streams the reply. Each fragment is
// passed to onFragment in arrival order. The full reply is recorded in the
// transcript once generation finishes without error.
func (c *Chat) Send(ctx context.Context, line string, onFragment func(string)) (Reply, error) {
	c.transcript.AddUser(line)
	prompt := c.transcript.Prompt()
	tokens := c.counter.Count(prompt)
	c.logger.Debug("prompt prepared", "prompt_tokens", tokens, "transcript_lines", len(c.transcript.lines))

	start := time.Now()
	fragments, wait := Stream(ctx, c.gen, prompt, c.params)

	var sb strings.Builder
	for fragment := range fragments {
		if onFragment != nil {
			onFragment(fragment)
		}
		sb.WriteString(fragment)
	}
	if err := wait(); err != nil {
		return Reply{}, err
	}

	reply := Reply{
		Text:         strings.TrimSpace(sb.String()),
		PromptTokens: tokens,
		Elapsed:      time.Since(start),
	}
	c.transcript.AddAssistant(reply.Text)
	c.logger.Info("local reply completed",
		"reply_length", len(reply.Text),
		"elapsed", reply.Elapsed)
	return reply, nil
}
