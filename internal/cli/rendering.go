package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/iftachshalev/shalev-assist/internal/runner"
	"github.com/iftachshalev/shalev-assist/internal/types"
	"golang.org/x/term"
)

const (
	gray  = "#737373"
	ant   = "#b06227"
	green = "#2a7d2f"
	red   = "#c0392b"
)

var (
	thinkStartRe = regexp.MustCompile(`<think>\s*`)
	thinkEndRe   = regexp.MustCompile(`\s*</think>`)
	thinkTagRe   = regexp.MustCompile(`(?s)<think>\s*(.*?)\s*</think>`)
)

// ContentSegment is a run of answer text, either visible or model thinking.
type ContentSegment struct {
	Text       string
	IsThinking bool
}

func normalizeThinkTags(text string) string {
	text = strings.TrimSpace(text)
	if thinkStartRe.MatchString(text) && !thinkEndRe.MatchString(text) {
		text += "</think>"
	}
	return text
}

func parseContentSegments(text string) []ContentSegment {
	text = normalizeThinkTags(text)
	matches := thinkTagRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []ContentSegment{{Text: text}}
	}

	var segments []ContentSegment
	lastEnd := 0
	for _, match := range matches {
		if match[0] > lastEnd {
			if content := text[lastEnd:match[0]]; strings.TrimSpace(content) != "" {
				segments = append(segments, ContentSegment{Text: content})
			}
		}
		if thinking := text[match[2]:match[3]]; strings.TrimSpace(thinking) != "" {
			segments = append(segments, ContentSegment{Text: thinking, IsThinking: true})
		}
		lastEnd = match[1]
	}
	if lastEnd < len(text) {
		if content := text[lastEnd:]; strings.TrimSpace(content) != "" {
			segments = append(segments, ContentSegment{Text: content})
		}
	}
	return segments
}

func truncateWithEllipsis(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Renderer prints the tool chat. On a terminal, answers are rendered as
// markdown and labels are colored; otherwise output is plain text.
type Renderer struct {
	out    io.Writer
	styled bool
	md     *glamour.TermRenderer
	// MaxToolOutput limits echoed tool output on a terminal. Zero means no
	// limit.
	MaxToolOutput int
}

// NewRenderer writes to out, styling it when out is a terminal.
func NewRenderer(out io.Writer) *Renderer {
	r := &Renderer{out: out, styled: isTerminal(out)}
	if !r.styled {
		return r
	}
	r.MaxToolOutput = 2000

	width := 0
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		r.md = md
	}
	return r
}

func (r *Renderer) style(color string, bold bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(bold)
}

func (r *Renderer) label(text, color string) string {
	if !r.styled {
		return text
	}
	return r.style(color, true).Render(text)
}

// Banner prints the session header.
func (r *Renderer) Banner(model string) {
	fmt.Fprintf(r.out, "%s\nType 'exit' to quit.\n\n",
		r.label(fmt.Sprintf("[MCP Tool Chat] %s with Web Search Tool", model), ant))
}

// ToolCall echoes a requested tool invocation.
func (r *Renderer) ToolCall(call types.ToolCall) {
	fmt.Fprintf(r.out, "\n%s %s with args %s\n", r.label("🔧 Tool Call:", ant), call.Name, call.Args)
}

// ToolResult echoes the output of a tool invocation.
func (r *Renderer) ToolResult(result runner.ToolResult) {
	content := result.Content
	if r.MaxToolOutput > 0 {
		content = truncateWithEllipsis(content, r.MaxToolOutput)
	}
	fmt.Fprintf(r.out, "\n%s\n%s\n\n", r.label("🔧 Tool Output:", green), content)
}

// Answer prints the assistant's answer.
func (r *Renderer) Answer(text string) {
	fmt.Fprintf(r.out, "\n%s\n%s\n\n", r.label("Assistant:", ant), r.RenderMarkdown(text))
}

// Error prints a failure that ends the session.
func (r *Renderer) Error(err error) {
	fmt.Fprintf(r.out, "\n%s %v\n", r.label("Error:", red), err)
}

// OnEvent renders session events as they happen.
func (r *Renderer) OnEvent(e runner.Event) {
	if call, ok := e.ToolCall(); ok {
		r.ToolCall(*call)
	}
	if result, ok := e.ToolResult(); ok {
		r.ToolResult(result)
	}
	if msg, ok := e.Message(); ok {
		r.Answer(msg.Content)
	}
}

// RenderMarkdown renders answer text. Thinking sections are dimmed and
// never run through markdown.
func (r *Renderer) RenderMarkdown(text string) string {
	segments := parseContentSegments(text)
	var result strings.Builder
	for i, segment := range segments {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(r.renderContent(segment))
	}
	return strings.TrimSpace(result.String())
}

func (r *Renderer) renderContent(segment ContentSegment) string {
	if !r.styled {
		return segment.Text
	}
	if segment.IsThinking {
		return r.style(gray, false).Italic(true).Render(segment.Text)
	}
	if r.md == nil {
		return segment.Text
	}
	rendered, err := r.md.Render(segment.Text)
	if err != nil {
		return segment.Text
	}
	return strings.TrimSpace(rendered)
}
