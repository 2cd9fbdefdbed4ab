// Package localchat keeps the plain-text transcript of a local model chat
// and streams replies from a Generator.
package localchat

import (
	"strings"
)

const (
	InstructModel  = "microsoft/Phi-4-mini-instruct"
	ReasoningModel = "microsoft/phi-4-mini-reasoning"
)

const promptPreamble = "You are a friendly, helpful, and highly knowledgeable assistant. " +
	"You excel at math, logic, and problem-solving, and you have a vast amount of general knowledge. " +
	"For every question, first share your reasoning in a section labeled 'Reasoning:'. " +
	"Provide a clear and concise answer (up to short sentence) in a section labeled 'Answer:'. "

var (
	instructPrompt = promptPreamble +
		"Make sure to answer correctly and accurately, DO NOT make up answers. " +
		"Your goal is to be as helpful and insightful as possible!"

	reasoningPrompt = promptPreamble +
		"Do not repeat the question. " +
		"Respond in plain text only. " +
		"Your goal is to be as helpful and insightful as possible!"
)

// SystemPromptFor picks the system message for a model. Models other than the
// reasoning variant get the instruct prompt.
func SystemPromptFor(model string) string {
	if strings.EqualFold(model, ReasoningModel) {
		return reasoningPrompt
	}
	return instructPrompt
}

// Transcript is the ordered list of lines sent to the local model.
type Transcript struct {
	lines []string
}

// NewTranscript starts a transcript with the system message.
func NewTranscript(systemMessage string) *Transcript {
	return &Transcript{lines: []string{systemMessage}}
}

// AddUser appends "User: <line>".
func (t *Transcript) AddUser(line string) {
	t.lines = append(t.lines, "User: "+line)
}

// AddAssistant appends "Assistant: <reply>".
func (t *Transcript) AddAssistant(reply string) {
	t.lines = append(t.lines, "Assistant: "+reply)
}

// Prompt joins the transcript with newlines and asks for the next assistant
// line.
func (t *Transcript) Prompt() string {
	return strings.Join(t.lines, "\n") + "\nAssistant:"
}

// Lines returns a copy of the transcript.
func (t *Transcript) Lines() []string {
	return append([]string(nil), t.lines...)
}
