package tools

import (
	"context"
	"sync"

	"github.com/iftachshalev/shalev-assist/internal/utils"
)

// fakeRunner records commands and replies with a canned result.
type fakeRunner struct {
	mu     sync.Mutex
	calls  []Command
	result CommandResult
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, cmd Command) (CommandResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmd)
	return f.result, f.err
}

func answer(approved bool) ConfirmFunc {
	return func(ctx context.Context, question string) (bool, error) {
		return approved, nil
	}
}

func testEnv(dir string, runner CommandRunner) *Env {
	return &Env{
		Playground: dir,
		Python:     "python3",
		Runner:     runner,
		Logger:     utils.NilLogger(),
	}
}
