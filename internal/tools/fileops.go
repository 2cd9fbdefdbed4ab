package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/iftachshalev/shalev-assist/internal/utils"
)

// ErrOutsidePlayground is returned for file names that resolve outside the
// playground directory.
var ErrOutsidePlayground = errors.New("path escapes the playground directory")

// ReadablePatterns is the allow-list of file names read by ReadLocalFiles.
var ReadablePatterns = []string{"*.txt", "*.md", "*.py", "*.log", "*.json"}

// ReadLocalFiles concatenates every readable text file directly inside a
// directory. Subdirectories are not visited.
type ReadLocalFiles struct {
	Path string `json:"path" jsonschema_description:"The folder path with text files (e.g. ./docs). Defaults to the playground."`
}

func (r ReadLocalFiles) Run(ctx context.Context, env *Env) string {
	dir := r.Path
	if dir == "" {
		dir = env.Playground
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Sprintf("Error: '%s' is not a valid directory.", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Sprintf("Error: could not list '%s': %v", dir, err)
	}

	var blocks []string
	for _, entry := range entries {
		name := entry.Name()
		if !readable(name) {
			continue
		}
		full := filepath.Join(dir, name)
		if fi, err := os.Stat(full); err != nil || !fi.Mode().IsRegular() {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("### %s\n%s", name, readText(full)))
	}

	if len(blocks) == 0 {
		return "No readable files found in the folder."
	}
	return strings.Join(blocks, "\n\n")
}

func readable(name string) bool {
	return slices.ContainsFunc(ReadablePatterns, func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, name)
		return ok
	})
}

func readText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[Error reading file: %v]", err)
	}
	if !utf8.Valid(data) {
		return "[Error reading file: content is not valid UTF-8]"
	}
	return string(data)
}

// EditFile creates or overwrites a file inside the playground.
type EditFile struct {
	FileName string `json:"file_name" jsonschema_description:"File name to create or edit, relative to the playground."`
	Content  string `json:"content" jsonschema_description:"The content to write into the file."`
}

func (e EditFile) Run(ctx context.Context, env *Env) string {
	target, err := playgroundPath(env.Playground, e.FileName)
	if err != nil {
		return fmt.Sprintf("Error editing file `%s`: %v", e.FileName, err)
	}

	previous, _ := os.ReadFile(target)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Sprintf("Error editing file `%s`: %v", e.FileName, err)
	}
	if err := os.WriteFile(target, []byte(e.Content), 0o644); err != nil {
		return fmt.Sprintf("Error editing file `%s`: %v", e.FileName, err)
	}

	env.logger().Debug("file edited",
		"file_name", e.FileName,
		"bytes", len(e.Content),
		"diff", utils.ShowDiff(string(previous), e.Content))
	return fmt.Sprintf("File `%s` edited successfully.", e.FileName)
}

// playgroundPath joins name onto root and rejects results outside root.
func playgroundPath(root, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("file name cannot be empty")
	}
	if filepath.IsAbs(name) {
		return "", ErrOutsidePlayground
	}
	target := filepath.Join(root, name)
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsidePlayground
	}
	return target, nil
}
