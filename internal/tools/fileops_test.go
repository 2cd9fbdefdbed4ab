package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLocalFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.bin"), []byte("binary"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "c.md"), []byte("# gamma"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	out := ReadLocalFiles{Path: dir}.Run(context.Background(), testEnv(dir, &fakeRunner{}))

	expected := "### a.txt\nalpha\n\n### c.md\n# gamma"
	if out != expected {
		t.Fatalf("expected %q got %q", expected, out)
	}
	if strings.Contains(out, "b.bin") || strings.Contains(out, "binary") {
		t.Fatalf("b.bin should be excluded: %q", out)
	}
}

func TestReadLocalFilesInvalidDirectory(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")

	out := ReadLocalFiles{Path: missing}.Run(context.Background(), testEnv(dir, &fakeRunner{}))

	if out != "Error: '"+missing+"' is not a valid directory." {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Fatalf("read should not create the directory")
	}
}

func TestReadLocalFilesEmptyAndUnreadable(t *testing.T) {
	dir := t.TempDir()
	env := testEnv(dir, &fakeRunner{})

	if out := (ReadLocalFiles{}).Run(context.Background(), env); out != "No readable files found in the folder." {
		t.Fatalf("unexpected output for empty playground %q", out)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.log"), []byte{0xff, 0xfe}, 0o644); err != nil {
		t.Fatal(err)
	}
	out := ReadLocalFiles{Path: dir}.Run(context.Background(), env)
	if !strings.HasPrefix(out, "### bad.log\n[Error reading file:") {
		t.Fatalf("expected inline read error, got %q", out)
	}
}

func TestEditFile(t *testing.T) {
	dir := t.TempDir()
	env := testEnv(dir, &fakeRunner{})

	out := EditFile{FileName: "notes/todo.txt", Content: "one"}.Run(context.Background(), env)
	if out != "File `notes/todo.txt` edited successfully." {
		t.Fatalf("unexpected output %q", out)
	}
	out = EditFile{FileName: "notes/todo.txt", Content: "two"}.Run(context.Background(), env)
	if out != "File `notes/todo.txt` edited successfully." {
		t.Fatalf("unexpected output %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "notes", "todo.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestEditFileRejectsEscapes(t *testing.T) {
	dir := t.TempDir()
	env := testEnv(filepath.Join(dir, "play"), &fakeRunner{})

	for _, name := range []string{"../outside.txt", "/etc/passwd", "", "."} {
		out := EditFile{FileName: name, Content: "x"}.Run(context.Background(), env)
		if !strings.HasPrefix(out, "Error editing file `"+name+"`:") {
			t.Fatalf("expected rejection for %q, got %q", name, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "outside.txt")); !os.IsNotExist(err) {
		t.Fatalf("file outside the playground was written")
	}
}
