package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsCommandPrintsCatalog(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"tools"})
	require.NoError(t, root.Execute())

	var schemas []toolSchema
	require.NoError(t, json.Unmarshal(out.Bytes(), &schemas))

	var names []string
	for _, s := range schemas {
		names = append(names, s.Name)
		assert.NotEmpty(t, s.Description, s.Name)
		assert.Equal(t, "object", s.Parameters["type"], s.Name)
	}
	assert.Equal(t, []string{
		"search_web",
		"read_local_files",
		"run_python_code",
		"install_package",
		"edit_file",
		"run_shell_commands",
	}, names)
}

func TestChatRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Chdir(t.TempDir())

	root := newRootCmd()
	root.SetArgs([]string{"chat"})
	root.SetIn(bytes.NewBufferString("exit\n"))
	root.SetOut(&bytes.Buffer{})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLocalExitsOnKeyword(t *testing.T) {
	t.Chdir(t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetArgs([]string{"local", "--url", "http://127.0.0.1:1/v1"})
	root.SetIn(bytes.NewBufferString("q\n"))
	root.SetOut(&out)
	require.NoError(t, root.Execute())
	assert.Empty(t, out.String())
}
