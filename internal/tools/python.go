package tools

import (
	"context"
	"fmt"
	"strings"
)

// pythonHarness executes the snippet read from stdin in a fresh scope and
// writes str(_result) to stdout. Output printed by the snippet is discarded.
const pythonHarness = `import io, sys
code = sys.stdin.read()
out = sys.stdout
sys.stdout = io.StringIO()
scope = {"__name__": "__snippet__"}
try:
    exec(compile(code, "<snippet>", "exec"), scope)
except SystemExit as e:
    raise RuntimeError("snippet called exit(%r)" % (e.code,)) from None
if "_result" not in scope:
    raise NameError("_result was not set; assign the value to return to _result")
out.write(str(scope["_result"]))
`

// RunPythonCode executes a Python snippet and returns the value it assigned
// to _result.
type RunPythonCode struct {
	Code string `json:"code" jsonschema_description:"The Python code to run. Assign the value to return to the variable _result."`
}

func (r RunPythonCode) Run(ctx context.Context, env *Env) string {
	if strings.TrimSpace(r.Code) == "" {
		return "Error executing code: no code provided"
	}

	res, err := env.Runner.Run(ctx, Command{
		Dir:   env.Playground,
		Name:  env.Python,
		Args:  []string{"-c", pythonHarness},
		Stdin: r.Code,
	})
	if err != nil {
		return fmt.Sprintf("Error executing code: %v", err)
	}
	if res.ExitCode != 0 {
		return "Error executing code: " + lastLine(res.Stderr)
	}
	return res.Stdout
}

// lastLine returns the final non-empty line, which for a Python traceback
// is the exception summary.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return "process exited without output"
}

// InstallPackage installs a Python package with pip.
type InstallPackage struct {
	PackageName string `json:"package_name" jsonschema_description:"The package to install."`
}

func (p InstallPackage) Run(ctx context.Context, env *Env) string {
	name := strings.TrimSpace(p.PackageName)
	if name == "" || strings.HasPrefix(name, "-") {
		return fmt.Sprintf("Error installing `%s`:\ninvalid package name", p.PackageName)
	}

	res, err := env.Runner.Run(ctx, Command{
		Dir:  env.Playground,
		Name: env.Python,
		Args: []string{"-m", "pip", "install", name},
	})
	if err != nil {
		return fmt.Sprintf("Error during installation: %v", err)
	}
	if res.ExitCode != 0 {
		return fmt.Sprintf("Error installing `%s`:\n%s", name, strings.TrimSpace(res.Stderr))
	}
	return fmt.Sprintf("Package `%s` installed successfully.", name)
}
