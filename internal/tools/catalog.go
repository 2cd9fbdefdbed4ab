package tools

// Catalog returns the tools offered to the hosted model. Names are derived
// from the argument types.
func Catalog() []Tool {
	return []Tool{
		{
			Description: "Searches the web for up-to-date information.",
			Args:        SearchWeb{},
		},
		{
			Description: "Reads all readable text files (.txt, .md, .py, .log, .json) from a folder.",
			Args:        ReadLocalFiles{},
		},
		{
			Description: "Executes a Python code snippet. The snippet must assign its answer to _result.",
			Args:        RunPythonCode{},
		},
		{
			Description: "Installs a Python package using pip.",
			Args:        InstallPackage{},
		},
		{
			Description: "Edits or creates a file in the playground folder and sets its content.",
			Args:        EditFile{},
		},
		{
			Description: "Runs shell commands in the playground folder after getting user permission.",
			Args:        RunShellCommands{},
		},
	}
}
