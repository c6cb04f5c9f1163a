// Package prerequisites verifies that client tools required by the driver are
// present on the host before any instance interaction is attempted.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool describes a client tool that may be required.
type Tool struct {
	// Name is the binary name looked up in PATH.
	Name string

	// Required indicates the tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL points at installation instructions.
	InstallURL string
}

// LoginTools returns the tools needed for interactive instance login.
// The driver shells out to the ssh client rather than embedding a session.
func LoginTools() []Tool {
	return []Tool{
		{
			Name:        "ssh",
			Required:    true,
			Description: "Required for logging in to provisioned instances",
			InstallURL:  "https://www.openssh.com/",
		},
	}
}

// Result holds the outcome of checking a single tool.
type Result struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// Results holds the outcomes of checking multiple tools.
type Results struct {
	Results []Result
	Missing []Tool
}

// Err returns an error naming all missing required tools, or nil.
func (r *Results) Err() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the given tools are available in PATH.
func Check(tools []Tool) *Results {
	results := &Results{}

	for _, tool := range tools {
		result := Result{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			result.Version = toolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// toolVersion attempts to read the tool's version banner, best effort.
// OpenSSH prints its banner on stderr, so combined output is used.
func toolVersion(name string) string {
	// #nosec G204 -- name comes from static Tool definitions
	out, _ := exec.Command(name, "-V").CombinedOutput()
	line := strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)[0]
	return strings.TrimSpace(line)
}
