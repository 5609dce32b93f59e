package version

import (
	"bytes"
	"os/exec"
	"regexp"
)

// pythonVersionRegex matches interpreter output like "Python 3.12.1".
var pythonVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:[a-z]+\d*)?`)

// PythonInfo describes the interpreter environments are created with.
type PythonInfo struct {
	// Name is the interpreter as configured, e.g. "python3".
	Name string `json:"name"`

	// Version is the interpreter version.
	Version string `json:"version"`

	// Path is the resolved interpreter path.
	Path string `json:"path"`

	// Found indicates if the interpreter was found.
	Found bool `json:"found"`

	// Message explains a failed detection.
	Message string `json:"message,omitempty"`
}

// String returns a human-readable interpreter info string.
func (p PythonInfo) String() string {
	if !p.Found {
		return "  Interpreter: " + p.Name + " (not found)\n  Path:        -"
	}
	version := p.Version
	if version == "" {
		version = "unknown"
	}
	return "  Interpreter: " + p.Name + " " + version + "\n  Path:        " + p.Path
}

// DetectPython finds the interpreter name in PATH and reads its version.
func DetectPython(name string) PythonInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return PythonInfo{Name: name, Message: name + " not found in PATH"}
	}

	info := PythonInfo{Name: name, Path: path, Found: true}
	version, err := pythonVersion(path)
	if err != nil {
		info.Message = "failed to get interpreter version: " + err.Error()
		return info
	}
	info.Version = version
	return info
}

// pythonVersion runs `<python> --version`. Older interpreters print the
// version to stderr.
func pythonVersion(path string) (string, error) {
	cmd := exec.Command(path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}
	return extractVersion(out.String())
}

func extractVersion(output string) (string, error) {
	match := pythonVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}
	return match, nil
}

// versionParseError indicates failure to parse interpreter version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse version from output: " + e.output
}
