package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
)

// VenvDir is the virtual environment directory created inside a project.
const VenvDir = "venv"

// DefaultPython is the interpreter used when none is configured.
const DefaultPython = "python3"

// VenvCreator creates a virtual environment with `<python> -m venv`.
type VenvCreator struct {
	// Python is the interpreter to run; defaults to DefaultPython.
	Python string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Create builds root/venv.
func (v *VenvCreator) Create(ctx context.Context, root string) error {
	bin, err := resolvePython(v.Python)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, bin, "-m", "venv", filepath.Join(root, VenvDir))
	cmd.Dir = root

	stdout := v.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := v.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stderrBuf bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s -m venv exited with code %d: %s", bin, exitErr.ExitCode(), bytes.TrimSpace(stderrBuf.Bytes()))
		}
		return fmt.Errorf("running %s -m venv: %w", bin, err)
	}
	return nil
}

var pythonVersionRe = regexp.MustCompile(`Python\s+(\d+\.\d+(?:\.\d+)?)`)

// PythonVersion reports the version printed by `<python> --version`,
// e.g. "3.12.1".
func PythonVersion(ctx context.Context, python string) (string, error) {
	bin, err := resolvePython(python)
	if err != nil {
		return "", err
	}

	// Python 2 printed its version on stderr.
	out, err := exec.CommandContext(ctx, bin, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", bin, err)
	}
	return ParsePythonVersion(string(out))
}

// ParsePythonVersion extracts the dotted version from interpreter output.
func ParsePythonVersion(output string) (string, error) {
	m := pythonVersionRe.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("unrecognized python version output %q", output)
	}
	return m[1], nil
}

func resolvePython(python string) (string, error) {
	if python == "" {
		python = DefaultPython
	}
	bin, err := exec.LookPath(python)
	if err != nil {
		return "", fmt.Errorf("python interpreter %q not found: %w", python, err)
	}
	return bin, nil
}
