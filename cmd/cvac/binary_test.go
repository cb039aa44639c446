package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// getBinaryPath returns the path to the cvac binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "cvac"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/cvac ./cmd/cvac'", binaryPath)
	}

	return binaryPath
}

func TestBinary_ValidateSuccess(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", cvSchema, fullJSON)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.Contains(t, string(output), "VALID:", "output should indicate success")
}

func TestBinary_ValidateFailureExitCode(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--schema", cvSchema, fixture("invalid", "missing_email.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "personalInfo -> email")
	assert.Contains(t, string(output), "Error: ")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode(), "should exit with code 1 on validation failure")
	}
}

func TestBinary_Version(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "--version").CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "cvac version 1.2.0\n", string(output))
}
