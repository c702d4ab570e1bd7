package agent

import (
	"context"
	"errors"
	"os/exec"

	"github.com/orbiqd/orbiqd-skillkit/internal/pkg/process"
)

// LocateExecutable finds the agent's CLI binary on PATH.
// Returns exec.ErrNotFound when no candidate executable is installed.
func (kind Kind) LocateExecutable(ctx context.Context) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}

	return process.LookupExecutable(ctx, agents[kind].executables)
}

// Installed reports whether the agent's CLI binary is available on PATH.
func (kind Kind) Installed(ctx context.Context) (bool, error) {
	_, err := kind.LocateExecutable(ctx)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return false, nil
	}

	return false, err
}
