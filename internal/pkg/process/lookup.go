package process

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/cli/safeexec"
)

// LookupExecutable resolves the first candidate found on PATH.
// Returns exec.ErrNotFound when none of the candidates is installed.
func LookupExecutable(ctx context.Context, candidates []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, candidate := range candidates {
		path, err := safeexec.LookPath(candidate)
		if err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("lookup %v: %w", candidates, exec.ErrNotFound)
}
