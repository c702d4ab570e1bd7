package skill

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const envRepositoryPath = "SKILLKIT_SKILLS_REPOSITORY"

// ResolveRepositoryPath normalizes a skills repository path to an absolute
// path. An empty path falls back to SKILLKIT_SKILLS_REPOSITORY when set,
// otherwise to the current working directory.
func ResolveRepositoryPath(path string) (string, error) {
	if path == "" {
		path = os.Getenv(envRepositoryPath)
	}

	if path == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		path = workingDir
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand repository path: %w", err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolve absolute repository path: %w", err)
	}

	return abs, nil
}
