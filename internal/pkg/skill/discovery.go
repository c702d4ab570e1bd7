package skill

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// ListCandidates enumerates the immediate subdirectories of dir, recording
// whether each one carries the marker file. Hidden entries and
// non-directories are skipped.
func ListCandidates(fs afero.Fs, dir, marker string) ([]Candidate, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read skills repository %s: %w", dir, err)
	}

	var candidates []Candidate

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		directory := filepath.Join(dir, entry.Name())

		// The marker must be a regular file; a directory of the same
		// name does not mark a skill.
		hasMarker := false
		info, err := fs.Stat(filepath.Join(directory, marker))
		if err == nil {
			hasMarker = info.Mode().IsRegular()
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("check marker file in %s: %w", directory, err)
		}

		candidates = append(candidates, Candidate{
			Name:      entry.Name(),
			Directory: directory,
			HasMarker: hasMarker,
		})
	}

	return candidates, nil
}

// ListSkills loads every marked candidate under dir. Candidates whose
// SKILL.md cannot be parsed are skipped.
func ListSkills(fs afero.Fs, dir string) ([]*Skill, error) {
	candidates, err := ListCandidates(fs, dir, MarkerFileName)
	if err != nil {
		return nil, err
	}

	var skills []*Skill

	for _, candidate := range candidates {
		if !candidate.HasMarker {
			continue
		}

		loaded, err := Load(fs, candidate.Directory)
		if err != nil {
			continue
		}

		skills = append(skills, loaded)
	}

	return skills, nil
}

// Load reads and parses <dir>/SKILL.md. Name and description come from the
// YAML frontmatter when present, otherwise the directory name is used.
func Load(fs afero.Fs, dir string) (*Skill, error) {
	content, err := afero.ReadFile(fs, filepath.Join(dir, MarkerFileName))
	if err != nil {
		return nil, fmt.Errorf("read skill file: %w", err)
	}

	skill := &Skill{
		Name:      filepath.Base(dir),
		Directory: dir,
		Content:   extractBody(string(content)),
	}

	metadata, err := parseFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("parse skill file: %w", err)
	}

	if name, _ := metadata["name"].(string); name != "" {
		skill.Name = name
	}
	if description, _ := metadata["description"].(string); description != "" {
		skill.Description = description
	}

	return skill, nil
}

func parseFrontmatter(content []byte) (map[string]interface{}, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	return meta.Get(pctx), nil
}

// extractBody strips the leading YAML frontmatter block, when present.
func extractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
