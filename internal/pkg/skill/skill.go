// Package skill models skill directories: directories carrying a SKILL.md
// marker file with optional YAML frontmatter describing the skill.
package skill

// MarkerFileName is the file that makes a directory a skill.
const MarkerFileName = "SKILL.md"

// Candidate is an immediate subdirectory of a skills repository.
type Candidate struct {
	// Name is the directory entry name.
	Name string

	// Directory is the absolute path to the candidate directory.
	Directory string

	// HasMarker reports whether the directory contains a SKILL.md file.
	HasMarker bool
}

// Skill is a parsed skill with metadata from the SKILL.md frontmatter.
type Skill struct {
	// Name comes from the frontmatter, falling back to the directory name.
	Name string `json:"name"`

	// Description comes from the frontmatter when present.
	Description string `json:"description,omitempty"`

	// Directory is the path to the skill directory.
	Directory string `json:"directory"`

	// Content is the SKILL.md body without the frontmatter.
	Content string `json:"-"`
}
