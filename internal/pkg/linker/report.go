package linker

import "github.com/orbiqd/orbiqd-skillkit/internal/pkg/agent"

// Outcome classifies the result of evaluating a single candidate.
type Outcome string

const (
	// OutcomeLinked indicates a new symlink was created (or would be, in a dry run).
	OutcomeLinked Outcome = "linked"

	// OutcomeAlreadyLinked indicates a correct symlink already exists.
	OutcomeAlreadyLinked Outcome = "already-linked"

	// OutcomeConflict indicates an existing symlink points somewhere else.
	OutcomeConflict Outcome = "conflicting-symlink"

	// OutcomeExists indicates the target path is a real directory or file.
	OutcomeExists Outcome = "directory-exists"

	// OutcomeNoMarker indicates the candidate has no SKILL.md marker file.
	OutcomeNoMarker Outcome = "skipped-no-marker"

	// OutcomeFailed indicates symlink creation failed.
	OutcomeFailed Outcome = "failed"
)

// Result is the evaluation of a single candidate.
type Result struct {
	// Skill is the candidate directory name.
	Skill string `json:"skill"`

	// Source is the candidate directory path.
	Source string `json:"source"`

	// Target is the symlink path inside the agent's skills directory.
	Target string `json:"target"`

	// Existing carries the current symlink destination for conflicts.
	Existing string `json:"existing,omitempty"`

	// Outcome classifies the result.
	Outcome Outcome `json:"outcome"`

	// Err carries the failure for OutcomeFailed results.
	Err error `json:"-"`
}

// Report accumulates the results of one linker run.
type Report struct {
	// RunID uniquely identifies the run.
	RunID string `json:"runId"`

	// Agent is the agent the run linked skills for.
	Agent agent.Kind `json:"agent"`

	// SourceDir is the resolved skills repository path.
	SourceDir string `json:"sourceDir"`

	// TargetDir is the resolved agent skills directory.
	TargetDir string `json:"targetDir"`

	// DryRun reports whether the run created anything.
	DryRun bool `json:"dryRun"`

	// Results lists every evaluated candidate in enumeration order.
	Results []Result `json:"results"`

	// Linked counts created and already-correct symlinks.
	Linked int `json:"linked"`

	// Skipped counts candidates left untouched: missing marker, conflicting
	// symlink, or pre-existing real directory.
	Skipped int `json:"skipped"`

	// Failed counts symlink creation failures.
	Failed int `json:"failed"`
}

func (report *Report) add(result Result) {
	report.Results = append(report.Results, result)

	switch result.Outcome {
	case OutcomeLinked, OutcomeAlreadyLinked:
		report.Linked++
	case OutcomeConflict, OutcomeExists, OutcomeNoMarker:
		report.Skipped++
	case OutcomeFailed:
		report.Failed++
	}
}

// NewLinks counts symlinks newly created in this run.
func (report *Report) NewLinks() int {
	count := 0
	for _, result := range report.Results {
		if result.Outcome == OutcomeLinked {
			count++
		}
	}
	return count
}
