package orchestrator

import (
	"fmt"

	"github.com/tracker-tv/codeowners-audit/models"
)

type recordingReporter struct {
	progress []string
	failures []string
	findings []models.Finding
}

func (r *recordingReporter) Progress(format string, args ...any) {
	r.progress = append(r.progress, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Failure(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recordingReporter) Finding(f models.Finding) {
	r.findings = append(r.findings, f)
}
