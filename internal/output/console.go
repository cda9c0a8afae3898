package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/tracker-tv/codeowners-audit/models"
)

// Console writes human-readable audit lines. Quiet mode drops progress
// narration but never findings or failures.
type Console struct {
	writer io.Writer
	quiet  bool

	faint *color.Color
	warn  *color.Color
	fail  *color.Color
	ok    *color.Color
}

func NewConsole(w io.Writer, quiet, noColor bool) *Console {
	if w == nil {
		w = os.Stdout
	}

	c := &Console{
		writer: w,
		quiet:  quiet,
		faint:  color.New(color.Faint),
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed),
		ok:     color.New(color.FgGreen),
	}
	if noColor {
		for _, col := range []*color.Color{c.faint, c.warn, c.fail, c.ok} {
			col.DisableColor()
		}
	}

	return c
}

func (c *Console) Progress(format string, args ...any) {
	if c.quiet {
		return
	}
	_, _ = c.faint.Fprintf(c.writer, format+"\n", args...)
}

func (c *Console) Failure(format string, args ...any) {
	_, _ = c.fail.Fprintf(c.writer, format+"\n", args...)
}

func (c *Console) Finding(f models.Finding) {
	switch f.Kind {
	case models.FindingMissingCodeowners:
		_, _ = c.fail.Fprintf(c.writer, "  CODEOWNERS file not found for %s.\n", f.Repository.FullName)
	case models.FindingNoWriteAccess:
		line := fmt.Sprintf("  %s does NOT have write access for %s/%s", f.Owner.Raw, f.Repository.FullName, f.Path)
		if !c.quiet {
			line += " (" + accessDetail(f.Access) + ")"
		}
		_, _ = c.warn.Fprintln(c.writer, line)
	}
}

// Ownership prints which rule owns filePath and whether each of its owners
// can write to the repository.
func (c *Console) Ownership(repo models.Repository, filePath string, file models.CodeownersFile, rule models.Rule, results []models.AccessResult) {
	_, _ = fmt.Fprintf(c.writer, "%s/%s is owned by %q (%s line %d)\n", repo.FullName, strings.TrimPrefix(filePath, "/"), rule.Pattern, file.Path, rule.Line)

	for _, r := range results {
		if r.HasWrite() {
			_, _ = c.ok.Fprintf(c.writer, "  %s %s has write access (%s)\n", r.Owner.Kind, r.Owner.Raw, r.Permission)
			continue
		}
		_, _ = c.warn.Fprintf(c.writer, "  %s %s does NOT have write access (%s)\n", r.Owner.Kind, r.Owner.Raw, accessDetail(r))
	}
}

func accessDetail(r models.AccessResult) string {
	switch {
	case r.Status == models.AccessUnresolved:
		return "lookup failed"
	case r.Permission == "" && r.Owner.IsTeam():
		return "team has no access"
	case r.Permission == "":
		return "no access"
	default:
		return "permission: " + r.Permission
	}
}
