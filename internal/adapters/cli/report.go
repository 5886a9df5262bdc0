package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"dategen/internal/domain/entities"
	"dategen/internal/ports/output"
)

// Reporter prints localized run summaries.
type Reporter struct {
	out    io.Writer
	msgs   output.Messages
	locale string
}

func NewReporter(out io.Writer, msgs output.Messages, locale string) *Reporter {
	return &Reporter{out: out, msgs: msgs, locale: locale}
}

// Summary prints the module counts and the excluded languages. For an
// in-memory run it also lists the captured paths.
func (r *Reporter) Summary(summary *entities.Summary, captured map[string][]byte, inMemory bool) {
	r.line("dates_generated", map[string]any{"Count": summary.DateModules})
	r.line("numerals_generated", map[string]any{"Count": summary.NumeralModules})
	if len(summary.Excluded) > 0 {
		r.line("languages_excluded", map[string]any{
			"Count":     len(summary.Excluded),
			"Languages": strings.Join(summary.Excluded, ", "),
		})
	}

	if !inMemory {
		return
	}
	r.line("in_memory_run", nil)
	paths := make([]string, 0, len(captured))
	for p := range captured {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(r.out, "  %s (%d bytes)\n", p, len(captured[p]))
	}
}

// Check prints the outcome of a check run.
func (r *Reporter) Check(stale []string) {
	if len(stale) == 0 {
		r.line("check_clean", nil)
		return
	}
	r.line("check_stale", map[string]any{"Count": len(stale)})
	for _, p := range stale {
		fmt.Fprintf(r.out, "  %s\n", p)
	}
}

func (r *Reporter) line(key string, data map[string]any) {
	fmt.Fprintln(r.out, r.msgs.Message(r.locale, key, data))
}
