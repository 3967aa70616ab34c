// Package reports renders a run report for humans or for tooling. The
// JSON layout is a stable contract, the text layout is not.
package reports

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hailystevens/unresolver/vo"
)

const rule = "======================================================================"

// WriteJSON emits the structural serialization of the run report.
func WriteJSON(w io.Writer, run vo.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// WriteText emits the human readable summary. Broken references are
// always listed, valid ones only when showValid is set.
func WriteText(w io.Writer, run vo.RunReport, showValid bool) {
	totals := run.Totals()

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Link Check Results")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Files checked:", totals.Files)
	fmt.Fprintln(w, "Total links:", totals.Links)
	fmt.Fprintln(w, "Broken links:", totals.Broken)
	fmt.Fprintln(w, rule)

	for _, doc := range run {
		if doc.Error != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "[ERR]", doc.File)
			fmt.Fprintln(w, "   Error:", doc.Error)
			continue
		}
		broken := filterStatus(doc.Links, vo.StatusBroken)
		if len(broken) == 0 && !showValid {
			continue
		}
		fmt.Fprintln(w)
		if doc.Title != "" {
			fmt.Fprintf(w, "[DOC] %s (%s)\n", doc.File, strings.TrimSpace(doc.Title))
		} else {
			fmt.Fprintln(w, "[DOC]", doc.File)
		}
		if len(broken) > 0 {
			fmt.Fprintln(w, "   Broken links:", len(broken))
			printReferences(w, broken)
		}
		if showValid {
			valid := filterStatus(doc.Links, vo.StatusValid)
			if len(valid) > 0 {
				fmt.Fprintln(w, "   Valid links:", len(valid))
				printReferences(w, valid)
			}
		}
	}
}

func printReferences(w io.Writer, refs []vo.CheckedReference) {
	for _, ref := range refs {
		fmt.Fprintf(w, "      Line %d: <%s %s=%q>\n", ref.Line, ref.Tag, ref.Attr, ref.URL)
		fmt.Fprintln(w, "      ->", ref.Reason)
	}
}

func filterStatus(refs []vo.CheckedReference, status vo.VerdictStatus) []vo.CheckedReference {
	var out []vo.CheckedReference
	for _, ref := range refs {
		if ref.Status == status {
			out = append(out, ref)
		}
	}
	return out
}
