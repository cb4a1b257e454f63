// internal/guides/print.go
package guides

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mwiater/deckhand/internal/util"
)

// summaryMaxRunes caps guide summaries in listings.
const summaryMaxRunes = 150

var sourceLabel = color.New(color.FgCyan, color.Bold).SprintFunc()

// PrintGuides writes a numbered guide listing with source tags and
// truncated summaries.
func PrintGuides(out io.Writer, guideList []Guide) {
	fmt.Fprintf(out, "\nFound %d guides/resources:\n\n", len(guideList))
	for i, g := range guideList {
		fmt.Fprintf(out, "%d. %s %s\n", i+1, sourceLabel(fmt.Sprintf("[%s]", strings.ToUpper(g.Source))), g.Title)
		fmt.Fprintf(out, "   %s\n", g.URL)
		if g.Summary != "" {
			fmt.Fprintf(out, "   %s\n", util.TruncateRunes(g.Summary, summaryMaxRunes))
		}
		fmt.Fprintln(out)
	}
}
