// internal/recommend/print.go
package recommend

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	inDeckStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))

	lowSynergyLabel = color.New(color.FgRed).SprintFunc()
	offThemeLabel   = color.New(color.FgYellow).SprintFunc()
)

// PrintRecommendations writes a recommendation list under a title.
func PrintRecommendations(out io.Writer, recs []Recommendation, title string) {
	fmt.Fprintf(out, "\n%s\n", titleStyle.Render(title))
	for _, rec := range recs {
		line := fmt.Sprintf("  %s: %.0f%% synergy, in %d decks", rec.Name, rec.Synergy*100, rec.NumDecks)
		if rec.InDeck {
			line += " " + inDeckStyle.Render("[IN DECK]")
		}
		fmt.Fprintln(out, line)
	}
}

// PrintAnalysis writes the cut analysis report: coverage, low-synergy
// candidates, and off-theme cards.
func PrintAnalysis(out io.Writer, analysis *Analysis) {
	fmt.Fprintf(out, "EDHREC coverage: %.0f%% of cards appear in EDHREC recommendations\n\n", analysis.Coverage*100)

	if len(analysis.LowSynergy) > 0 {
		fmt.Fprintf(out, "%s\n", lowSynergyLabel("Low synergy cards (potential cuts):"))
		for _, c := range analysis.LowSynergy {
			fmt.Fprintf(out, "  %+.0f%% %s - %s\n", *c.Synergy*100, c.Name, c.TypeLine)
		}
		fmt.Fprintln(out)
	}

	if len(analysis.OffTheme) > 0 {
		fmt.Fprintf(out, "%s\n", offThemeLabel(fmt.Sprintf("Off-theme cards (%d not in EDHREC data):", len(analysis.OffTheme))))
		for _, c := range analysis.OffTheme {
			fmt.Fprintf(out, "  %s - %s\n", c.Name, c.TypeLine)
		}
	}
}

// PrintCuts writes suggested cuts with their reasons.
func PrintCuts(out io.Writer, cuts []CutCandidate) {
	for i, c := range cuts {
		fmt.Fprintf(out, "%d. %s - %s\n", i+1, c.Name, c.Reason)
	}
}
