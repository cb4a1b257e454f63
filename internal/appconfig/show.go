// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	effective := fallback
	if cfg != nil {
		effective = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:           %v\n", effective.Debug)
	fmt.Fprintf(out, "  JSON Mode:       %v\n", effective.JSONMode)
	fmt.Fprintf(out, "  Decks Dir:       %s\n", effective.DecksDirPath())
	fmt.Fprintf(out, "  Log File:        %s\n", effective.LogFilePath())
	fmt.Fprintf(out, "  Request Timeout: %s\n", effective.RequestTimeout())
	fmt.Fprintf(out, "  Article Timeout: %s\n", effective.ArticleTimeout())
	fmt.Fprintf(out, "  Moxfield URL:    %s\n", effective.MoxfieldBaseURL())
	fmt.Fprintf(out, "  EDHREC URL:      %s\n", effective.EdhrecBaseURL())
	fmt.Fprintf(out, "  Recommend Limit: %d\n", effective.RecommendCount())
	fmt.Fprintf(out, "  Suggest Limit:   %d\n", effective.SuggestCount())
	fmt.Fprintf(out, "  Cut Limit:       %d\n", effective.CutCount())
	if len(effective.ExtraStaples) > 0 {
		fmt.Fprintf(out, "  Extra Staples:   %s\n", strings.Join(effective.ExtraStaples, ", "))
	}
}
