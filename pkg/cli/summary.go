package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/lipsync/export"
)

// Summary describes a finished analysis for display.
type Summary struct {
	Source     string
	SampleRate int
	Bytes      int64
	Elapsed    time.Duration
	Document   export.Document
}

// Render draws s as a Frame.
func (s Summary) Render(styles Styles, width int) string {
	doc := s.Document
	duration := time.Duration(doc.Metadata.Duration * float64(time.Second))

	info := []string{
		fmt.Sprintf("source    %s", s.Source),
		fmt.Sprintf("duration  %s", FormatDuration(duration)),
		fmt.Sprintf("rate      %d Hz", s.SampleRate),
		fmt.Sprintf("output    %s", FormatBytes(s.Bytes)),
	}

	// Time spent in each shape, in order of first use.
	held := make(map[string]float64)
	for _, c := range doc.MouthCues {
		held[c.Value] += c.End - c.Start
	}
	var shapes []string
	for _, v := range doc.Shapes() {
		share := 0.0
		if doc.Metadata.Duration > 0 {
			share = held[v] / doc.Metadata.Duration
		}
		bar := strings.Repeat("█", int(share*20+0.5))
		shapes = append(shapes, fmt.Sprintf("%s %-20s %5.1f%%", v, bar, share*100))
	}

	cues := make([]string, 0, len(doc.MouthCues))
	for _, c := range doc.MouthCues {
		cues = append(cues, fmt.Sprintf("%6.2f  %6.2f  %s", c.Start, c.End, c.Value))
	}

	return Frame{
		Styles: styles,
		Title:  "lipsync",
		Status: fmt.Sprintf("%d cues", len(doc.MouthCues)),
		Sections: []Section{
			{Label: "Audio", Lines: info},
			{Label: "Shapes", Lines: shapes},
			{Label: "Cues", Lines: cues, MaxLines: 12},
		},
		Footer: "analyzed in " + FormatDuration(s.Elapsed),
	}.Render(width)
}
