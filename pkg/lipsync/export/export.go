// Package export writes mouth animations in the formats understood by
// Rhubarb Lip Sync consumers.
package export

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/biolimbo/lip-sync-engine/pkg/lipsync"
)

// MemoryName identifies audio that came from a memory buffer rather than a
// file.
const MemoryName = "memory://pcm"

// Input is everything an Exporter needs.
type Input struct {
	// Name identifies the audio source, for example MemoryName.
	Name      string
	Animation *lipsync.Timeline[lipsync.Shape]
	Targets   lipsync.ShapeSet
}

// Exporter writes an animation to w.
type Exporter interface {
	Export(in Input, w io.Writer) error
}

var exporters = map[string]Exporter{
	"json":    JSON{},
	"tsv":     TSV{},
	"msgpack": Msgpack{},
}

// ByName returns the exporter registered under name.
func ByName(name string) (Exporter, error) {
	e, ok := exporters[name]
	if !ok {
		return nil, fmt.Errorf("export: unknown format %q (want one of %v)", name, Names())
	}
	return e, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(exporters))
	for n := range exporters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Document is the structured form of an exported animation.
type Document struct {
	Metadata  Metadata `json:"metadata" msgpack:"metadata"`
	MouthCues []Cue    `json:"mouthCues" msgpack:"mouthCues"`
}

// Metadata describes the analyzed audio.
type Metadata struct {
	SoundFile string  `json:"soundFile" msgpack:"soundFile" jsonschema:"identifier of the analyzed audio"`
	Duration  float64 `json:"duration" msgpack:"duration" jsonschema:"audio length in seconds"`
}

// Cue is one mouth shape held over [Start, End) seconds.
type Cue struct {
	Start float64 `json:"start" msgpack:"start" jsonschema:"start time in seconds"`
	End   float64 `json:"end" msgpack:"end" jsonschema:"end time in seconds"`
	Value string  `json:"value" msgpack:"value" jsonschema:"mouth shape letter A-H or X"`
}

// NewDocument converts in to a Document. Times are rounded to centiseconds.
func NewDocument(in Input) Document {
	doc := Document{
		Metadata:  Metadata{SoundFile: in.Name, Duration: seconds(in.Animation.Duration())},
		MouthCues: make([]Cue, 0, in.Animation.Len()),
	}
	for c := range in.Animation.All() {
		doc.MouthCues = append(doc.MouthCues, Cue{
			Start: seconds(c.Start),
			End:   seconds(c.End),
			Value: in.Targets.Convert(c.Value).String(),
		})
	}
	return doc
}

// Shapes returns the distinct cue values of doc in order of first use.
func (doc Document) Shapes() []string {
	var out []string
	for _, c := range doc.MouthCues {
		if !slices.Contains(out, c.Value) {
			out = append(out, c.Value)
		}
	}
	return out
}

// Timeline rebuilds the animation described by doc.
func (doc Document) Timeline() (*lipsync.Timeline[lipsync.Shape], error) {
	tl := lipsync.NewTimeline[lipsync.Shape](fromSeconds(doc.Metadata.Duration))
	for _, c := range doc.MouthCues {
		sh, err := lipsync.ParseShape(c.Value)
		if err != nil {
			return nil, err
		}
		if err := tl.Add(fromSeconds(c.Start), fromSeconds(c.End), sh); err != nil {
			return nil, err
		}
	}
	return tl, nil
}

func fromSeconds(s float64) time.Duration {
	return time.Duration(math.Round(s*100)) * 10 * time.Millisecond
}

func seconds(d time.Duration) float64 {
	return float64(d.Round(10*time.Millisecond)) / float64(time.Second)
}
