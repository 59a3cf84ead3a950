package export

import (
	"io"

	"github.com/biolimbo/lip-sync-engine/pkg/iostate"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync"
)

// TSV writes one "start<TAB>shape" line per cue followed by a final line
// putting the mouth at rest at the end of the animation.
type TSV struct{}

func (TSV) Export(in Input, out io.Writer) error {
	w := writerFor(out)
	return w.Guard(func() error {
		w.SetFlags(iostate.Fixed)
		w.SetPrecision(2)
		for c := range in.Animation.All() {
			w.Float(seconds(c.Start)).Str("\t").Str(in.Targets.Convert(c.Value).String()).Str("\n")
		}
		rest := in.Targets.Convert(lipsync.ShapeX)
		w.Float(seconds(in.Animation.Duration())).Str("\t").Str(rest.String()).Str("\n")
		return w.Err()
	})
}
