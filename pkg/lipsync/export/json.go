package export

import (
	"encoding/json"
	"io"

	"github.com/biolimbo/lip-sync-engine/pkg/iostate"
)

// JSON writes the Rhubarb JSON layout with times fixed to two decimals.
type JSON struct{}

func (JSON) Export(in Input, out io.Writer) error {
	w := writerFor(out)
	defer w.Save().Restore()
	w.SetFlags(iostate.Fixed)
	w.SetPrecision(2)

	name, err := json.Marshal(in.Name)
	if err != nil {
		return err
	}
	w.Str("{\n")
	w.Str("\t\"metadata\": {\n")
	w.Str("\t\t\"soundFile\": ").Str(string(name)).Str(",\n")
	w.Str("\t\t\"duration\": ").Float(seconds(in.Animation.Duration())).Str("\n")
	w.Str("\t},\n")
	w.Str("\t\"mouthCues\": [")
	first := true
	for c := range in.Animation.All() {
		if first {
			w.Str("\n")
			first = false
		} else {
			w.Str(",\n")
		}
		w.Str("\t\t{ \"start\": ").Float(seconds(c.Start))
		w.Str(", \"end\": ").Float(seconds(c.End))
		w.Str(", \"value\": \"").Str(in.Targets.Convert(c.Value).String()).Str("\" }")
	}
	if !first {
		w.Str("\n\t")
	}
	w.Str("]\n}\n")
	return w.Err()
}

// writerFor reuses a caller's *iostate.Writer so its formatting state is
// restored on return instead of leaking the exporter's settings.
func writerFor(out io.Writer) *iostate.Writer {
	if w, ok := out.(*iostate.Writer); ok {
		return w
	}
	return iostate.NewWriter(out)
}
