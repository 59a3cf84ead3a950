package export

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack writes the Document as MessagePack.
type Msgpack struct{}

func (Msgpack) Export(in Input, w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(NewDocument(in))
}
