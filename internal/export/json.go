package export

import (
	"encoding/json"
	"io"
)

// WriteJSON writes v as JSON indented by two spaces.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
