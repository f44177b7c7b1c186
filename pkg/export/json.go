package export

import (
	"encoding/json"
	"io"

	"registrar-hq/registrar/pkg/record"
)

// writeJSON emits the ResultSet as UTF-8 JSON with 4-space indentation.
// HTML escaping is disabled so characters like '&' survive verbatim.
// Field order follows Record insertion order.
func writeJSON(w io.Writer, rs record.ResultSet) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(rs)
}
