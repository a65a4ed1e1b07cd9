package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJSON renders v as JSON indented by two spaces, the format used when
// configuration content is written to the log. HTML characters are left
// unescaped so the output matches the source document.
func PrettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("error marshaling json: %w", err)
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
