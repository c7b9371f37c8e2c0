package common

import (
	"bytes"
	"encoding/json"
)

const standardIndentation = "  "

// ToStandardJSON returns the indented JSON representation of `i`, without HTML escaping.
func ToStandardJSON(i any) (string, error) {
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", standardIndentation)
	err := encoder.Encode(i)
	return buffer.String(), err
}
