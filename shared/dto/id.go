package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a backend identifier that may arrive as a JSON string or number.
// Numeric identifiers are written back as numbers.
type ID string

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}

	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid identifier %s: %w", data, err)
	}

	*id = ID(n.String())

	return nil
}

// numeric holds for a canonical JSON integer: digits only, no leading zero.
func (id ID) numeric() bool {
	if id == "" || (len(id) > 1 && id[0] == '0') {
		return false
	}

	for _, c := range []byte(id) {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func (id ID) String() string {
	return string(id)
}
