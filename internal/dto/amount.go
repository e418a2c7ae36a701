package dto

import (
	"bytes"
	"encoding/json"
)

// Amount carries a monetary value through JSON, accepting both the string
// form ("50") and the bare number form (50). It is kept as text so the
// service layer can reject a non-numeric value as an invalid amount rather
// than a malformed request body.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

func (a Amount) String() string { return string(a) }
