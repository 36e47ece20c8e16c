package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidNumberText = errors.New("expected a number or a string")

// NumberText accepts a JSON number or string and keeps its text, so form
// fields can be posted as typed ("2", "", "abc") or as numbers.
type NumberText string

func (n *NumberText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberText(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return ErrInvalidNumberText
	}
	*n = NumberText(num.String())
	return nil
}

func (n NumberText) String() string { return string(n) }
