package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref is an id reference the API sends either as a bare id or as an
// embedded document carrying _id. It is always written back as the bare id.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("json.Unmarshal: %w", err)
		}
		*r = Ref(s)
	case '{':
		var doc struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("json.Unmarshal: %w", err)
		}
		*r = Ref(doc.ID)
	default:
		return fmt.Errorf("ref: unexpected JSON %s", data)
	}

	return nil
}
