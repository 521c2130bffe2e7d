package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// IDs is a list of snowflake ids that encodes each id as a JSON string,
// matching the `json:",string"` id fields.
type IDs []int64

func (ids IDs) MarshalJSON() ([]byte, error) {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return json.Marshal(out)
}

func (ids *IDs) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed := make(IDs, len(raw))
	for i, s := range raw {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", s, err)
		}
		parsed[i] = id
	}
	*ids = parsed
	return nil
}
