package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Number is an integer that tolerates being sent by the server either as a
// JSON number or as a quoted string. Identifiers and counters in API payloads
// arrive in both forms depending on the endpoint, and ownership checks compare
// them numerically.
type Number int64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*n = Number(v)
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

func (n Number) Int64() int64 { return int64(n) }
