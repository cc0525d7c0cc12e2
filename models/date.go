package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateMillis is a meal date stored as epoch milliseconds. Clients may send
// it either as an integer (epoch ms) or as an RFC3339 string; it always
// marshals back as the integer form. Anything else is rejected.
type DateMillis int64

func (d DateMillis) Time() time.Time {
	return time.UnixMilli(int64(d)).UTC()
}

func (d DateMillis) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(d))
}

func (d *DateMillis) UnmarshalJSON(data []byte) error {
	// unmarshaling null into an int64 is a silent no-op, reject it up front
	if string(data) == "null" {
		return fmt.Errorf("date must not be null")
	}

	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		*d = DateMillis(ms)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be epoch milliseconds or an RFC3339 string")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = DateMillis(t.UnixMilli())
	return nil
}
