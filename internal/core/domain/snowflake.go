package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Epoch is the platform epoch in milliseconds since the Unix epoch. The top
// 42 bits of a snowflake count milliseconds from this point.
const Epoch = 1420070400000

// Snowflake is a 64-bit unsigned entity identifier, unique within an entity
// namespace and monotonically increasing with creation time.
type Snowflake uint64

// ParseSnowflake parses a base-10 snowflake identifier.
func ParseSnowflake(s string) (Snowflake, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse snowflake %q: %w", s, err)
	}

	return Snowflake(id), nil
}

// String returns the base-10 representation of the snowflake.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Timestamp returns the creation time encoded in the snowflake.
func (s Snowflake) Timestamp() time.Time {
	ms := int64(s>>22) + Epoch

	return time.UnixMilli(ms).UTC()
}

// MarshalJSON encodes the snowflake as a decimal string, matching the wire
// format of the platform.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts either a decimal string or a bare number.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0

		return nil
	}

	id, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse snowflake %q: %w", data, err)
	}

	*s = Snowflake(id)

	return nil
}
