package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnowflake(t *testing.T) {
	id, err := ParseSnowflake("175928847299117063")

	require.NoError(t, err)
	assert.Equal(t, Snowflake(175928847299117063), id)
}

func TestParseSnowflake_Invalid(t *testing.T) {
	_, err := ParseSnowflake("not-a-number")

	require.Error(t, err)
}

func TestSnowflake_Timestamp(t *testing.T) {
	id := Snowflake(175928847299117063)

	expected := time.Date(2016, time.April, 30, 11, 18, 25, 796*int(time.Millisecond), time.UTC)
	assert.Equal(t, expected, id.Timestamp())
}

func TestSnowflake_JSON(t *testing.T) {
	id := Snowflake(123456789012345678)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"123456789012345678"`, string(data))

	var decoded Snowflake
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, id, decoded)
}

func TestSnowflake_UnmarshalBareNumber(t *testing.T) {
	var id Snowflake
	require.NoError(t, json.Unmarshal([]byte(`42`), &id))

	assert.Equal(t, Snowflake(42), id)
}

func TestSnowflake_UnmarshalNull(t *testing.T) {
	var id Snowflake
	require.NoError(t, json.Unmarshal([]byte(`null`), &id))

	assert.Equal(t, Snowflake(0), id)
}
