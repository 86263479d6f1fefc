package stack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRequest(t *testing.T) {
	message, err := FormatRequest(map[string]string{"kind": "students"})
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(message, &envelope))
	assert.NotEmpty(t, envelope["id"])

	payload, err := DecodeDataNest(message)
	require.NoError(t, err)
	assert.Equal(t, "students", payload["kind"])
}

func TestDecodeDataNestWithoutData(t *testing.T) {
	message, err := FormatRequest(nil)
	require.NoError(t, err)

	_, err = DecodeDataNest(message)
	assert.Error(t, err)
}
