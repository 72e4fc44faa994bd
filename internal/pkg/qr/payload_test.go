package qr

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfficeCheckPayloadEncode(t *testing.T) {
	address := "1 Main St"
	payload := NewOfficeCheckPayload("tok123", "Главный офис", &address, "Acme")

	encoded, err := payload.Encode()
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(encoded), &m))

	assert.Equal(t, "office_check", m["type"])
	assert.Equal(t, "tok123", m["token"])
	assert.Equal(t, "Главный офис", m["office_name"])
	assert.Equal(t, "1 Main St", m["address"])
	assert.Equal(t, "Acme", m["organization"])
}

func TestOfficeCheckPayloadNilAddress(t *testing.T) {
	payload := NewOfficeCheckPayload("tok123", "Склад", nil, "Acme")

	encoded, err := payload.Encode()
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(encoded), &m))

	// address must be present and null, not omitted
	v, ok := m["address"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestEmployeeRegistrationPayloadEncode(t *testing.T) {
	expires := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	payload := NewEmployeeRegistrationPayload("regtok", "Acme", expires)

	encoded, err := payload.Encode()
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(encoded), &m))

	assert.Equal(t, "employee_registration", m["type"])
	assert.Equal(t, "regtok", m["token"])
	assert.Equal(t, "Acme", m["organization"])
	assert.Equal(t, "2024-01-15T12:00:00Z", m["expires_at"])
}
