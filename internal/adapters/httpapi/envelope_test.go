package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	type payload struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}

	tests := []struct {
		name    string
		body    string
		want    payload
		wantErr string
	}{
		{name: "success", body: `{"success":true,"data":{"id":7,"title":"Drop"}}`, want: payload{ID: 7, Title: "Drop"}},
		{name: "failure message", body: `{"success":false,"error":{"message":"bad"}}`, wantErr: "bad"},
		{name: "failure without message", body: `{"success":false}`, wantErr: "Request failed"},
		{name: "failure with empty message", body: `{"success":false,"error":{"message":""}}`, wantErr: "Request failed"},
		{name: "malformed", body: `not json`, wantErr: "decode envelope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[payload](&Response{Body: []byte(tt.body)})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeFailureIsEnvelopeError(t *testing.T) {
	_, err := Decode[struct{}](&Response{Body: []byte(`{"success":false,"error":{"message":"bad","detail":{"field":"x"}}}`)})
	require.Error(t, err)
	assert.Equal(t, "bad", err.Error())

	var envelopeErr *EnvelopeError
	require.ErrorAs(t, err, &envelopeErr)
	assert.JSONEq(t, `{"field":"x"}`, string(envelopeErr.Detail))
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(nil))
	assert.NoError(t, Check(&Response{}))
	assert.NoError(t, Check(&Response{Body: []byte(`{"success":true,"message":"ok"}`)}))
	assert.EqualError(t, Check(&Response{Body: []byte(`{"success":false,"error":{"message":"nope"}}`)}), "nope")
}
