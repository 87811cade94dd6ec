package rancher

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBody(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantJSON  bool
		wantEmpty bool
	}{
		{name: "object", raw: `{"id":"1i1"}`, wantJSON: true},
		{name: "array", raw: `[1,2]`, wantJSON: true},
		{name: "string", raw: `"docker run"`, wantJSON: true},
		{name: "plain text", raw: `OK`, wantJSON: false},
		{name: "truncated", raw: `{"id":`, wantJSON: false},
		{name: "empty", raw: ``, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewBody([]byte(tt.raw))

			assert.Equal(t, tt.wantJSON, body.IsJSON())
			assert.Equal(t, tt.wantEmpty, body.IsEmpty())
			assert.Equal(t, tt.raw, body.String())
		})
	}
}

func TestBody_Decode(t *testing.T) {
	var container Container

	err := NewBody([]byte(`{"id":"1i1","imageUuid":"docker:nginx","labels":{"a":"b"}}`)).Decode(&container)
	require.NoError(t, err)
	assert.Equal(t, "1i1", container.ID)
	assert.Equal(t, "docker:nginx", container.ImageUUID)
	assert.Equal(t, "b", container.Labels["a"])

	assert.ErrorIs(t, NewBody(nil).Decode(&container), ErrEmptyBody)
	assert.ErrorIs(t, NewBody([]byte("OK")).Decode(&container), ErrNotJSON)

	var n int
	assert.Error(t, NewBody([]byte(`"text"`)).Decode(&n))
}

func TestBody_Field(t *testing.T) {
	body := NewBody([]byte(`{"id":"tok-1","nested":{"command":"docker run"},"data":[{"id":"1h1"}]}`))

	id, err := body.Field("id")
	require.NoError(t, err)
	assert.Equal(t, `"tok-1"`, id.String())
	assert.Equal(t, "tok-1", id.Value().String())

	command, err := body.Field("nested.command")
	require.NoError(t, err)
	assert.Equal(t, "docker run", command.Value().String())

	data, err := body.Field("data")
	require.NoError(t, err)

	var hosts []Host
	require.NoError(t, data.Decode(&hosts))
	require.Len(t, hosts, 1)
	assert.Equal(t, "1h1", hosts[0].ID)

	_, err = body.Field("missing")
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "missing")

	_, err = NewBody([]byte("OK")).Field("id")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestBody_Get(t *testing.T) {
	body := NewBody([]byte(`{"scale":3,"active":true}`))

	assert.Equal(t, int64(3), body.Get("scale").Int())
	assert.True(t, body.Get("active").Bool())
	assert.False(t, body.Get("nope").Exists())
	assert.False(t, NewBody([]byte("plain")).Get("scale").Exists())
	assert.False(t, NewBody([]byte("plain")).Value().Exists())
}

func TestBody_MarshalJSON(t *testing.T) {
	wrapped := map[string]*Body{
		"json":  NewBody([]byte(`{"id":"1"}`)),
		"raw":   NewBody([]byte(`plain "text"`)),
		"empty": NewBody(nil),
	}

	data, err := json.Marshal(wrapped)
	require.NoError(t, err)
	assert.JSONEq(t, `{"json":{"id":"1"},"raw":"plain \"text\"","empty":null}`, string(data))
}
