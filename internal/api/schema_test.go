package api_test

import (
	"encoding/json"
	"testing"

	"github.com/k4g4/Personal-Page/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar_WireFormat(t *testing.T) {
	tests := []struct {
		name string
		bar  api.Bar
		json string
	}{
		{name: "first", bar: api.First(), json: `"first"`},
		{name: "second", bar: api.Second(42), json: `{"second":42}`},
		{name: "third", bar: api.Third("foo"), json: `{"third":{"thing":"foo"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.bar)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			var got api.Bar
			require.NoError(t, json.Unmarshal([]byte(tt.json), &got))
			assert.Equal(t, tt.bar, got)
		})
	}
}

func TestBar_UnmarshalRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "unknown tag", input: `"fourth"`, wantErr: "unknown variant"},
		{name: "unknown key", input: `{"fourth":1}`, wantErr: "unknown variant"},
		{name: "two keys", input: `{"second":1,"first":null}`, wantErr: "exactly one"},
		{name: "negative second", input: `{"second":-1}`, wantErr: "invalid second"},
		{name: "third without thing", input: `{"third":{}}`, wantErr: "missing field `thing`"},
		{name: "number", input: `7`, wantErr: "expected a bar variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got api.Bar
			err := json.Unmarshal([]byte(tt.input), &got)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFoo_RequiresFields(t *testing.T) {
	var foo api.Foo
	require.ErrorContains(t, json.Unmarshal([]byte(`{"hello":true}`), &foo), "missing field `bars`")
	require.ErrorContains(t, json.Unmarshal([]byte(`{"bars":[]}`), &foo), "missing field `hello`")

	require.NoError(t, json.Unmarshal([]byte(`{"bars":["first",{"second":2}],"hello":false}`), &foo))
	assert.Equal(t, api.Foo{Bars: []api.Bar{api.First(), api.Second(2)}}, foo)
}

func TestSampleFoo_JSON(t *testing.T) {
	data, err := json.Marshal(api.SampleFoo())
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"bars":["first",{"second":42},{"third":{"thing":"foo"}}],"hello":true}`,
		string(data))
}
