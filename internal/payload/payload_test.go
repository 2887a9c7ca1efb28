package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Valid(t *testing.T) {
	body := []byte("  {\"b\":1,\"a\":{\"z\":[1,2],\"y\":null}}\n")

	ev := Decode(body)
	require.True(t, ev.OK)
	assert.Equal(t, `{"b":1,"a":{"z":[1,2],"y":null}}`, string(ev.Raw))

	obj, ok := ev.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1"), obj["b"])
}

func TestDecode_StripsByteOrderMark(t *testing.T) {
	ev := Decode([]byte("\xef\xbb\xbf{\"a\":1}\n"))
	require.True(t, ev.OK)
	assert.Equal(t, `{"a":1}`, string(ev.Raw))
	assert.False(t, ev.EmptyLike())
}

func TestDecode_Malformed(t *testing.T) {
	for _, body := range []string{
		"",
		"   ",
		"not a json",
		`{"user_id":`,
		`{"a":1} trailing`,
		`{"a":1}{"b":2}`,
		`'single'`,
		"{\"a\":\"\xff\xfe\"}",
		"\xef\xbb\xbf",
		" \xef\xbb\xbf{\"a\":1}",
	} {
		ev := Decode([]byte(body))
		assert.False(t, ev.OK, "body %q", body)
		assert.Nil(t, ev.Raw, "body %q", body)
		assert.True(t, ev.EmptyLike(), "body %q", body)
	}
}

func TestEmptyLike(t *testing.T) {
	cases := []struct {
		body  string
		empty bool
	}{
		{`null`, true},
		{`false`, true},
		{`0`, true},
		{`0.0`, true},
		{`-0`, true},
		{`0e10`, true},
		{`""`, true},
		{`{}`, true},
		{`[]`, true},
		{` { } `, true},

		{`true`, false},
		{`1`, false},
		{`-0.5`, false},
		{`1e400`, false},
		{`"0"`, false},
		{`" "`, false},
		{`"false"`, false},
		{`[0]`, false},
		{`[null]`, false},
		{`{"a":null}`, false},
		{`{"user_id":"12345"}`, false},
	}
	for _, tc := range cases {
		ev := Decode([]byte(tc.body))
		require.True(t, ev.OK, "body %q should decode", tc.body)
		assert.Equal(t, tc.empty, ev.EmptyLike(), "body %q", tc.body)
	}
}

func TestEmptyLike_ZeroValue(t *testing.T) {
	assert.True(t, Event{}.EmptyLike())
}
