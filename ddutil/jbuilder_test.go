package ddutil_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ddfmt/ddfmt-go/ddutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommaPlacement(t *testing.T) {
	var b ddutil.JBuilder
	b.AppendByte('{')
	b.AddSafeKey("a")
	b.AddInt64(1)
	b.AddSafeKey("b")
	b.AddInt64(2)
	b.AppendByte('}')
	assert.Equal(t, `{"a":1,"b":2}`, string(b.B))
}

func TestKeyOrderIsInsertionOrder(t *testing.T) {
	var b ddutil.JBuilder
	b.AppendByte('{')
	for _, k := range []string{"zebra", "apple", "mango"} {
		b.AddKey(k)
		b.AddBool(true)
	}
	b.AppendByte('}')
	assert.Equal(t, `{"zebra":true,"apple":true,"mango":true}`, string(b.B))
}

func TestEscaping(t *testing.T) {
	cases := map[string]string{
		`plain`:        `"plain"`,
		"tab\there":    `"tab\there"`,
		"new\nline":    `"new\nline"`,
		`back\slash`:   `"back\\slash"`,
		`quo"te`:       `"quo\"te"`,
		"ctrl\x01char": "\"ctrl\\u0001char\"",
		"héllo":        `"héllo"`,
	}
	for in, want := range cases {
		var b ddutil.JBuilder
		b.AddString(in)
		assert.Equal(t, want, string(b.B), "input %q", in)

		var round string
		require.NoError(t, json.Unmarshal(b.B, &round), "input %q", in)
		assert.Equal(t, in, round, "round trip %q", in)
	}
}

func TestAddTimeLayout(t *testing.T) {
	var b ddutil.JBuilder
	b.AddTime(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, `"2022-01-01T00:00:00.000000000+00:00"`, string(b.B))

	b.Reset()
	loc := time.FixedZone("plus2", 2*60*60)
	b.AddTime(time.Date(2022, 1, 1, 2, 0, 0, 123456789, loc))
	assert.Equal(t, `"2022-01-01T00:00:00.123456789+00:00"`, string(b.B),
		"rendered in UTC regardless of the value's zone")
}

func TestFloatAndUint(t *testing.T) {
	var b ddutil.JBuilder
	b.AddFloat64(1.25)
	b.AppendByte(' ')
	b.AddUint64(1<<64 - 1)
	assert.Equal(t, "1.25 18446744073709551615", string(b.B))
}
