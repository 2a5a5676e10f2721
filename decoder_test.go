package gadt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinDecoders(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		v, ok := Int.Decode("100001")
		require.True(t, ok)
		require.Equal(t, 100001, v)

		_, ok = Int.Decode("abc")
		require.False(t, ok, "non-numeric token must be a non-match, not a panic")

		_, ok = Int.Decode("100001.1")
		require.False(t, ok)
	})

	t.Run("int32 and int64", func(t *testing.T) {
		v32, ok := Int32.Decode("42")
		require.True(t, ok)
		require.Equal(t, int32(42), v32)

		v64, ok := Int64.Decode("9223372036854775807")
		require.True(t, ok)
		require.Equal(t, int64(9223372036854775807), v64)

		_, ok = Int32.Decode("9999999999999999999")
		require.False(t, ok, "out-of-range int32 token must not match")
	})

	t.Run("float", func(t *testing.T) {
		v, ok := Float.Decode("100001.1")
		require.True(t, ok)
		require.InDelta(t, 100001.1, v, 0.0000001)

		_, ok = Float.Decode("abc")
		require.False(t, ok)
	})

	t.Run("bool", func(t *testing.T) {
		v, ok := Bool.Decode("true")
		require.True(t, ok)
		require.True(t, v)

		v, ok = Bool.Decode("false")
		require.True(t, ok)
		require.False(t, v)

		_, ok = Bool.Decode("123456")
		require.False(t, ok, "an int token must not decode as bool")
	})

	t.Run("string", func(t *testing.T) {
		v, ok := String.Decode("bikal")
		require.True(t, ok)
		require.Equal(t, "bikal", v)

		v, ok = String.Decode("")
		require.True(t, ok, "string decoder is total; it never rejects")
		require.Equal(t, "", v)
	})
}

func TestNewDecoder_Pure(t *testing.T) {
	calls := 0
	d := NewDecoder("counting", func(s string) (int, bool) {
		calls++
		return len(s), true
	})

	v1, ok1 := d.Decode("abc")
	v2, ok2 := d.Decode("abc")
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, v1, v2)
	require.Equal(t, 2, calls)
}
