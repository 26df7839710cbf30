package twisted

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	c := Toy101()

	t.Run("EvenX", func(t *testing.T) {
		// G = (2, 17): x even, so the encoding is just y.
		require.Equal(t, []byte{0x11}, c.Marshal(c.Base()))
	})

	t.Run("OddX", func(t *testing.T) {
		// -G = (99, 17): x odd, sign bit set.
		require.Equal(t, []byte{0x91}, c.Marshal(c.Base().Negate()))
	})

	t.Run("Identity", func(t *testing.T) {
		require.Equal(t, []byte{0x01}, c.Marshal(c.Identity()))
	})

	t.Run("FixedWidth", func(t *testing.T) {
		bjj := BabyJubJub()
		require.Len(t, bjj.Marshal(bjj.Base()), 32)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("AllToyPoints", func(t *testing.T) {
		c := Toy101()
		for k := int64(0); k < 104; k++ {
			p := mustMul(t, c, k)
			decoded, err := c.Unmarshal(c.Marshal(p))
			require.NoError(t, err, "k=%d", k)
			require.True(t, decoded.Equal(p), "k=%d", k)
		}
	})

	t.Run("BabyJubJub", func(t *testing.T) {
		c := BabyJubJub()
		for _, k := range []int64{1, 2, 7, 123456789} {
			p := mustMul(t, c, k)
			decoded, err := c.Unmarshal(c.Marshal(p))
			require.NoError(t, err, "k=%d", k)
			require.True(t, decoded.Equal(p), "k=%d", k)
		}
	})
}

func TestUnmarshalRejects(t *testing.T) {
	c := Toy101()

	t.Run("WrongLength", func(t *testing.T) {
		_, err := c.Unmarshal([]byte{0x11, 0x00})
		require.ErrorIs(t, err, ErrInvalidEncoding)
		_, err = c.Unmarshal(nil)
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("YOutOfRange", func(t *testing.T) {
		// 102 >= p with the sign bit clear.
		_, err := c.Unmarshal([]byte{0x66})
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("NoPointWithThatY", func(t *testing.T) {
		// No x satisfies the curve equation for y = 3.
		_, err := c.Unmarshal([]byte{0x03})
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("OddSignForZeroX", func(t *testing.T) {
		// y = 1 forces x = 0, which cannot be odd.
		_, err := c.Unmarshal([]byte{0x81})
		require.ErrorIs(t, err, ErrInvalidEncoding)

		// Same for y = 100, the other point with x = 0.
		_, err = c.Unmarshal([]byte{0xE4})
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("ValidAfterClearingSign", func(t *testing.T) {
		// The failing encodings above are about the payload, not the
		// codec: 0x64 without the bogus sign bit decodes fine.
		p, err := c.Unmarshal([]byte{0x64})
		require.NoError(t, err)
		require.Equal(t, int64(0), p.X().Int64())
		require.Equal(t, int64(100), p.Y().Int64())
	})
}

func TestUnmarshalPicksSignedRoot(t *testing.T) {
	c := Toy101()
	// (74, 49) and (27, 49) share y = 49; the sign bit selects between them.
	even, err := c.Unmarshal([]byte{0x31})
	require.NoError(t, err)
	require.Equal(t, int64(74), even.X().Int64())

	odd, err := c.Unmarshal([]byte{0xB1})
	require.NoError(t, err)
	require.Equal(t, int64(27), odd.X().Int64())

	require.True(t, even.Negate().Equal(odd))
}

func TestUnmarshalForeignCurve(t *testing.T) {
	// A 32-byte baby jubjub encoding is not valid for the 1-byte toy
	// codec and vice versa.
	toy := Toy101()
	bjj := BabyJubJub()
	_, err := toy.Unmarshal(bjj.Marshal(bjj.Base()))
	require.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = bjj.Unmarshal(toy.Marshal(toy.Base()))
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestUnmarshalNeverPanics(t *testing.T) {
	c := Toy101()
	// Every single-byte input either decodes to an on-curve point or
	// fails cleanly.
	for b := 0; b < 256; b++ {
		p, err := c.Unmarshal([]byte{byte(b)})
		if err == nil {
			require.True(t, p.OnCurve(), "byte=%#x", b)
			require.Equal(t, []byte{byte(b)}, c.Marshal(p), "byte=%#x", b)
		} else {
			require.ErrorIs(t, err, ErrInvalidEncoding, "byte=%#x", b)
		}
	}
}

func TestMarshalWidthMatchesField(t *testing.T) {
	c := Toy101()
	require.Equal(t, c.Field().Size(), len(c.Marshal(c.Base())))
	require.Equal(t, 1, c.Field().Size())
}
