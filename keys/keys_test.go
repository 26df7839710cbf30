package keys

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/eddy/group"
	"github.com/f3rmion/eddy/twisted"
)

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestGenerate(t *testing.T) {
	c := twisted.Toy101()

	for i := 0; i < 50; i++ {
		kp, err := Generate(rand.Reader, c)
		require.NoError(t, err)

		require.Positive(t, kp.D.Sign())
		require.Negative(t, kp.D.Cmp(c.Order()))
		require.True(t, kp.Public.OnCurve())

		expected, err := group.ScalarMult(c, kp.D, c.Base())
		require.NoError(t, err)
		require.True(t, kp.Public.Equal(expected), "public key is not D*G")
	}
}

func TestGenerateBabyJubJub(t *testing.T) {
	c := twisted.BabyJubJub()
	kp, err := Generate(rand.Reader, c)
	require.NoError(t, err)
	require.True(t, kp.Public.OnCurve())
	require.False(t, kp.Public.IsIdentity())
}

func TestGenerateRandFailure(t *testing.T) {
	_, err := Generate(failReader{}, twisted.Toy101())
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
