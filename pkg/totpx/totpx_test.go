package totpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "JBSWY3DPEHPK3PXP"

func TestCodeIsDeterministic(t *testing.T) {
	t.Parallel()

	at := time.Unix(1_700_000_000, 0)

	first, err := Code(testSecret, at)
	require.NoError(t, err)
	require.Len(t, first, 6)

	// Same step, same code.
	again, err := Code(testSecret, at.Add(3*time.Second))
	require.NoError(t, err)
	require.Equal(t, first, again)

	// Next step rolls the code over.
	next, err := Code(testSecret, at.Add(Period*time.Second))
	require.NoError(t, err)
	require.NotEqual(t, first, next)
}

func TestWindowCodes(t *testing.T) {
	t.Parallel()

	at := time.Unix(1_700_000_000, 0)

	codes, err := WindowCodes(testSecret, at)
	require.NoError(t, err)
	require.Len(t, codes, 2*Skew+1)

	current, err := Code(testSecret, at)
	require.NoError(t, err)
	require.Equal(t, current, codes[Skew])

	prev, err := Code(testSecret, at.Add(-Period*time.Second))
	require.NoError(t, err)
	require.Equal(t, prev, codes[0])

	next, err := Code(testSecret, at.Add(Period*time.Second))
	require.NoError(t, err)
	require.Equal(t, next, codes[len(codes)-1])
}

func TestValidateSkewWindow(t *testing.T) {
	t.Parallel()

	at := time.Unix(1_700_000_000, 0)

	code, err := Code(testSecret, at)
	require.NoError(t, err)

	require.True(t, Validate(testSecret, code, at))

	// One step of drift either way is tolerated.
	require.True(t, Validate(testSecret, code, at.Add(Period*time.Second)))
	require.True(t, Validate(testSecret, code, at.Add(-Period*time.Second)))

	// Two steps away is outside the window.
	require.False(t, Validate(testSecret, code, at.Add(2*Period*time.Second)))

	require.False(t, Validate(testSecret, "000000", at))
	require.False(t, Validate(testSecret, "not-a-code", at))
}
