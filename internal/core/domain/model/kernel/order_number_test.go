package kernel_test

import (
	"testing"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	t.Run("formats with three digits", func(t *testing.T) {
		tests := []struct {
			seq  int
			want string
		}{
			{1, "001"},
			{42, "042"},
			{999, "999"},
			{1000, "1000"},
		}

		for _, tt := range tests {
			n, err := kernel.NewOrderNumber(tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
			assert.Equal(t, tt.seq, n.Seq())
		}
	})

	t.Run("rejects non-positive sequences", func(t *testing.T) {
		for _, seq := range []int{0, -3} {
			_, err := kernel.NewOrderNumber(seq)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestParseOrderNumber(t *testing.T) {
	t.Run("accepts padded and plain forms", func(t *testing.T) {
		padded, err := kernel.ParseOrderNumber("007")
		require.NoError(t, err)

		plain, err := kernel.ParseOrderNumber(" 7 ")
		require.NoError(t, err)

		assert.True(t, padded.IsEqual(plain))
		assert.Equal(t, "007", plain.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.ParseOrderNumber("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		for _, input := range []string{"abc", "-1", "1.5", "000"} {
			_, err = kernel.ParseOrderNumber(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", input)
		}
	})
}

func TestOrderNumber_Next(t *testing.T) {
	var zero kernel.OrderNumber
	require.ErrorIs(t, zero.Validate(), kernel.ErrOrderNumberIsNotConstructed)

	first := zero.Next()
	require.NoError(t, first.Validate())
	assert.Equal(t, "001", first.String())
	assert.Equal(t, "002", first.Next().String())
}

func TestGuestID(t *testing.T) {
	id := kernel.NewGuestID()

	assert.True(t, kernel.IsGuestID(id))
	assert.NotEqual(t, id, kernel.NewGuestID())
	assert.False(t, kernel.IsGuestID("C100"))
	assert.True(t, kernel.IsGuestID("guest_legacy"))
}
