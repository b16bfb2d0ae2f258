package interval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_FormatRoundTrip(t *testing.T) {
	months := []int64{0, 1, 11, 12, 13, 25}
	days := []int64{0, 1, 7, 40}
	seconds := []int64{0, 1, 59, 3600, 3661, 90061, 360000}

	for _, m := range months {
		for _, d := range days {
			for _, s := range seconds {
				want := New(m, d, s)
				t.Run(fmt.Sprintf("%d_%d_%d", m, d, s), func(t *testing.T) {
					got, err := Parse(want.String())
					require.NoError(t, err, "formatted as %q", want.String())
					require.Equal(t, want, got)
				})
			}
		}
	}
}

func TestParse_FormatRoundTripOfDerivedValues(t *testing.T) {
	v := MustParse("1 year").Combine(MustParse("3 weeks")).Combine(MustParse("90 minutes"))
	scaled := v.Mul(3)

	for _, want := range []Value{v, scaled} {
		got, err := Parse(want.String())
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
