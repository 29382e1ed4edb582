package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		from    string
		action  string
		want    string
		wantErr bool
	}{
		{StatusPending, "accept", StatusAccepted, false},
		{StatusPending, "cancel", StatusCancelled, false},
		{StatusPending, "refund", "", true},
		{StatusAccepted, "accept", "", true},
		{StatusAccepted, "cancel", "", true},
		{StatusCancelled, "accept", "", true},
		{StatusCancelled, "cancel", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.from+"_"+tc.action, func(t *testing.T) {
			got, err := nextStatus(tc.from, tc.action)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderNumberFromID(t *testing.T) {
	assert.Equal(t, "A1B2C3D4", orderNumberFromID("a1b2c3d4-0000-0000-0000-000000000000"))
	assert.Equal(t, "ABC", orderNumberFromID("abc"))
}
