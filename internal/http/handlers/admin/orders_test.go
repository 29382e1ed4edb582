package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BlissMahlathi/heavenly/internal/modules/orders"
)

func TestFollowUpAllowed(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{orders.StatusAccepted, true},
		{orders.StatusPending, false},
		{orders.StatusCancelled, false},
		{"", false},
		{"ACCEPTED", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, followUpAllowed(tc.status), "status %q", tc.status)
	}
}
