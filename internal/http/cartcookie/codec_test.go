package cartcookie

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New([]byte("secret"), "hp_cart", false, 0)

	v := c.Encode("cart-123")
	id, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "cart-123", id)
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := New([]byte("secret"), "hp_cart", false, 0)
	v := c.Encode("cart-123")

	tampered := strings.Replace(v, "cart-123", "cart-456", 1)
	_, err := c.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	a := New([]byte("secret-a"), "hp_cart", false, 0)
	b := New([]byte("secret-b"), "hp_cart", false, 0)

	_, err := b.Decode(a.Encode("cart-123"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsMalformedValues(t *testing.T) {
	c := New([]byte("secret"), "hp_cart", false, 0)

	for _, v := range []string{"", "noseparator", ".sigonly", "a.b.c"} {
		_, err := c.Decode(v)
		assert.ErrorIs(t, err, ErrInvalid, "value %q", v)
	}
}

func TestSetUsesConfiguredTTL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := New([]byte("secret"), "hp_cart", false, 2*time.Hour)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	c.Set(ctx, "cart-123")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, int((2 * time.Hour).Seconds()), cookies[0].MaxAge)
}

func TestNewDefaultsTTL(t *testing.T) {
	c := New([]byte("secret"), "hp_cart", false, 0)
	assert.Equal(t, 24*time.Hour, c.TTL)
}
