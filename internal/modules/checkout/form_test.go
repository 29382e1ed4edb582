package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlissMahlathi/heavenly/internal/modules/cart"
)

func filledCart(t *testing.T, flavor string, qty int) *cart.Cart {
	t.Helper()
	c := cart.New()
	c.AddItem(flavor, qty)
	require.NotEmpty(t, c.Lines)
	return c
}

func validForm() Form {
	return Form{
		Name:        "Thabo M",
		Phone:       "066 362 1868",
		Fulfillment: cart.FulfillmentCollection,
		Payment:     cart.PaymentCash,
	}
}

func TestValidateRuleOrder(t *testing.T) {
	c := cart.New() // empty on purpose

	f := Form{Fulfillment: cart.FulfillmentDelivery}
	verr := Validate(f, c)
	require.NotNil(t, verr)
	assert.Equal(t, "name", verr.Rule)

	f.Name = "Thabo"
	verr = Validate(f, c)
	require.NotNil(t, verr)
	assert.Equal(t, "phone", verr.Rule)

	f.Phone = "0663621868"
	verr = Validate(f, c)
	require.NotNil(t, verr)
	assert.Equal(t, "address", verr.Rule)

	f.Address = "12 Main Rd"
	verr = Validate(f, c)
	require.NotNil(t, verr)
	assert.Equal(t, "cart", verr.Rule)
	assert.Equal(t, "Please add at least one item to your cart", verr.Message)
}

func TestValidateWhitespaceOnlyFieldsFail(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 1)
	f := validForm()
	f.Name = "   "

	verr := Validate(f, c)
	require.NotNil(t, verr)
	assert.Equal(t, "name", verr.Rule)
	assert.Equal(t, "Please fill in all required fields", verr.Message)
}

func TestValidateAddressOnlyForDelivery(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 1)
	f := validForm()
	f.Fulfillment = cart.FulfillmentCollection
	f.Address = ""

	assert.Nil(t, Validate(f, c))
}

func TestValidateTenderedRequiredForCashChange(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 2) // 5998
	f := validForm()
	f.ChangeNeeded = true
	f.TenderedCents = 0

	verr := Validate(f, c)
	require.NotNil(t, verr)
	assert.Equal(t, "tendered", verr.Rule)
	assert.Equal(t, "Please specify the amount you're paying with", verr.Message)

	// rule 5 binds to cash only; eft skips it but rule 6 still applies
	f.Payment = cart.PaymentEFT
	verr = Validate(f, c)
	require.NotNil(t, verr)
	assert.Equal(t, "change", verr.Rule)
}

func TestValidateInsufficientTender(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 2) // 5998 collection/cash
	f := validForm()
	f.ChangeNeeded = true
	f.TenderedCents = 5000

	verr := Validate(f, c)
	require.NotNil(t, verr)
	assert.Equal(t, "change", verr.Rule)
	assert.Equal(t, "The amount you're paying is less than the total", verr.Message)
}

func TestValidatePassesExactTender(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 2)
	f := validForm()
	f.ChangeNeeded = true
	f.TenderedCents = 5998

	assert.Nil(t, Validate(f, c))
}

func TestFreezeCollectionCash(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 2) // R59.98
	f := validForm()
	f.Email = "  thabo@example.com "
	f.Notes = " extra napkins "

	sub := Freeze(f, c)

	assert.Equal(t, "Thabo M", sub.CustomerName)
	assert.Equal(t, CollectionMarker, sub.DeliveryAddress)
	assert.Equal(t, "cash", sub.PaymentMethod)
	assert.Equal(t, 5998, sub.TotalCents)
	assert.Equal(t, 2, sub.Quantity)
	assert.Equal(t, "pending", sub.Status)

	require.NotNil(t, sub.CustomerEmail)
	assert.Equal(t, "thabo@example.com", *sub.CustomerEmail)
	require.NotNil(t, sub.SpecialNotes)
	assert.Equal(t, "extra napkins", *sub.SpecialNotes)
	assert.Nil(t, sub.CustomerAmountCents)
	assert.Nil(t, sub.CalculatedChangeCents)
}

func TestFreezeDeliveryEFT(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 2) // 5998 + 1000 + 200
	f := validForm()
	f.Fulfillment = cart.FulfillmentDelivery
	f.Address = "12 Main Rd"
	f.Payment = cart.PaymentEFT

	sub := Freeze(f, c)

	assert.Equal(t, "12 Main Rd", sub.DeliveryAddress)
	assert.Equal(t, "eft", sub.PaymentMethod)
	assert.Equal(t, 7198, sub.TotalCents)
	assert.Nil(t, sub.CustomerEmail)
	assert.Nil(t, sub.SpecialNotes)
}

func TestFreezeComputesChange(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 2) // 5998
	f := validForm()
	f.ChangeNeeded = true
	f.TenderedCents = 10000

	sub := Freeze(f, c)

	require.NotNil(t, sub.CustomerAmountCents)
	require.NotNil(t, sub.CalculatedChangeCents)
	assert.Equal(t, 10000, *sub.CustomerAmountCents)
	assert.Equal(t, 4002, *sub.CalculatedChangeCents)
}

func TestFreezeSnapshotsLines(t *testing.T) {
	c := filledCart(t, "Chicken Mild", 1)
	f := validForm()

	sub := Freeze(f, c)
	require.Len(t, sub.CartItems, 1)

	// later cart mutations must not leak into the frozen snapshot
	c.AddItem("Beef Mild", 1)
	c.UpdateLineQuantity(c.Lines[0].ID, 5)
	assert.Len(t, sub.CartItems, 1)
	assert.Equal(t, 1, sub.CartItems[0].Quantity)
}
