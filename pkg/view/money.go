package view

import "fmt"

// MoneyFromCents converts cents to a human-readable currency string.
// E.g., 5998 ZAR -> "R59.98"
func MoneyFromCents(cents int, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, currencySymbol(currency), cents/100, cents%100)
}

// Rand formats South African Rand, the shop's only currency.
func Rand(cents int) string { return MoneyFromCents(cents, "ZAR") }

func currencySymbol(code string) string {
	switch code {
	case "ZAR":
		return "R"
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}
