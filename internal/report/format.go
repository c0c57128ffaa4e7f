package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way it appears on printed
// documents, e.g. "Rp1.234.567". Rupiah have no sub-units in practice,
// so the amount is rounded to whole units first.
func FormatRupiah(amount decimal.Decimal) string {
	return rupiahPrinter.Sprintf("Rp%d", amount.Round(0).IntPart())
}

var smallNumbers = [12]string{
	"nol", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "delapan", "sembilan", "sepuluh", "sebelas",
}

// Terbilang renders a whole amount as Indonesian number words, as
// required on receipts ("Terbilang: seratus dua puluh ribu rupiah").
func Terbilang(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return "minus " + Terbilang(amount.Neg())
	}

	return strings.Join(terbilang(n), " ") + " rupiah"
}

func terbilang(n int64) []string {
	switch {
	case n < 12:
		return []string{smallNumbers[n]}
	case n < 20:
		return append(terbilang(n-10), "belas")
	case n < 100:
		return append(append(terbilang(n/10), "puluh"), skipZero(n%10)...)
	case n < 200:
		return append([]string{"seratus"}, skipZero(n%100)...)
	case n < 1_000:
		return append(append(terbilang(n/100), "ratus"), skipZero(n%100)...)
	case n < 2_000:
		return append([]string{"seribu"}, skipZero(n%1_000)...)
	case n < 1_000_000:
		return append(append(terbilang(n/1_000), "ribu"), skipZero(n%1_000)...)
	case n < 1_000_000_000:
		return append(append(terbilang(n/1_000_000), "juta"), skipZero(n%1_000_000)...)
	case n < 1_000_000_000_000:
		return append(append(terbilang(n/1_000_000_000), "miliar"), skipZero(n%1_000_000_000)...)
	default:
		return append(append(terbilang(n/1_000_000_000_000), "triliun"), skipZero(n%1_000_000_000_000)...)
	}
}

func skipZero(n int64) []string {
	if n == 0 {
		return nil
	}

	return terbilang(n)
}
