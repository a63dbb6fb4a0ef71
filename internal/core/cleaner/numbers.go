package cleaner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yousifnimah/NumToWordsGo/NumToWords"
)

// Regex passes for spoken-number expansion. Application order matters:
// comma stripping first, then currency, decimals, ordinals and finally
// bare cardinals.
var (
	commaNumberRe = regexp.MustCompile(`[0-9][0-9,]+[0-9]`)
	poundsRe      = regexp.MustCompile(`£([0-9,]*[0-9]+)`)
	dollarsRe     = regexp.MustCompile(`\$([0-9.,]*[0-9]+)`)
	decimalRe     = regexp.MustCompile(`[0-9]+\.[0-9]+`)
	ordinalRe     = regexp.MustCompile(`([0-9]+)(st|nd|rd|th)`)
	numberRe      = regexp.MustCompile(`[0-9]+`)
)

// NormalizeNumbers rewrites digits, currency amounts, decimals and ordinals
// into words. Expansion is best effort: anything that cannot be parsed (for
// example a number that overflows int) is left as it was found.
func NormalizeNumbers(text string) string {
	text = commaNumberRe.ReplaceAllStringFunc(text, removeCommas)
	text = poundsRe.ReplaceAllString(text, "${1} pounds")
	text = dollarsRe.ReplaceAllStringFunc(text, expandDollars)
	text = decimalRe.ReplaceAllStringFunc(text, expandDecimal)
	text = ordinalRe.ReplaceAllStringFunc(text, expandOrdinal)
	text = numberRe.ReplaceAllStringFunc(text, expandCardinal)
	return text
}

func removeCommas(match string) string {
	return strings.ReplaceAll(match, ",", "")
}

// expandDecimal reads the decimal point out loud; the digit groups on both
// sides are expanded by the later cardinal pass.
func expandDecimal(match string) string {
	return strings.ReplaceAll(match, ".", " point ")
}

// expandDollars rewrites a $ amount as dollars and cents. The numeric parts
// stay digits here and are expanded by the later cardinal pass.
func expandDollars(match string) string {
	amount := strings.TrimPrefix(match, "$")
	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		// Unexpected format, read the amount as-is.
		return amount + " dollars"
	}

	dollars := 0
	if parts[0] != "" {
		d, err := strconv.Atoi(parts[0])
		if err != nil {
			return amount + " dollars"
		}
		dollars = d
	}
	cents := 0
	if len(parts) > 1 && parts[1] != "" {
		c, err := strconv.Atoi(parts[1])
		if err != nil {
			return amount + " dollars"
		}
		cents = c
	}

	switch {
	case dollars != 0 && cents != 0:
		return fmt.Sprintf("%d %s, %d %s", dollars, pluralize(dollars, "dollar"), cents, pluralize(cents, "cent"))
	case dollars != 0:
		return fmt.Sprintf("%d %s", dollars, pluralize(dollars, "dollar"))
	case cents != 0:
		return fmt.Sprintf("%d %s", cents, pluralize(cents, "cent"))
	default:
		return "zero dollars"
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// expandOrdinal turns "1st", "22nd", "103rd" into "first", "twenty second",
// "one hundred third".
func expandOrdinal(match string) string {
	digits := strings.TrimRight(match, "sthndrd")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return match
	}
	words := cardinalWords(n)
	if words == digits {
		return match
	}
	return ordinalize(words)
}

// ordinalize rewrites the final word of a cardinal phrase as an ordinal.
func ordinalize(cardinal string) string {
	words := strings.Fields(cardinal)
	if len(words) == 0 {
		return cardinal
	}
	last := words[len(words)-1]
	if ord, ok := irregularOrdinals[last]; ok {
		words[len(words)-1] = ord
	} else if strings.HasSuffix(last, "y") {
		words[len(words)-1] = strings.TrimSuffix(last, "y") + "ieth"
	} else {
		words[len(words)-1] = last + "th"
	}
	return strings.Join(words, " ")
}

var irregularOrdinals = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// expandCardinal turns a bare digit group into words. Four-digit values in
// (1000, 3000) are read as years: "1999" becomes "nineteen ninety nine" and
// "2003" becomes "two thousand three".
func expandCardinal(match string) string {
	n, err := strconv.Atoi(match)
	if err != nil {
		// Too large to expand, keep the digits.
		return match
	}

	if n > 1000 && n < 3000 {
		switch {
		case n == 2000:
			return "two thousand"
		case n > 2000 && n < 2010:
			return "two thousand " + cardinalWords(n%100)
		case n%100 == 0:
			return cardinalWords(n/100) + " hundred"
		default:
			hi, lo := n/100, n%100
			if lo < 10 {
				return cardinalWords(hi) + " oh " + cardinalWords(lo)
			}
			return cardinalWords(hi) + " " + cardinalWords(lo)
		}
	}
	return cardinalWords(n)
}

// cardinalWords converts a non-negative integer into English words, falling
// back to the digit string when the conversion fails.
func cardinalWords(n int) string {
	if n == 0 {
		return "zero"
	}
	words, err := NumToWords.Convert(n, "en")
	if err != nil {
		return strconv.Itoa(n)
	}
	return strings.ToLower(strings.TrimSpace(words))
}
