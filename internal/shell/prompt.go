package shell

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseChoice parses a menu selection. Any line that is not a whole
// number is rejected; range checking is left to the dispatcher so that
// out-of-range choices get the range-hint message instead of the
// generic one.
func ParseChoice(line string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(line))
}

// ParseAmount parses a monetary amount written in plain decimal
// notation. The empty string and anything non-numeric fail.
func ParseAmount(line string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(line))
}
