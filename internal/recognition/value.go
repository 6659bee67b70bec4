package recognition

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// ErrNoNumericValue is returned when the provider answered but no reading
// could be found in the text.
var ErrNoNumericValue = errors.New("no numeric value in recognition response")

var numericToken = regexp.MustCompile(`\d+(?:\.\d+)?`)

// parseConsumption pulls the first numeric token out of the provider's
// free-text answer and normalizes it to at most two fraction digits.
// "O consumo de água na imagem é de 00002.21 m³." parses to 2.21.
func parseConsumption(text string) (decimal.Decimal, error) {
	token := numericToken.FindString(text)
	if token == "" {
		return decimal.Decimal{}, ErrNoNumericValue
	}

	value, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", token, err)
	}

	return value.Round(2), nil
}
