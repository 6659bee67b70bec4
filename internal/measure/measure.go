package measure

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type identifies the kind of utility meter a reading was taken from.
type Type string

const (
	TypeWater Type = "WATER"
	TypeGas   Type = "GAS"
)

// ParseType normalizes a raw meter type to its canonical uppercase form.
func ParseType(raw string) (Type, error) {
	switch t := Type(strings.ToUpper(strings.TrimSpace(raw))); t {
	case TypeWater, TypeGas:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, raw)
	}
}

// Measure represents a single meter reading taken from an uploaded photo.
// Value is set once at creation from the recognition result and never
// rewritten; confirmation only compares against it and flips HasConfirmed.
type Measure struct {
	ID           uuid.UUID
	CustomerCode string
	ImageURL     string
	Value        decimal.Decimal
	Type         Type
	Datetime     time.Time
	HasConfirmed bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
