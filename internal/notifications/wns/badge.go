package wns

import (
	"strconv"

	"wnspush/internal/types"
)

// ErrBadgeValueMissing is returned when a badge has neither a numeric value
// nor a glyph. It is caller misuse and not retryable.
var ErrBadgeValueMissing = types.NewAppError(
	types.ErrCodeInvalidStateBadgeValue,
	"either a numeric or glyph value is required",
	nil,
)

// Badge sets the number or glyph shown on an app's tile. When both Numeric
// and Glyph are set, Numeric wins.
type Badge struct {
	Numeric *int
	Glyph   *Glyph

	// CachePolicy is delivery metadata, not serialized into the payload.
	CachePolicy *CachePolicy
}

// NumericBadge returns a badge showing n.
func NumericBadge(n int) *Badge {
	return &Badge{Numeric: &n}
}

// GlyphBadge returns a badge showing g.
func GlyphBadge(g Glyph) *Badge {
	return &Badge{Glyph: &g}
}

// Kind reports KindBadge.
func (b *Badge) Kind() Kind { return KindBadge }

func (*Badge) isContent() {}

// payload writes <badge value="V">. V is either a decimal integer or a token
// from the glyph table, so it needs no escaping. A glyph outside the table
// yields an empty value.
func (b *Badge) payload() (string, error) {
	var value string
	switch {
	case b.Numeric != nil:
		value = strconv.Itoa(*b.Numeric)
	case b.Glyph != nil:
		value = b.Glyph.String()
	default:
		return "", ErrBadgeValueMissing
	}
	return `<badge value="` + value + `">`, nil
}
