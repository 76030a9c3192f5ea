package wns

import (
	"fmt"
	"strings"

	"wnspush/internal/types"
)

// Platform identifies the push platform a notification targets.
type Platform string

// PlatformWindows is the only platform this package produces payloads for.
const PlatformWindows Platform = "Windows"

// Kind discriminates the four WNS notification types.
type Kind int

const (
	KindTile Kind = iota
	KindToast
	KindBadge
	KindRaw
)

// KindUnknown is reported by a Notification without content.
const KindUnknown Kind = -1

var kindNames = map[Kind]string{
	KindTile:  "tile",
	KindToast: "toast",
	KindBadge: "badge",
	KindRaw:   "raw",
}

// String returns the lowercase kind name ("tile", "toast", "badge", "raw").
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// WNSType returns the value of the X-WNS-Type header for the kind.
func (k Kind) WNSType() string {
	return "wns/" + k.String()
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, unknownName(types.ErrCodeValidationUnknownKind, "kind", s)
}

// CachePolicy controls whether WNS caches a tile or badge update for a
// device that is offline.
type CachePolicy int

const (
	CachePolicyCache CachePolicy = iota
	CachePolicyNoCache
)

var cachePolicyNames = map[CachePolicy]string{
	CachePolicyCache:   "cache",
	CachePolicyNoCache: "no-cache",
}

// String returns the X-WNS-Cache-Policy header value.
func (p CachePolicy) String() string {
	if s, ok := cachePolicyNames[p]; ok {
		return s
	}
	return ""
}

// ParseCachePolicy accepts "cache" and "no-cache" (also "nocache"), case-insensitively.
func ParseCachePolicy(s string) (CachePolicy, error) {
	switch strings.ToLower(s) {
	case "cache":
		return CachePolicyCache, nil
	case "no-cache", "nocache":
		return CachePolicyNoCache, nil
	}
	return 0, unknownName(types.ErrCodeValidationUnknownPolicy, "cache_policy", s)
}

// ToastDuration is how long a toast stays on screen. Short is the platform
// default and is never written to the payload.
type ToastDuration int

const (
	DurationShort ToastDuration = iota
	DurationLong
)

// String returns "short" or "long".
func (d ToastDuration) String() string {
	if d == DurationLong {
		return "long"
	}
	return "short"
}

// ParseToastDuration accepts "short", "long" or the empty string (short).
func ParseToastDuration(s string) (ToastDuration, error) {
	switch strings.ToLower(s) {
	case "", "short":
		return DurationShort, nil
	case "long":
		return DurationLong, nil
	}
	return 0, unknownName(types.ErrCodeValidationUnknownDuration, "duration", s)
}

// Glyph is a named badge icon state.
type Glyph int

const (
	GlyphNone Glyph = iota
	GlyphActivity
	GlyphAlert
	GlyphAvailable
	GlyphAway
	GlyphBusy
	GlyphNewMessage
	GlyphPaused
	GlyphPlaying
	GlyphUnavailable
	GlyphError
	GlyphAttention
)

// glyphValues holds the badge value token for each glyph. The tokens are
// part of the WNS badge schema and must not follow identifier renames.
var glyphValues = map[Glyph]string{
	GlyphNone:        "none",
	GlyphActivity:    "activity",
	GlyphAlert:       "alert",
	GlyphAvailable:   "available",
	GlyphAway:        "away",
	GlyphBusy:        "busy",
	GlyphNewMessage:  "newMessage",
	GlyphPaused:      "paused",
	GlyphPlaying:     "playing",
	GlyphUnavailable: "unavailable",
	GlyphError:       "error",
	GlyphAttention:   "attention",
}

// String returns the badge value token, or "" for a glyph outside the table.
func (g Glyph) String() string {
	return glyphValues[g]
}

// ParseGlyph resolves a badge token case-insensitively ("newMessage",
// "newmessage" and "NewMessage" all resolve to GlyphNewMessage).
func ParseGlyph(s string) (Glyph, error) {
	for g, token := range glyphValues {
		if strings.EqualFold(s, token) {
			return g, nil
		}
	}
	return 0, unknownName(types.ErrCodeValidationUnknownGlyph, "glyph", s)
}

func unknownName(code types.ErrorCode, field, value string) *types.AppError {
	return types.NewAppErrorWithDetails(
		code,
		fmt.Sprintf("unknown %s %q", strings.ReplaceAll(field, "_", " "), value),
		nil,
		map[string]any{"field": field, "value": value},
	)
}
