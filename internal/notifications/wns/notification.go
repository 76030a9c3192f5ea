// Package wns builds Windows Push Notification Service payloads.
//
// A Notification carries the delivery metadata read by the transport
// (channel URI, time-to-live, status request) and exactly one Content value:
// *Tile, *Toast, *Badge or *Raw. Payload turns the content into the markup
// string sent as the push body. Every function in this package is a pure
// transform of its arguments; values may be rendered concurrently as long as
// they are not mutated at the same time.
package wns

import (
	"fmt"

	"wnspush/internal/types"
)

// ErrContentMissing is returned when a Notification carries no content.
var ErrContentMissing = types.NewAppError(
	types.ErrCodeInvalidStateContent,
	"notification has no tile, toast, badge or raw content",
	nil,
)

// Content is the payload-bearing part of a notification. The set of
// implementations is closed: *Tile, *Toast, *Badge and *Raw.
type Content interface {
	Kind() Kind
	isContent()
}

// Notification is a single WNS push. The metadata fields are not part of the
// payload body; the transport maps them onto request headers (see
// DeliveryHeaders).
type Notification struct {
	// ChannelURI is the opaque delivery target. It is not interpreted here.
	ChannelURI string

	// TimeToLive is in seconds. Nil leaves the platform default.
	TimeToLive *int

	// RequestForStatus asks WNS to report device connection status.
	RequestForStatus *bool

	Content Content
}

// Platform always reports PlatformWindows. It exists for callers that
// dispatch across several push platforms.
func (n *Notification) Platform() Platform {
	return PlatformWindows
}

// Kind returns the discriminator of the carried content, or KindUnknown when
// there is none.
func (n *Notification) Kind() Kind {
	if n == nil || n.Content == nil {
		return KindUnknown
	}
	return n.Content.Kind()
}

// Payload produces the markup body for the notification.
func (n *Notification) Payload() (string, error) {
	if n == nil {
		return "", ErrContentMissing
	}
	return Payload(n.Content)
}

// Payload produces the markup body for a single content value. It is the one
// dispatch point over the content kinds.
func Payload(c Content) (string, error) {
	switch v := c.(type) {
	case *Tile:
		if v == nil {
			return "", ErrContentMissing
		}
		return v.payload(), nil
	case *Toast:
		if v == nil {
			return "", ErrContentMissing
		}
		return v.payload(), nil
	case *Badge:
		if v == nil {
			return "", ErrContentMissing
		}
		return v.payload()
	case *Raw:
		if v == nil {
			return "", ErrContentMissing
		}
		return v.Markup, nil
	case nil:
		return "", ErrContentMissing
	default:
		return "", types.NewAppError(
			types.ErrCodeInternalUnexpected,
			fmt.Sprintf("unsupported content type %T", c),
			nil,
		)
	}
}
