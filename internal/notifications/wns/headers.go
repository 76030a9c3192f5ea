package wns

import (
	"net/http"
	"strconv"
)

// WNS request header names.
const (
	HeaderType             = "X-WNS-Type"
	HeaderCachePolicy      = "X-WNS-Cache-Policy"
	HeaderTag              = "X-WNS-Tag"
	HeaderTTL              = "X-WNS-TTL"
	HeaderRequestForStatus = "X-WNS-RequestForStatus"
	HeaderContentType      = "Content-Type"
)

// DeliveryHeaderNames lists every header DeliveryHeaders may set, spelled
// as WNS documents them.
var DeliveryHeaderNames = []string{
	HeaderContentType,
	HeaderType,
	HeaderCachePolicy,
	HeaderTag,
	HeaderTTL,
	HeaderRequestForStatus,
}

// Content types for the push body.
const (
	ContentTypeXML    = "text/xml"
	ContentTypeBinary = "application/octet-stream"
)

// ContentType returns the body media type WNS expects for the kind. Raw
// notifications are opaque bytes to WNS; everything else is XML.
func (k Kind) ContentType() string {
	if k == KindRaw {
		return ContentTypeBinary
	}
	return ContentTypeXML
}

// DeliveryHeaders maps the notification's pass-through metadata onto the
// WNS request headers. It never touches the payload body. Cache policy is
// only meaningful for tiles and badges, and the tag only for tiles.
func DeliveryHeaders(n *Notification) http.Header {
	h := make(http.Header)
	kind := n.Kind()
	if kind == KindUnknown {
		return h
	}

	h.Set(HeaderContentType, kind.ContentType())
	h.Set(HeaderType, kind.WNSType())

	switch c := n.Content.(type) {
	case *Tile:
		if c == nil {
			break
		}
		if c.CachePolicy != nil {
			h.Set(HeaderCachePolicy, c.CachePolicy.String())
		}
		if c.Tag != "" {
			h.Set(HeaderTag, c.Tag)
		}
	case *Badge:
		if c != nil && c.CachePolicy != nil {
			h.Set(HeaderCachePolicy, c.CachePolicy.String())
		}
	}

	if n.TimeToLive != nil {
		h.Set(HeaderTTL, strconv.Itoa(*n.TimeToLive))
	}
	if n.RequestForStatus != nil {
		h.Set(HeaderRequestForStatus, strconv.FormatBool(*n.RequestForStatus))
	}

	return h
}
