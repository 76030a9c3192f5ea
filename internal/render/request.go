package render

import (
	"wnspush/internal/notifications/wns"
)

// Request is the wire form of a notification to render. Exactly one kind's
// fields are used; fields belonging to other kinds are ignored.
type Request struct {
	Kind             string `json:"kind" validate:"required,oneof=tile toast badge raw"`
	ChannelURI       string `json:"channel_uri,omitempty" validate:"omitempty,url,startswith=https://"`
	TimeToLive       *int   `json:"ttl,omitempty" validate:"omitempty,gte=0"`
	RequestForStatus *bool  `json:"request_for_status,omitempty"`

	// Tile and toast.
	Template string         `json:"template,omitempty"`
	Images   []ImageRequest `json:"images,omitempty" validate:"dive"`
	Texts    []string       `json:"texts,omitempty"`

	// Toast.
	Duration string `json:"duration,omitempty" validate:"omitempty,oneof=short long"`
	Launch   string `json:"launch,omitempty"`

	// Tile and badge.
	CachePolicy string `json:"cache_policy,omitempty" validate:"omitempty,oneof=cache no-cache"`

	// Tile. WNS limits X-WNS-Tag to 16 characters.
	Tag string `json:"tag,omitempty" validate:"max=16"`

	// Badge.
	Numeric *int   `json:"numeric,omitempty"`
	Glyph   string `json:"glyph,omitempty"`

	// Raw.
	Raw string `json:"raw,omitempty"`
}

// ImageRequest is one image slot; list order defines the image ids.
type ImageRequest struct {
	Src string `json:"src" validate:"required"`
	Alt string `json:"alt,omitempty"`
}

// ToNotification converts the request into a wns.Notification, resolving
// template, glyph, duration and cache policy names. Unknown names produce a
// validation AppError naming the field. An empty template selects the
// kind's default.
func (r *Request) ToNotification() (*wns.Notification, error) {
	kind, err := wns.ParseKind(r.Kind)
	if err != nil {
		return nil, err
	}

	n := &wns.Notification{
		ChannelURI:       r.ChannelURI,
		TimeToLive:       r.TimeToLive,
		RequestForStatus: r.RequestForStatus,
	}

	switch kind {
	case wns.KindTile:
		tile := wns.NewTile()
		if r.Template != "" {
			if tile.Template, err = wns.ParseTileTemplate(r.Template); err != nil {
				return nil, err
			}
		}
		if tile.CachePolicy, err = r.cachePolicy(); err != nil {
			return nil, err
		}
		tile.Images = r.images()
		tile.Texts = r.Texts
		tile.Tag = r.Tag
		n.Content = tile

	case wns.KindToast:
		toast := wns.NewToast()
		if r.Template != "" {
			if toast.Template, err = wns.ParseToastTemplate(r.Template); err != nil {
				return nil, err
			}
		}
		if toast.Duration, err = wns.ParseToastDuration(r.Duration); err != nil {
			return nil, err
		}
		toast.Images = r.images()
		toast.Texts = r.Texts
		toast.Launch = r.Launch
		n.Content = toast

	case wns.KindBadge:
		badge := &wns.Badge{Numeric: r.Numeric}
		if r.Glyph != "" {
			g, err := wns.ParseGlyph(r.Glyph)
			if err != nil {
				return nil, err
			}
			badge.Glyph = &g
		}
		if badge.CachePolicy, err = r.cachePolicy(); err != nil {
			return nil, err
		}
		n.Content = badge

	case wns.KindRaw:
		n.Content = &wns.Raw{Markup: r.Raw}
	}

	return n, nil
}

func (r *Request) images() []wns.Image {
	if len(r.Images) == 0 {
		return nil
	}
	out := make([]wns.Image, len(r.Images))
	for i, img := range r.Images {
		out[i] = wns.Image{Src: img.Src, Alt: img.Alt}
	}
	return out
}

func (r *Request) cachePolicy() (*wns.CachePolicy, error) {
	if r.CachePolicy == "" {
		return nil, nil
	}
	p, err := wns.ParseCachePolicy(r.CachePolicy)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
