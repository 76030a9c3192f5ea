package wns

import (
	"wnspush/internal/types"
)

// TileTemplate selects one of the Windows tile template layouts. The
// serialized name is taken from tileTemplateNames, never from the Go
// identifier.
type TileTemplate int

const (
	TileSquareBlock TileTemplate = iota
	TileSquareText01
	TileSquareText02
	TileSquareText03
	TileSquareText04
	TileSquareImage
	TileSquarePeekImageAndText01
	TileSquarePeekImageAndText02
	TileSquarePeekImageAndText03
	TileSquarePeekImageAndText04
	TileWideText01
	TileWideText02
	TileWideText03
	TileWideText04
	TileWideText05
	TileWideText06
	TileWideText07
	TileWideText08
	TileWideText09
	TileWideText10
	TileWideText11
	TileWideImage
	TileWideImageCollection
	TileWideImageAndText01
	TileWideImageAndText02
	TileWideBlockAndText01
	TileWideBlockAndText02
	TileWideSmallImageAndText01
	TileWideSmallImageAndText02
	TileWideSmallImageAndText03
	TileWideSmallImageAndText04
	TileWideSmallImageAndText05
	TileWidePeekImageCollection01
	TileWidePeekImageCollection02
	TileWidePeekImageCollection03
	TileWidePeekImageCollection04
	TileWidePeekImageCollection05
	TileWidePeekImageCollection06
	TileWidePeekImageAndText01
	TileWidePeekImageAndText02
	TileWidePeekImage01
	TileWidePeekImage02
	TileWidePeekImage03
	TileWidePeekImage04
	TileWidePeekImage05
	TileWidePeekImage06
)

var tileTemplateNames = map[TileTemplate]string{
	TileSquareBlock:               "TileSquareBlock",
	TileSquareText01:              "TileSquareText01",
	TileSquareText02:              "TileSquareText02",
	TileSquareText03:              "TileSquareText03",
	TileSquareText04:              "TileSquareText04",
	TileSquareImage:               "TileSquareImage",
	TileSquarePeekImageAndText01:  "TileSquarePeekImageAndText01",
	TileSquarePeekImageAndText02:  "TileSquarePeekImageAndText02",
	TileSquarePeekImageAndText03:  "TileSquarePeekImageAndText03",
	TileSquarePeekImageAndText04:  "TileSquarePeekImageAndText04",
	TileWideText01:                "TileWideText01",
	TileWideText02:                "TileWideText02",
	TileWideText03:                "TileWideText03",
	TileWideText04:                "TileWideText04",
	TileWideText05:                "TileWideText05",
	TileWideText06:                "TileWideText06",
	TileWideText07:                "TileWideText07",
	TileWideText08:                "TileWideText08",
	TileWideText09:                "TileWideText09",
	TileWideText10:                "TileWideText10",
	TileWideText11:                "TileWideText11",
	TileWideImage:                 "TileWideImage",
	TileWideImageCollection:       "TileWideImageCollection",
	TileWideImageAndText01:        "TileWideImageAndText01",
	TileWideImageAndText02:        "TileWideImageAndText02",
	TileWideBlockAndText01:        "TileWideBlockAndText01",
	TileWideBlockAndText02:        "TileWideBlockAndText02",
	TileWideSmallImageAndText01:   "TileWideSmallImageAndText01",
	TileWideSmallImageAndText02:   "TileWideSmallImageAndText02",
	TileWideSmallImageAndText03:   "TileWideSmallImageAndText03",
	TileWideSmallImageAndText04:   "TileWideSmallImageAndText04",
	TileWideSmallImageAndText05:   "TileWideSmallImageAndText05",
	TileWidePeekImageCollection01: "TileWidePeekImageCollection01",
	TileWidePeekImageCollection02: "TileWidePeekImageCollection02",
	TileWidePeekImageCollection03: "TileWidePeekImageCollection03",
	TileWidePeekImageCollection04: "TileWidePeekImageCollection04",
	TileWidePeekImageCollection05: "TileWidePeekImageCollection05",
	TileWidePeekImageCollection06: "TileWidePeekImageCollection06",
	TileWidePeekImageAndText01:    "TileWidePeekImageAndText01",
	TileWidePeekImageAndText02:    "TileWidePeekImageAndText02",
	TileWidePeekImage01:           "TileWidePeekImage01",
	TileWidePeekImage02:           "TileWidePeekImage02",
	TileWidePeekImage03:           "TileWidePeekImage03",
	TileWidePeekImage04:           "TileWidePeekImage04",
	TileWidePeekImage05:           "TileWidePeekImage05",
	TileWidePeekImage06:           "TileWidePeekImage06",
}

// String returns the template name written into the binding element.
func (t TileTemplate) String() string {
	return tileTemplateNames[t]
}

// ParseTileTemplate resolves an exact template name such as "TileWideText03".
func ParseTileTemplate(name string) (TileTemplate, error) {
	for t, n := range tileTemplateNames {
		if n == name {
			return t, nil
		}
	}
	return 0, unknownName(types.ErrCodeValidationUnknownTemplate, "template", name)
}

// ToastTemplate selects one of the Windows toast template layouts.
type ToastTemplate int

const (
	ToastText01 ToastTemplate = iota
	ToastText02
	ToastText03
	ToastText04
	ToastImageAndText01
	ToastImageAndText02
	ToastImageAndText03
	ToastImageAndText04
)

var toastTemplateNames = map[ToastTemplate]string{
	ToastText01:         "ToastText01",
	ToastText02:         "ToastText02",
	ToastText03:         "ToastText03",
	ToastText04:         "ToastText04",
	ToastImageAndText01: "ToastImageAndText01",
	ToastImageAndText02: "ToastImageAndText02",
	ToastImageAndText03: "ToastImageAndText03",
	ToastImageAndText04: "ToastImageAndText04",
}

// String returns the template name written into the binding element.
func (t ToastTemplate) String() string {
	return toastTemplateNames[t]
}

// ParseToastTemplate resolves an exact template name such as "ToastText02".
func ParseToastTemplate(name string) (ToastTemplate, error) {
	for t, n := range toastTemplateNames {
		if n == name {
			return t, nil
		}
	}
	return 0, unknownName(types.ErrCodeValidationUnknownTemplate, "template", name)
}
