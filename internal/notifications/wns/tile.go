package wns

// Tile updates an app's Start screen tile.
type Tile struct {
	Template TileTemplate
	Images   []Image
	Texts    []string

	// CachePolicy and Tag are delivery metadata; they are not serialized into
	// the payload.
	CachePolicy *CachePolicy
	Tag         string
}

// NewTile returns an empty tile using the TileSquareBlock template.
func NewTile() *Tile {
	return &Tile{Template: TileSquareBlock}
}

// Kind reports KindTile.
func (t *Tile) Kind() Kind { return KindTile }

func (*Tile) isContent() {}

func (t *Tile) payload() string {
	return AssembleVisual("tile", nil, t.Template.String(), t.Images, t.Texts)
}
