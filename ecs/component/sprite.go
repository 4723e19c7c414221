package component

// Atlas selects which texture atlas a sprite slice indexes into.
type Atlas int

const (
	AtlasSprites Atlas = iota
	AtlasMenus
)

type Sprite struct {
	Atlas Atlas
	Index int
	Color Color
}

// Label is text drawn centered on the entity position.
type Label struct {
	Text  string
	Scale float64
	Color Color
}
