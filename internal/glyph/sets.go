package glyph

// Built-in set IDs.
const (
	LinearAID = "linear-a"
	LinearBID = "linear-b"
)

// LinearA is the reference universe: 341 signs of the Linear A block.
var LinearA = Set{
	ID:   LinearAID,
	Name: "Linear A",
	Font: "Noto Sans Linear A",
	Ranges: []Range{
		{First: 67072, Last: 67382}, // U+10600..U+10736
		{First: 67392, Last: 67413}, // U+10740..U+10755
		{First: 67424, Last: 67431}, // U+10760..U+10767
	},
}

// LinearB is the Linear B syllabary, gaps in the block skipped.
var LinearB = Set{
	ID:   LinearBID,
	Name: "Linear B",
	Font: "Noto Sans Linear B",
	Ranges: []Range{
		{First: 0x10000, Last: 0x1000B},
		{First: 0x1000D, Last: 0x10026},
		{First: 0x10028, Last: 0x1003A},
		{First: 0x1003C, Last: 0x1003D},
		{First: 0x1003F, Last: 0x1004D},
		{First: 0x10050, Last: 0x1005D},
	},
}

func init() {
	Register(LinearA)
	Register(LinearB)
}
