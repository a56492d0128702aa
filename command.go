package scrawl

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandClear       CommandType = iota // fill the whole canvas with the command color
	CommandRectFill                       // filled axis-aligned rectangle
	CommandRectOutline                    // 1-unit rectangle outline
	CommandLine                           // line segment between two points
	CommandSprite                         // textured quad identified by an opaque TextureID
)

// Command is a single recorded draw instruction. Commands are immutable once
// appended: Color and geometry are captured at emission time and never
// re-evaluated. All geometry is in logical canvas units.
type Command struct {
	Type  CommandType
	Color Color

	// X, Y, W, H describe the destination rectangle for Clear, RectFill,
	// RectOutline, and Sprite, and the first endpoint (X, Y) for Line.
	X, Y, W, H float64

	// X2, Y2 is the second endpoint for Line.
	X2, Y2 float64

	// Texture identifies the sprite's texture. Zero for non-sprite commands.
	Texture TextureID

	// Src is the sprite's source region in texture space. A zero rect means
	// the whole texture.
	Src Rect
}
