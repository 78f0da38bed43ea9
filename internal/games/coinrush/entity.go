package coinrush

import "github.com/vovakirdan/coinrush/internal/core"

// ItemType tags a power-up.
type ItemType int

const (
	ItemSlow   ItemType = iota // Slows every enemy for a while
	ItemShield                 // Ignores enemy contact for a while
)

// String returns the HUD label of the item.
func (t ItemType) String() string {
	switch t {
	case ItemSlow:
		return "SLOW"
	case ItemShield:
		return "SHIELD"
	default:
		return "UNKNOWN"
	}
}

// Glyph returns the letter drawn on the item.
func (t ItemType) Glyph() rune {
	if t == ItemSlow {
		return 'S'
	}
	return 'P'
}

// Player is the avatar. Its velocity is derived from the held directions
// every tick, so only the box is stored.
type Player struct {
	core.Rect
}

// Coin is a static pickup.
type Coin struct {
	core.Rect
}

// Enemy moves with a base velocity that is scaled per tick.
// A wall contact flips the sign of the matching axis.
type Enemy struct {
	core.Rect
	VX, VY int
}

// Item is a power-up lying on the field.
type Item struct {
	core.Rect
	Type ItemType
}
