package coinrush

import (
	"time"

	"github.com/vovakirdan/coinrush/internal/config"
	"github.com/vovakirdan/coinrush/internal/core"
)

// Spawner places new entities on the field.
// Spawns may overlap each other or the player.
type Spawner struct {
	rng   *RNG
	field config.FieldConfig
	inset config.SpawnConfig

	coinSize  int
	enemySize int
	itemSize  int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *RNG, cfg config.CoinRushConfig) *Spawner {
	return &Spawner{
		rng:       rng,
		field:     cfg.Field,
		inset:     cfg.Spawn,
		coinSize:  cfg.Coins.Size,
		enemySize: cfg.Enemies.Size,
		itemSize:  cfg.Items.Size,
	}
}

// Rect returns a w x h box whose origin is uniform inside the field minus
// the margins. The vertical origin starts below the HUD band.
func (s *Spawner) Rect(w, h int) core.Rect {
	x := s.rng.Intn(s.field.Width-w-2*s.inset.Margin) + s.inset.Margin
	y := s.rng.Intn(s.field.Height-h-s.inset.TopInset-s.inset.Margin) + s.inset.TopInset
	return core.NewRect(x, y, w, h)
}

// Coin spawns a coin.
func (s *Spawner) Coin() Coin {
	return Coin{Rect: s.Rect(s.coinSize, s.coinSize)}
}

// Enemy spawns an enemy with an independent random direction and speed per axis.
func (s *Spawner) Enemy(p config.Profile) Enemy {
	r := s.Rect(s.enemySize, s.enemySize)
	vx := s.rng.Sign() * s.rng.Between(p.EnemySpeedMin, p.EnemySpeedMax)
	vy := s.rng.Sign() * s.rng.Between(p.EnemySpeedMin, p.EnemySpeedMax)
	return Enemy{Rect: r, VX: vx, VY: vy}
}

// Item spawns an item of a uniformly random type.
func (s *Spawner) Item() Item {
	t := ItemShield
	if s.rng.Bool() {
		t = ItemSlow
	}
	return Item{Rect: s.Rect(s.itemSize, s.itemSize), Type: t}
}

// ItemDelay draws the wait until the next regular item spawn.
func (s *Spawner) ItemDelay(p config.Profile) time.Duration {
	return time.Duration(s.rng.Between(p.ItemSpawnMinMs, p.ItemSpawnMaxMs)) * time.Millisecond
}
