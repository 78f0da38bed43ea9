package coinrush

import "time"

// Snapshot captures the game state for determinism testing.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	State      string
	Difficulty string
	Score      int
	Lives      int
	Stage      int
	NextStage  int

	// Timers in milliseconds since the run started, 0 when unset
	SlowUntilMs   int64
	ShieldUntilMs int64
	LastHitMs     int64
	NextItemMs    int64

	PlayerX, PlayerY int

	// Each coin is 2 ints: X, Y
	CoinData []int
	// Each enemy is 4 ints: X, Y, VX, VY
	EnemyData []int
	// Each item is 3 ints: Type, X, Y
	ItemData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session

	coinData := make([]int, 0, len(s.coins)*2)
	for _, c := range s.coins {
		coinData = append(coinData, c.X, c.Y)
	}
	enemyData := make([]int, 0, len(s.enemies)*4)
	for _, e := range s.enemies {
		enemyData = append(enemyData, e.X, e.Y, e.VX, e.VY)
	}
	itemData := make([]int, 0, len(s.items)*3)
	for _, it := range s.items {
		itemData = append(itemData, int(it.Type), it.X, it.Y)
	}

	return Snapshot{
		Tick:       g.tick,
		State:      s.state.String(),
		Difficulty: string(s.preset),
		Score:      s.score,
		Lives:      s.lives,
		Stage:      s.stage,
		NextStage:  s.nextStage,

		SlowUntilMs:   msSince(s.startedAt, s.slowUntil),
		ShieldUntilMs: msSince(s.startedAt, s.shieldUntil),
		LastHitMs:     msSince(s.startedAt, s.lastHit),
		NextItemMs:    msSince(s.startedAt, s.nextItemAt),

		PlayerX: s.player.X,
		PlayerY: s.player.Y,

		CoinData:  coinData,
		EnemyData: enemyData,
		ItemData:  itemData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + stringHash(snap.State)
	h = h*31 + stringHash(snap.Difficulty)
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextStage)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SlowUntilMs)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShieldUntilMs) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastHitMs)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextItemMs)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)       //#nosec G115 -- hash computation

	for _, v := range snap.CoinData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ItemData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func stringHash(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

// msSince converts a timer to milliseconds after start. Unset timers are 0.
func msSince(start, t time.Time) int64 {
	if t.IsZero() || start.IsZero() {
		return 0
	}
	return t.Sub(start).Milliseconds()
}
