package coinrush

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/coinrush/internal/core"
)

// Screen layout: HUD line, effect line, then the boxed playfield.
const (
	hudRow     = 0
	effectRow  = 1
	fieldTop   = 2
	enemyGlyph = '█'
	coinGlyph  = 'o'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, []string{"Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", minScreenW, minScreenH)})
		return
	}

	v := g.session.View(g.now)
	fv := newFieldView(v, dst.Width(), dst.Height())

	g.renderHUD(dst, v)
	dst.DrawBoxColored(fv.box, core.ColorGray)

	for _, c := range v.Coins {
		dst.DrawRectColored(fv.cells(c), coinGlyph, core.ColorGold)
	}

	for _, it := range v.Items {
		r := fv.cells(it.Rect)
		color := core.ColorBrightCyan
		if it.Type == ItemShield {
			color = core.ColorBrightGreen
		}
		dst.DrawRectColored(r, it.Type.Glyph(), color)
	}

	enemyColor := core.ColorBrightRed
	if v.Slowed {
		enemyColor = core.ColorViolet
	}
	for _, e := range v.Enemies {
		dst.DrawRectColored(fv.cells(e), enemyGlyph, enemyColor)
	}

	if v.PlayerVisible {
		r := fv.cells(v.Player)
		if v.Shielded {
			dst.DrawBoxColored(r.Grow(1), core.ColorBrightWhite)
		}
		dst.DrawRectColored(r, '█', core.ColorSky)
	}

	switch v.State {
	case StateTitle:
		g.renderOverlay(dst, titleLines(v))
	case StateGameOver:
		g.renderOverlay(dst, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d / Stage: %d", v.Score, v.Stage),
			overReasonText(v.OverReason),
			"R retry / ESC quit",
		})
	}
}

// renderHUD draws the status line and the active effects.
func (g *Game) renderHUD(dst *core.Screen, v View) {
	hud := fmt.Sprintf(" Score: %d  Life: %d  Difficulty: %s  Time: %d  Stage: %d",
		v.Score, v.Lives, v.Profile.Label, v.RemainingSec, v.Stage)
	if v.State == StatePlaying {
		hud += fmt.Sprintf("  Next: %d", v.NextStageIn)
	}
	dst.DrawTextColored(0, hudRow, hud, core.ColorBrightWhite)

	if v.State != StatePlaying {
		return
	}
	x := 1
	if v.SlowLeftSec > 0 {
		text := fmt.Sprintf("SLOW %ds", v.SlowLeftSec)
		dst.DrawTextColored(x, effectRow, text, core.ColorBrightCyan)
		x += utf8.RuneCountInString(text) + 3
	}
	if v.ShieldLeftSec > 0 {
		dst.DrawTextColored(x, effectRow, fmt.Sprintf("SHIELD %ds", v.ShieldLeftSec), core.ColorBrightGreen)
	}
}

func titleLines(v View) []string {
	return []string{
		"COIN RUSH STAGE",
		"",
		"Difficulty: [E] EASY  [N] NORMAL  [H] HARD",
		"ENTER start / arrows or WASD move / R reset",
		"Items: SLOW (enemies slow down) / SHIELD (no damage)",
		fmt.Sprintf("Stage: more enemies every %d points", v.ScoreStep),
		"",
		fmt.Sprintf("Current: %s (items every %s / %s)",
			v.Profile.Label, v.Profile.ItemSpawnText(), v.Profile.EffectText()),
	}
}

func overReasonText(reason string) string {
	switch reason {
	case ReasonLives:
		return "Out of lives"
	case ReasonTime:
		return "Time up"
	default:
		return ""
	}
}

// renderOverlay draws a centered box holding the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := min(maxLen+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightYellow)
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColored(box.Y+1+i, l, color)
	}
}

// fieldView maps field units onto the cells inside the playfield box.
type fieldView struct {
	box    core.Rect // Border, in cells
	inner  core.Rect // Drawable area, in cells
	fieldW int
	fieldH int // Height below the HUD band, in field units
	top    int // First field row below the HUD band, in field units
}

func newFieldView(v View, screenW, screenH int) fieldView {
	box := core.NewRect(0, fieldTop, screenW, screenH-fieldTop)
	return fieldView{
		box:    box,
		inner:  box.Grow(-1),
		fieldW: v.Field.Width,
		fieldH: v.Field.Height - v.Field.UIBarHeight,
		top:    v.Field.UIBarHeight,
	}
}

// cells converts a field rectangle to a screen rectangle at least one cell
// in each direction.
func (f fieldView) cells(r core.Rect) core.Rect {
	x0 := f.inner.X + r.X*f.inner.W/f.fieldW
	x1 := f.inner.X + r.Right()*f.inner.W/f.fieldW
	y0 := f.inner.Y + (r.Y-f.top)*f.inner.H/f.fieldH
	y1 := f.inner.Y + (r.Bottom()-f.top)*f.inner.H/f.fieldH

	x0 = core.Clamp(x0, f.inner.X, f.inner.Right()-1)
	y0 = core.Clamp(y0, f.inner.Y, f.inner.Bottom()-1)
	x1 = core.Clamp(x1, x0+1, f.inner.Right())
	y1 = core.Clamp(y1, y0+1, f.inner.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
