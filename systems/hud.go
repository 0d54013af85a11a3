package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/laundry-squadron/assets"
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/fonts"
	"github.com/automoto/laundry-squadron/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var damageOp = &ebiten.DrawRectShaderOptions{Uniforms: map[string]any{}}

// DrawHUD renders the damage vignette, the round readout and, once the round
// is over, the fading results overlay.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	roundEntry, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(roundEntry)

	switch round.State {
	case cfg.RoundPlaying:
		drawDamage(screen, round.Damage)
		drawReadout(e, screen, round)
	case cfg.RoundOver:
		drawResults(screen, round)
	}
}

func drawDamage(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tint := cfg.HUD.DamageTint
	if assets.DamageShader == nil {
		c := tint
		c.A = uint8(alpha * 255)
		vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
		return
	}
	damageOp.Uniforms["Alpha"] = float32(alpha)
	damageOp.Uniforms["Tint"] = []float32{float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255}
	screen.DrawRectShader(w, h, assets.DamageShader, damageOp)
}

func drawReadout(e *ecs.ECS, screen *ebiten.Image, round *components.RoundData) {
	face := fonts.Body.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	line := int(cfg.HUD.LineHeight)

	text.Draw(screen, fmt.Sprintf("Time %.1fs", round.Clock), face, x, y, cfg.HUD.TextColor)
	y += line
	if round.Best > 0 {
		text.Draw(screen, fmt.Sprintf("Best %.1fs", round.Best), face, x, y, cfg.HUD.HintColor)
		y += line
	}
	if clothEntry, ok := tags.Cloth.First(e.World); ok {
		left := components.Cloth.Get(clothEntry).Cloth.ConstraintsLeftFraction()
		text.Draw(screen, fmt.Sprintf("Cloth %.0f%%", left*100), face, x, y, cfg.HUD.TextColor)
		y += line
	}
	if spawnerEntry, ok := tags.Spawner.First(e.World); ok {
		s := components.Spawner.Get(spawnerEntry)
		label := fmt.Sprintf("Gusts %d", s.GustsEarned)
		if s.GustCooldown > 0 {
			label += fmt.Sprintf(" (%.1fs)", s.GustCooldown)
		}
		text.Draw(screen, label, face, x, y, cfg.HUD.HintColor)
	}

	if IsMuted() {
		small := fonts.Small.Get()
		label := "MUTED"
		text.Draw(screen, label, small, screen.Bounds().Dx()-fonts.Width(small, label)-int(cfg.HUD.Margin), y, cfg.HUD.HintColor)
	}
}

func drawResults(screen *ebiten.Image, round *components.RoundData) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	overlay := cfg.HUD.OverlayColor
	overlay.A = uint8(float64(overlay.A) * round.FadeAlpha)
	vector.FillRect(screen, 0, 0, w, h, overlay, false)
	if round.FadeAlpha < 1 {
		return
	}

	center := func(s string, face font.Face, y int, c color.RGBA) {
		text.Draw(screen, s, face, (int(w)-fonts.Width(face, s))/2, y, c)
	}
	mid := int(h) / 2
	center(cfg.Game.OverlayTitle, fonts.Title.Get(), mid-40, cfg.Menu.TitleColor)
	center(fmt.Sprintf("You kept it together for %.1fs", round.Survived), fonts.Heading.Get(), mid, cfg.HUD.TextColor)
	best := fmt.Sprintf("Best %.1fs", round.Best)
	if round.NewBest {
		best = "New best!"
	}
	center(best, fonts.Body.Get(), mid+24, cfg.LightGreen)
	center(cfg.Game.ContinueHint, fonts.Small.Get(), int(h)-int(cfg.HUD.Margin)*2, cfg.HUD.HintColor)
}
