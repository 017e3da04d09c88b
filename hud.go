package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gravityshift/common"
	"github.com/milk9111/gravityshift/gamestate"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

const hudScale = 2

// drawHUD shows the round timer top-centre and the cubes left below it.
func drawHUD(screen *ebiten.Image, m *gamestate.Manager) {
	if m == nil || m.Phase() == gamestate.PhaseMainMenu {
		return
	}
	drawHUDText(screen, m.TimerText(), common.BaseWidth/2, 20, colornames.White)
	drawHUDText(screen, "Cubes: "+m.CubesText(), common.BaseWidth/2, 50, colornames.Gold)
}

func drawHUDText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = ebtext.AlignCenter
	ebtext.Draw(screen, s, hudFace, op)
}
