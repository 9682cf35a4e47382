// internal/state/instruction_state.go
package state

import (
	"cosmic-mines/internal/config"
	"cosmic-mines/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type instructionLine struct {
	text string
	bold bool
}

var instructions = []instructionLine{
	{"Welcome to Cosmic Mines!", true},
	{"", false},
	{"HOW TO PLAY:", true},
	{"", false},
	{"- Left-click to reveal a tile.", false},
	{"- Right-click to mark a mine.", false},
	{"- Clear all safe tiles to win.", false},
	{"- You have 3 hints to help you.", false},
	{"- Make sure to beat the clock!", false},
	{"- One wrong move and it's over!", false},
	{"", false},
	{"Press SPACE to begin your journey...", true},
}

// decoration positions, top-left corners
var decorationSpots = [][2]float64{{60, 100}, {60, 280}, {640, 190}, {640, 370}}

const decorationSize = 100

// visibleLines is how many instruction lines are on screen after elapsed
// seconds: one more every config.InstructionLineInterval.
func visibleLines(elapsed float64) int {
	return min(len(instructions), int(elapsed/config.InstructionLineInterval))
}

// InstructionState types out the rules line by line over twinkling stars.
type InstructionState struct {
	sm      *StateMachine
	res     *Resources
	stars   *ui.TwinkleField
	elapsed float64
}

func NewInstructionState(sm *StateMachine, res *Resources) *InstructionState {
	return &InstructionState{sm: sm, res: res}
}

func (s *InstructionState) Enter() {
	s.elapsed = 0
	s.stars = ui.NewTwinkleField(config.InstructionStarCount, config.ScreenWidth, config.ScreenHeight, s.res.Rng)
}

func (s *InstructionState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.stars.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.Request(NewGameState(s.sm, s.res, s.res.StartRows))
	}
}

func (s *InstructionState) Draw(screen *ebiten.Image) {
	screen.Fill(config.NavyColor)
	s.stars.Draw(screen)

	shown := visibleLines(s.elapsed)
	if shown > 0 {
		s.drawDecorations(screen)
	}
	for i, line := range instructions[:shown] {
		if line.text == "" {
			continue
		}
		face := s.res.Fonts.Body
		if line.bold {
			face = s.res.Fonts.Heading
		}
		y := float64(config.InstructionStartY + i*config.InstructionLineHeight)
		ui.DrawCentered(screen, line.text, face, config.ScreenWidth/2, y, config.TextLightColor)
	}
}

func (s *InstructionState) drawDecorations(screen *ebiten.Image) {
	images := s.res.Sprites.Decorations
	for i, spot := range decorationSpots {
		if i >= len(images) {
			return
		}
		img := images[i]
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(decorationSize/float64(b.Dx()), decorationSize/float64(b.Dy()))
		op.GeoM.Translate(spot[0], spot[1])
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

func (s *InstructionState) Exit() {}
