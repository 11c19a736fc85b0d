package systems

import (
	"image/color"

	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/duel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// lungeDistance is how far a winner steps through the opponent's guard.
const lungeDistance = 28

// CharacterVisual drives a duelist entity's pose from round outcomes.
type CharacterVisual struct {
	entry *donburi.Entry
}

var _ duel.Character = (*CharacterVisual)(nil)

func NewCharacterVisual(entry *donburi.Entry) *CharacterVisual {
	return &CharacterVisual{entry: entry}
}

func (c *CharacterVisual) Win()   { c.setPose(duel.PoseWin) }
func (c *CharacterVisual) Lose()  { c.setPose(duel.PoseLose) }
func (c *CharacterVisual) Reset() { c.setPose(duel.PoseStand) }

func (c *CharacterVisual) setPose(p duel.Pose) {
	if !c.entry.Valid() {
		return
	}
	components.Character.Get(c.entry).Pose = p
}

// DrawCharacters renders both duelists procedurally.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(e)
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)
		drawCharacter(screen, ch, float32(ch.X+ox), float32(ch.Y+oy))
	})
}

func drawCharacter(screen *ebiten.Image, ch *components.CharacterData, x, y float32) {
	c := cfg.Character
	facing := float32(ch.Facing)

	switch ch.Pose {
	case duel.PoseLose:
		// Fallen flat, blade dropped behind
		drawFallen(screen, x, y, facing, c.LoseTint)
	case duel.PoseWin:
		// Lunged past the center with the blade extended
		x += facing * lungeDistance
		drawBody(screen, x, y, ch.Color)
		armY := y - c.BodyHeight*0.65
		vector.StrokeLine(screen, x, armY, x+facing*(c.BodyWidth/2+c.SwordLength), armY,
			c.SwordWidth, c.SwordColor, true)
	default:
		// Guard stance, blade low and forward
		drawBody(screen, x, y, ch.Color)
		handX := x + facing*c.BodyWidth/2
		handY := y - c.BodyHeight*0.5
		vector.StrokeLine(screen, handX, handY, handX+facing*c.SwordLength*0.7, handY+c.SwordLength*0.7,
			c.SwordWidth, c.SwordColor, true)
	}
}

func drawBody(screen *ebiten.Image, x, y float32, clr color.RGBA) {
	c := cfg.Character
	vector.FillRect(screen, x-c.BodyWidth/2, y-c.BodyHeight, c.BodyWidth, c.BodyHeight, clr, false)
	vector.FillRect(screen, x-c.HeadSize/2, y-c.BodyHeight-c.HeadSize-2, c.HeadSize, c.HeadSize, clr, false)
}

func drawFallen(screen *ebiten.Image, x, y, facing float32, clr color.RGBA) {
	c := cfg.Character
	// Body lies toward the back, head furthest away
	length := c.BodyHeight + c.HeadSize
	left := x
	if facing > 0 {
		left = x - length
	}
	vector.FillRect(screen, left, y-c.BodyWidth*0.6, length, c.BodyWidth*0.6, clr, false)

	bladeX := x - facing*(length+6)
	vector.StrokeLine(screen, bladeX, y-1, bladeX-facing*c.SwordLength*0.8, y-1, c.SwordWidth, c.SwordColor, true)
}
