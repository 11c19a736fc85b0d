package duel

// Pose is what a character shows: standing, victorious or defeated.
type Pose int

const (
	PoseStand Pose = iota
	PoseWin
	PoseLose
)

func (p Pose) String() string {
	switch p {
	case PoseWin:
		return "win"
	case PoseLose:
		return "lose"
	}
	return "stand"
}

// PoseCharacter is a Character that only remembers its pose.
type PoseCharacter struct {
	Pose Pose
}

func (c *PoseCharacter) Win()   { c.Pose = PoseWin }
func (c *PoseCharacter) Lose()  { c.Pose = PoseLose }
func (c *PoseCharacter) Reset() { c.Pose = PoseStand }

// Observers fans notifications out to each observer in order.
type Observers []Observer

func (obs Observers) RoundStarted(round int) {
	for _, o := range obs {
		o.RoundStarted(round)
	}
}

func (obs Observers) StrikeArmed(round int) {
	for _, o := range obs {
		o.StrikeArmed(round)
	}
}

func (obs Observers) RoundResolved(r Result) {
	for _, o := range obs {
		o.RoundResolved(r)
	}
}
