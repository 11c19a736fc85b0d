package duel

import "time"

// Tally keeps session statistics in memory. It is never persisted.
type Tally struct {
	Rounds       int
	Wins         int
	Losses       int
	Early        int
	Streak       int
	BestStreak   int
	BestReaction time.Duration
	totalWinTime time.Duration
}

// Record folds one round result into the tally.
func (t *Tally) Record(r Result) {
	t.Rounds++

	if r.Outcome == PlayerLose {
		t.Losses++
		t.Streak = 0
		if r.Early {
			t.Early++
		}
		return
	}

	t.Wins++
	t.Streak++
	if t.Streak > t.BestStreak {
		t.BestStreak = t.Streak
	}
	t.totalWinTime += r.Reaction
	if t.Wins == 1 || r.Reaction < t.BestReaction {
		t.BestReaction = r.Reaction
	}
}

// MeanReaction is the average reaction over winning rounds.
func (t *Tally) MeanReaction() time.Duration {
	if t.Wins == 0 {
		return 0
	}
	return t.totalWinTime / time.Duration(t.Wins)
}

// WinRate returns wins over rounds played, or 0 before the first round.
func (t *Tally) WinRate() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Rounds)
}
