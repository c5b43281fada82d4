package monsters

// End-of-game banners.
const (
	WinMessage  = "Winner !!"
	LoseMessage = "Game Over !!"
)

// StateMachine owns phase transitions. Won and Lost are terminal: once
// reached, every method is a no-op.
type StateMachine struct {
	Renderer Renderer
	Collide  CollisionDetector
}

// Start leaves the intro. Returns true if the phase changed.
func (sm StateMachine) Start(w *World) bool {
	if w.State.Phase != PhaseAwaitingStart {
		return false
	}
	w.State.Phase = PhaseRunning
	return true
}

// TogglePause flips between Running and Paused.
func (sm StateMachine) TogglePause(w *World) bool {
	switch w.State.Phase {
	case PhaseRunning:
		w.State.Phase = PhasePaused
	case PhasePaused:
		w.State.Phase = PhaseRunning
	default:
		return false
	}
	return true
}

// SetDirection records the latest steering key. A key pressed while paused
// also resumes. Ignored before the start gesture and after the game ended.
func (sm StateMachine) SetDirection(w *World, d Direction) bool {
	if d == DirNone {
		return false
	}
	switch w.State.Phase {
	case PhaseRunning:
	case PhasePaused:
		w.State.Phase = PhaseRunning
	default:
		return false
	}
	w.State.LastDirection = d
	return true
}

// Motion returns the status-line motion label.
func (sm StateMachine) Motion(w *World) string {
	if w.State.Phase == PhasePaused || w.State.LastDirection == DirNone {
		return "Paused"
	}
	return w.State.LastDirection.String()
}

// CheckWin moves to Won once the body has grown by every food item.
// Returns true only on the transition itself.
func (sm StateMachine) CheckWin(w *World) bool {
	if w.Over() || len(w.Snake.Body) < w.WinLength() {
		return false
	}
	sm.finish(w, PhaseWon, WinMessage)
	return true
}

// CheckLose moves to Lost if any monster is closer than the contact radius
// to the snake's head. Returns true only on the transition itself.
func (sm StateMachine) CheckLose(w *World) bool {
	if w.Over() {
		return false
	}
	for _, m := range w.Monsters {
		if sm.Collide.Caught(m.Pos, w.Snake.Head) {
			sm.finish(w, PhaseLost, LoseMessage)
			return true
		}
	}
	return false
}

func (sm StateMachine) finish(w *World, phase Phase, msg string) {
	w.State.Phase = phase
	if sm.Renderer != nil {
		sm.Renderer.ShowEndMessage(msg)
	}
}
