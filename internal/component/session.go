package component

// SessionPhase — lifecycle of a game session.
type SessionPhase int

const (
	PhaseNotStarted SessionPhase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver // terminal
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}
