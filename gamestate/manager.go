package gamestate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/milk9111/gravityshift/sfx"
	"github.com/rs/zerolog/log"
)

// Phase is the top-level game flow state.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhaseRunning
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Rules are the round parameters from the game prefab.
type Rules struct {
	Duration   float64
	TotalCubes int
}

func DefaultRules() Rules {
	return Rules{Duration: 120, TotalCubes: 5}
}

// Session outlives scene reloads. Once the player has pressed start, a
// restart skips the main menu.
type Session struct {
	SkipMainMenu bool
}

// Manager runs the round: countdown, cube tally and win/lose flow. It is the
// game-state sink the player systems report to.
type Manager struct {
	rules   Rules
	session *Session
	audio   sfx.Player

	phase     Phase
	timer     float64
	cubesLeft int

	// OnPlayerDeactivated is called when the round is lost.
	OnPlayerDeactivated func()
}

func NewManager(rules Rules, session *Session, audio sfx.Player) *Manager {
	if session == nil {
		session = &Session{}
	}
	return &Manager{rules: rules, session: session, audio: audio}
}

// Begin resets the round for a freshly loaded scene.
func (m *Manager) Begin() {
	m.cubesLeft = m.rules.TotalCubes
	m.timer = m.rules.Duration
	if m.session.SkipMainMenu {
		m.StartGame()
		return
	}
	m.setPhase(PhaseMainMenu)
}

// StartGame leaves the main menu (or a finished round) and runs the clock.
func (m *Manager) StartGame() {
	m.play(sfx.CueButtonClick)
	m.setPhase(PhaseRunning)
	m.session.SkipMainMenu = true
}

// Update counts the round timer down while running.
func (m *Manager) Update(dt float64) {
	if m.phase != PhaseRunning {
		return
	}
	m.timer -= dt
	if m.timer <= 0 {
		m.timer = 0
		m.GameOver()
	}
}

func (m *Manager) GameOver() {
	if m.phase == PhaseLost {
		return
	}
	if m.OnPlayerDeactivated != nil {
		m.OnPlayerDeactivated()
	}
	m.setPhase(PhaseLost)
	m.play(sfx.CueGameOver)
}

// CollectCube plays the pickup cue even outside a running round, matching
// the scene's audio feedback, but only counts while running.
func (m *Manager) CollectCube() {
	m.play(sfx.CueCubeCollected)
	if m.phase != PhaseRunning {
		return
	}
	m.cubesLeft = max(m.cubesLeft-1, 0)
	log.Info().Int("cubes_left", m.cubesLeft).Msg("cube collected")
	if m.cubesLeft == 0 {
		m.win()
	}
}

func (m *Manager) win() {
	m.play(sfx.CueGameWin)
	m.setPhase(PhaseWon)
}

// ReportCubeCollected implements the scoring sink.
func (m *Manager) ReportCubeCollected() {
	m.CollectCube()
}

// ReportPlayerDied ends a running round.
func (m *Manager) ReportPlayerDied() {
	if m.phase != PhaseRunning {
		return
	}
	m.GameOver()
}

func (m *Manager) Phase() Phase { return m.phase }

// Running reports whether the simulation should advance (time scale 1).
func (m *Manager) Running() bool { return m.phase == PhaseRunning }

func (m *Manager) TimeLeft() float64 { return m.timer }

func (m *Manager) CubesLeft() int { return m.cubesLeft }

// TimerText renders the remaining time as MM:SS, rounding up.
func (m *Manager) TimerText() string {
	total := int(math.Ceil(m.timer))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func (m *Manager) CubesText() string {
	return strconv.Itoa(m.cubesLeft)
}

func (m *Manager) setPhase(p Phase) {
	if m.phase == p {
		return
	}
	log.Info().Stringer("from", m.phase).Stringer("to", p).Msg("game phase")
	m.phase = p
}

func (m *Manager) play(cue sfx.Cue) {
	if m.audio != nil {
		m.audio.PlayAudioCue(cue)
	}
}
