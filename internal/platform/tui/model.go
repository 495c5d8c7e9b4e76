package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Options configures a board session.
type Options struct {
	Seed     int64
	Target   int
	Board    string // score table name, e.g. "classic" or "level-3"
	Level    ai.Level
	Adaptive *ai.AdaptiveConfig // nil keeps the tier fixed
	Watch    bool               // start with the AI playing
	Selector *ai.Selector
	Store    *storage.Store // may be nil
	Logger   *log.Logger    // may be nil
}

// GameModel is the Bubble Tea model for one 2048 board. The player moves
// with the arrow keys, can ask the AI for a hint, or hand the board over
// to the AI and watch it play at the tier's pace.
type GameModel struct {
	opts     Options
	game     *engine.Game
	level    ai.Level
	adaptive *ai.Adaptive
	keys     KeyMap
	help     help.Model

	watching  bool
	thinking  bool
	hint      *ai.SearchResult
	hintStats ai.SearchStats
	message   string

	width      int
	height     int
	scoreSaved bool
	quitting   bool
}

// NewGameModel creates a board model.
func NewGameModel(opts Options) GameModel {
	if opts.Selector == nil {
		opts.Selector = ai.NewSelector(ai.NewEvaluator(ai.DefaultWeights(), 0), nil)
	}
	if opts.Level == "" {
		opts.Level = ai.LevelMedium
	}
	if opts.Board == "" {
		opts.Board = "classic"
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		opts:     opts,
		game:     engine.NewGame(opts.Seed, opts.Target),
		level:    opts.Level,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		watching: opts.Watch,
	}
	m.adaptive = m.newAdaptive()
	return m
}

func (m GameModel) newAdaptive() *ai.Adaptive {
	if m.opts.Adaptive == nil {
		return nil
	}
	best := 0
	if m.opts.Store != nil {
		if high, err := m.opts.Store.HighScore(m.opts.Board); err == nil {
			best = high
		}
	}
	return ai.NewAdaptive(*m.opts.Adaptive, m.level, best)
}

// Init starts the AI loop when watching.
func (m GameModel) Init() tea.Cmd {
	if m.watching {
		return tickCmd(m.thinkingDelay())
	}
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	case searchMsg:
		return m.handleSearch(msg)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		if m.watching {
			return m, tickCmd(m.thinkingDelay())
		}
		return m, nil

	case key.Matches(msg, m.keys.Continue):
		if m.game.State() == engine.StateWon {
			m.game.KeepPlaying()
			m.message = "Keep going!"
			if m.watching {
				return m, tickCmd(m.moveInterval())
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Watch):
		m.watching = !m.watching
		m.hint = nil
		if m.watching && !m.thinking {
			return m, tickCmd(m.thinkingDelay())
		}
		return m, nil

	case key.Matches(msg, m.keys.Harder):
		m.setLevel(m.level.Harder())
		return m, nil

	case key.Matches(msg, m.keys.Easier):
		m.setLevel(m.level.Easier())
		return m, nil

	case key.Matches(msg, m.keys.Hint):
		if m.watching || m.thinking || !m.game.CanAct() {
			return m, nil
		}
		m.thinking = true
		m.message = "Thinking..."
		return m, searchCmd(m.opts.Selector, m.game.Grid(), m.level, true)
	}

	if m.watching {
		return m, nil
	}
	if dir, ok := m.keys.Direction(msg); ok {
		m.move(dir)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.watching || m.thinking || !m.game.CanAct() {
		return m, nil
	}
	m.thinking = true
	return m, searchCmd(m.opts.Selector, m.game.Grid(), m.level, false)
}

func (m GameModel) handleSearch(msg searchMsg) (tea.Model, tea.Cmd) {
	m.thinking = false
	if msg.grid != m.game.Grid() {
		// The board changed while searching.
		if m.watching {
			return m, tickCmd(m.moveInterval())
		}
		m.message = ""
		return m, nil
	}

	if msg.hint {
		m.message = ""
		if m.watching {
			// Watch mode started while the hint was running.
			return m, tickCmd(m.thinkingDelay())
		}
		res := msg.result
		m.hint = &res
		m.hintStats = msg.stats
		return m, nil
	}

	if !m.watching {
		return m, nil
	}
	if !msg.result.HasMove {
		m.watching = false
		return m, nil
	}
	m.move(msg.result.Direction)
	if m.game.CanAct() {
		return m, tickCmd(m.moveInterval())
	}
	return m, nil
}

// move plays one direction and handles the end-of-game bookkeeping.
func (m *GameModel) move(dir engine.Direction) {
	if !m.game.Move(dir).Moved {
		return
	}
	m.hint = nil
	m.message = ""

	if m.adaptive != nil {
		if next := m.adaptive.Record(m.game.Score(), m.game.Moves()); next != m.level {
			m.message = fmt.Sprintf("AI tier now %s", next)
			m.level = next
		}
	}

	switch m.game.State() {
	case engine.StateWon:
		m.message = fmt.Sprintf("You reached %d!", m.game.Target())
	case engine.StateOver:
		if m.adaptive != nil && !m.game.Won() {
			m.level = m.adaptive.RecordLoss(m.game.Score())
		}
		m.saveScore()
	}
}

func (m *GameModel) saveScore() {
	if m.scoreSaved || m.game.Score() == 0 {
		return
	}
	m.scoreSaved = true
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.opts.Board, m.game.Score(), m.game.Grid().MaxTile()); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save score", "board", m.opts.Board, "error", err)
	}
}

func (m *GameModel) restart() {
	// A won game counts even when abandoned before the end.
	if m.game.Won() {
		m.saveScore()
	}
	m.opts.Seed = time.Now().UnixNano()
	m.game = engine.NewGame(m.opts.Seed, m.opts.Target)
	m.hint = nil
	m.thinking = false
	m.message = ""
	m.scoreSaved = false
}

func (m *GameModel) setLevel(l ai.Level) {
	m.level = l
	m.hint = nil
	if m.adaptive != nil {
		// A manual choice restarts adaptation from the new tier.
		m.adaptive = m.newAdaptive()
	}
	m.message = fmt.Sprintf("AI tier: %s", l)
}

func (m GameModel) moveInterval() time.Duration {
	return time.Duration(m.opts.Selector.Profile(m.level).MoveIntervalMs) * time.Millisecond
}

func (m GameModel) thinkingDelay() time.Duration {
	return time.Duration(m.opts.Selector.Profile(m.level).ThinkingDelayMs) * time.Millisecond
}

// View renders the board.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var spawned *engine.Cell
	if cell, ok := m.game.LastSpawn(); ok {
		spawned = &cell
	}
	board := RenderBoard(m.game.Grid(), spawned)

	side := m.renderSidebar()
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side)

	var b strings.Builder
	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("  ")
	b.WriteString(fmt.Sprintf("Score: %d  Moves: %d  Target: %d", m.game.Score(), m.game.Moves(), m.game.Target()))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	if m.width > 0 {
		return centerText(b.String(), m.width)
	}
	return b.String()
}

func (m GameModel) renderSidebar() string {
	var b strings.Builder

	mode := "you"
	if m.watching {
		mode = "AI"
	}
	tier := string(m.level)
	if m.adaptive != nil {
		tier += " (adaptive)"
	}
	b.WriteString(fmt.Sprintf("Playing: %s\n", mode))
	b.WriteString(fmt.Sprintf("AI tier: %s\n", tier))
	b.WriteString(fmt.Sprintf("Depth:   %d\n", m.opts.Selector.Profile(m.level).SearchDepth))

	if m.hint != nil {
		b.WriteString("\n")
		if m.hint.HasMove {
			b.WriteString(bestStyle.Render(fmt.Sprintf("Hint: %s", m.hint.Direction)))
			b.WriteString(dimStyle.Render(fmt.Sprintf("\nexpected %.0f, %d nodes", m.hint.ExpectedScore, m.hintStats.Nodes)))
		} else {
			b.WriteString(dimStyle.Render("No moves left"))
		}
		b.WriteString("\n\n")
		scores := m.opts.Selector.QuickScores(m.game.Grid(), m.level)
		b.WriteString(RenderQuickScores(scores, m.hint.Direction, m.hint.HasMove))
	}

	return b.String()
}

func (m GameModel) statusLine() string {
	switch m.game.State() {
	case engine.StateWon:
		return bestStyle.Render(fmt.Sprintf("You reached %d! Press c to keep playing or r to restart.", m.game.Target()))
	case engine.StateOver:
		return titleStyle.Render(fmt.Sprintf("GAME OVER  max tile %d. Press r to restart.", m.game.Grid().MaxTile()))
	}
	if m.thinking {
		return dimStyle.Render("Thinking...")
	}
	return dimStyle.Render(m.message)
}

// Game returns the underlying game.
func (m GameModel) Game() *engine.Game {
	return m.game
}

// Level returns the active AI tier.
func (m GameModel) Level() ai.Level {
	return m.level
}

// IsQuitting returns true if the user asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a full-screen board session and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewGameModel(opts), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// A won game is worth keeping even if the player quits before it ends.
	if m, ok := finalModel.(GameModel); ok && m.game.Won() {
		m.saveScore()
	}
	return nil
}
