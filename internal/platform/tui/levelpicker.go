package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// PlaySelection is the board chosen in the level picker.
type PlaySelection struct {
	Level int // 0 = classic, 1-7 = campaign level
}

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeys {
	return pickerKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// LevelPickerModel lets users choose classic play or a campaign level.
type LevelPickerModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	classicTarget int
	width         int
	height        int
	keys          pickerKeys
	selection     PlaySelection
	choosing      bool
	quitting      bool
}

// NewLevelPickerModel creates a picker. classicTarget is shown for classic play.
func NewLevelPickerModel(classicTarget, width, height int) LevelPickerModel {
	return LevelPickerModel{
		classicTarget: classicTarget,
		width:         width,
		height:        height,
		keys:          defaultPickerKeys(),
		choosing:      true,
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inLevelSelect {
			return m.handleLevelSelectKey(msg)
		}
		return m.handleModeSelectKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelPickerModel) handleModeSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < 1 { // Classic, Campaign level
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor == 0 {
			m.choosing = false
			m.selection = PlaySelection{Level: 0}
			return m, tea.Quit
		}
		m.inLevelSelect = true
		m.levelCursor = 0
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m LevelPickerModel) handleLevelSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.levelCursor < engine.LevelCount()-1 {
			m.levelCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		m.selection = PlaySelection{Level: m.levelCursor + 1} // 1-indexed
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the picker.
func (m LevelPickerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m LevelPickerModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		fmt.Sprintf("Classic (target %d)", m.classicTarget),
		fmt.Sprintf("Campaign level... (%d levels)", engine.LevelCount()),
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+mode, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc/Q: Quit"), m.width))

	return b.String()
}

func (m LevelPickerModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, lvl := range engine.Levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%d. %-18s target %d", cursor, lvl.ID, lvl.Name, lvl.Target)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing or quit.
func (m LevelPickerModel) Selected() *PlaySelection {
	if m.choosing || m.quitting {
		return nil
	}
	return &m.selection
}

// RunLevelPicker shows the picker and returns the choice, or nil if the user quit.
func RunLevelPicker(classicTarget, width, height int) (*PlaySelection, error) {
	p := tea.NewProgram(
		NewLevelPickerModel(classicTarget, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
