package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lines/internal/config"
	"github.com/vovakirdan/tui-lines/internal/core"
)

// linesModes are the playable modes offered by the selector.
var linesModes = []struct {
	id    string
	label string
}{
	{"lines", "Lines (with jokers ★)"},
	{"lines_classic", "Classic (colors only)"},
}

var difficultyLabels = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "Easy   - 5 colors, more jokers",
	config.DifficultyNormal: "Normal - 7 colors",
	config.DifficultyHard:   "Hard   - 9 colors, 4 new pieces per turn",
}

// LinesSelection holds the user's choice from the Lines menu.
type LinesSelection struct {
	GameID     string
	Difficulty config.DifficultyPreset
}

// LinesModeModel lets users choose the mode and difficulty for Lines.
type LinesModeModel struct {
	cursor       int
	diffCursor   int
	inDifficulty bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    LinesSelection
	choosing     bool
	quitting     bool
	back         bool
}

// NewLinesModeModel creates a new Lines mode selection model.
func NewLinesModeModel(width, height int) LinesModeModel {
	return LinesModeModel{
		diffCursor: 1, // normal
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// Init initializes the model.
func (m LinesModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LinesModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inDifficulty {
			return m.handleDifficultyKey(action)
		}
		return m.handleModeKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LinesModeModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(0, m.cursor-1)
	case MenuActionDown:
		m.cursor = min(len(linesModes)-1, m.cursor+1)
	case MenuActionSelect:
		m.selection.GameID = linesModes[m.cursor].id
		m.inDifficulty = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m LinesModeModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.diffCursor = max(0, m.diffCursor-1)
	case MenuActionDown:
		m.diffCursor = min(len(config.Presets)-1, m.diffCursor+1)
	case MenuActionSelect:
		m.selection.Difficulty = config.Presets[m.diffCursor]
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.inDifficulty = false
	}
	return m, nil
}

// View renders the mode or difficulty list.
func (m LinesModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("L I N E S", m.width))
	b.WriteString("\n\n")

	var items []string
	cursor := m.cursor
	if m.inDifficulty {
		b.WriteString(centerText("Select difficulty:", m.width))
		for _, p := range config.Presets {
			items = append(items, difficultyLabels[p])
		}
		cursor = m.diffCursor
	} else {
		b.WriteString(centerText("Select game mode:", m.width))
		for _, mode := range linesModes {
			items = append(items, mode.label)
		}
	}
	b.WriteString("\n\n")

	for i, item := range items {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", marker, item), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LinesModeModel) Selected() *LinesSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LinesModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back on the first screen.
func (m LinesModeModel) WantsBack() bool {
	return m.back
}

// RunLinesModeSelector runs the Lines menu and returns the selection,
// or nil when the user backed out.
func RunLinesModeSelector(cfg core.RuntimeConfig) (*LinesSelection, error) {
	p := tea.NewProgram(
		NewLinesModeModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LinesModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
