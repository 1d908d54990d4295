package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Selection holds the user's choice of game mode and difficulty.
type Selection struct {
	GameID     string
	Difficulty config.DifficultyPreset
}

// selectorStep is the screen the selector is currently showing.
type selectorStep int

const (
	stepMode selectorStep = iota
	stepDifficulty
	stepDone
)

// difficultyOption is one row of the difficulty list.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy   - slower ball and paddle"},
	{config.DifficultyNormal, "Normal - classic speed"},
	{config.DifficultyHard, "Hard   - faster ball and paddle"},
}

// SelectorModel lets users choose the game mode and difficulty before playing.
// Steps whose value is already known are skipped.
type SelectorModel struct {
	modes     []registry.GameInfo
	step      selectorStep
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	selection Selection
	quitting  bool
	back      bool
}

// NewSelectorModel creates a selector over the given modes.
// Non-empty fields of preset are taken as already chosen.
func NewSelectorModel(width, height int, modes []registry.GameInfo, preset Selection) SelectorModel {
	m := SelectorModel{
		modes:     modes,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		selection: preset,
	}
	m.help.Width = width
	m.step = m.nextStep()
	return m
}

// nextStep returns the first step that still needs an answer.
func (m SelectorModel) nextStep() selectorStep {
	switch {
	case m.selection.GameID == "":
		return stepMode
	case m.selection.Difficulty == "":
		return stepDifficulty
	default:
		return stepDone
	}
}

// Init initializes the model.
func (m SelectorModel) Init() tea.Cmd {
	if m.step == stepDone {
		return tea.Quit
	}
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m SelectorModel) optionCount() int {
	if m.step == stepMode {
		return len(m.modes)
	}
	return len(difficultyOptions)
}

func (m SelectorModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.optionCount() == 0 {
			return m, nil
		}
		if m.step == stepMode {
			m.selection.GameID = m.modes[m.cursor].ID
		} else {
			m.selection.Difficulty = difficultyOptions[m.cursor].preset
		}
		m.cursor = 0
		m.step = m.nextStep()
		if m.step == stepDone {
			return m, tea.Quit
		}
	case MenuActionBack:
		if m.step == stepDifficulty && len(m.modes) > 0 {
			m.selection.GameID = ""
			m.step = stepMode
			m.cursor = 0
			return m, nil
		}
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current selection step.
func (m SelectorModel) View() string {
	if m.quitting || m.step == stepDone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("A R K A N O I D"), m.width))
	b.WriteString("\n\n")

	var heading string
	var options []string
	if m.step == stepMode {
		heading = "Select game mode:"
		for _, g := range m.modes {
			options = append(options, g.Title)
		}
	} else {
		heading = "Select difficulty:"
		for _, d := range difficultyOptions {
			options = append(options, d.label)
		}
	}

	b.WriteString(centerText(heading, m.width))
	b.WriteString("\n\n")

	for i, opt := range options {
		line := fmt.Sprintf("  %s", opt)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %s", opt))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keyMapper.MenuKeys())), m.width))

	return b.String()
}

// Selected returns the selection, or nil if the user has not finished choosing.
func (m SelectorModel) Selected() *Selection {
	if m.step != stepDone || m.quitting || m.back {
		return nil
	}
	sel := m.selection
	return &sel
}

// IsQuitting returns true if user wants to quit.
func (m SelectorModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user backed out of the first step.
func (m SelectorModel) WantsBack() bool {
	return m.back
}

// RunSelector asks for whatever preset leaves empty and returns the full selection.
// Returns nil if the user quit. No program is started when nothing is left to ask.
func RunSelector(cfg core.RuntimeConfig, preset Selection) (*Selection, error) {
	model := NewSelectorModel(cfg.ScreenW, cfg.ScreenH, registry.List(), preset)
	if model.step == stepDone {
		return model.Selected(), nil
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run selector: %w", err)
	}

	m, ok := finalModel.(SelectorModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
