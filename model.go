package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/youssefhassan/tetris-wasm/tetris"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenThemes
	screenConfig
)

type tickMsg struct{}

// The engine counts gravity in ticks, so the program drives it at a
// fixed 60 per second regardless of terminal refresh.
const tickRate = time.Second / 60

var menuItems = []string{"Play", "Themes", "Config", "Quit"}
var configItems = []string{"Ghost piece", "Board scale"}

type Model struct {
	screen      Screen
	width       int
	height      int
	menuIndex   int
	themeIndex  int
	configIndex int
	config      Config
	game        *tetris.Game
	seed        int64
}

// NewModel builds the program state. A non-zero seed fixes the first
// session's piece sequence; restarts reseed from the clock.
func NewModel(seed int64) Model {
	config, _ := loadConfig()
	index := themeIndexByName(config.Theme)
	if index < 0 {
		index = 0
		config.Theme = themes[index].Name
	}
	return Model{
		screen:     screenMenu,
		config:     config,
		themeIndex: index,
		seed:       seed,
		game:       tetris.NewGame(pickSeed(seed)),
	}
}

func pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen != screenGame {
			return m, nil
		}
		if m.game.Update() {
			DebugLogf("gravity drop y=%d", m.game.Y)
		}
		return m, tickCmd()
	case tea.KeyMsg:
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenThemes:
			return m, m.updateThemes(msg)
		case screenConfig:
			return m, m.updateConfig(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenThemes:
		return viewThemes(m)
	case screenConfig:
		return viewConfig(m)
	default:
		return ""
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickRate, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		switch m.menuIndex {
		case 0:
			m.game = tetris.NewGame(pickSeed(m.seed))
			m.seed = 0
			m.screen = screenGame
			return tickCmd()
		case 1:
			m.screen = screenThemes
		case 2:
			m.screen = screenConfig
		case 3:
			return tea.Quit
		}
	case "q", "ctrl+c":
		return tea.Quit
	}
	return nil
}

// updateGame translates the five play keys into engine actions. While
// the session is over only restart and leaving do anything.
func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	if m.game.Over {
		switch msg.String() {
		case "r":
			m.game = tetris.NewGame(pickSeed(0))
		case "q", "esc":
			m.screen = screenMenu
		}
		return nil
	}
	switch msg.String() {
	case "left", "h":
		m.game.MoveLeft()
	case "right", "l":
		m.game.MoveRight()
	case "up", "k", "x":
		m.game.Rotate()
	case "down", "j":
		m.game.SoftDrop()
	case " ":
		rows := m.game.HardDrop()
		DebugLogf("hard drop rows=%d score=%d", rows, m.game.Score)
	case "p":
		m.game.Paused = !m.game.Paused
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateThemes(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
		}
	case "enter":
		m.config.Theme = themes[m.themeIndex].Name
		if err := saveConfig(m.config); err != nil {
			DebugLogf("config save error: %v", err)
		}
		m.screen = screenMenu
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
		}
	case "enter", "left", "right":
		switch m.configIndex {
		case 0:
			m.config.Ghost = !m.config.Ghost
		case 1:
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.config.Scale = clampScale(m.config.Scale + delta)
		}
		if err := saveConfig(m.config); err != nil {
			DebugLogf("config save error: %v", err)
		}
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}
