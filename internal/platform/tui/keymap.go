package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// KeyMap holds the key bindings of the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Potion     key.Binding
	Bomb       key.Binding
	Shrink     key.Binding
	Slow       key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Debug      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Potion, k.Bomb, k.Shrink, k.Slow, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Potion, k.Bomb, k.Shrink, k.Slow},
		{k.SpeedUp, k.SpeedDown, k.Pause, k.Restart},
		{k.Debug, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Potion: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "potion"),
		),
		Bomb: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "bomb"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "shrink"),
		),
		Slow: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "slow"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "debug dump"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key to a game action. Keys the world does not
// handle (help, screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Potion, core.ActionUsePotion},
		{k.Bomb, core.ActionUseBomb},
		{k.Shrink, core.ActionUseShrink},
		{k.Slow, core.ActionUseSlow},
		{k.SpeedUp, core.ActionSpeedUp},
		{k.SpeedDown, core.ActionSpeedDown},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Debug, core.ActionDebugDump},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
