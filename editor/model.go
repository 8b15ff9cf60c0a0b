package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tedit/input"
	"github.com/iw2rmb/tedit/screen"
)

// SaveMsg is emitted as a command result when the user asks to save.
type SaveMsg struct{}

// Model is a Bubble Tea component that renders and drives a State.
//
// Bubble Tea owns the terminal here: Model translates its key, mouse and
// window size messages into input events and draws each frame into an
// in-memory grid.
type Model struct {
	state  *State
	grid   *screen.Grid
	styles screen.Styles
}

func NewModel(state *State, styles screen.Styles) Model {
	return Model{
		state:  state,
		grid:   screen.NewGrid(0, 0),
		styles: styles,
	}
}

func (m Model) State() *State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Resize(msg.Width, msg.Height)
		m.grid.Resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		ev, ok := eventFromKey(msg)
		if !ok {
			return m, nil
		}
		return m, resultCmd(m.state.HandleEvent(ev))
	case tea.MouseMsg:
		ev, ok := eventFromMouse(msg)
		if !ok {
			return m, nil
		}
		return m, resultCmd(m.state.HandleEvent(ev))
	}
	return m, nil
}

func resultCmd(res Result) tea.Cmd {
	switch res.Action {
	case ActionQuit:
		return tea.Quit
	case ActionSave:
		return func() tea.Msg { return SaveMsg{} }
	default:
		return nil
	}
}

// View draws the full frame. Bubble Tea diffs the output itself, so every
// frame repaints all rows.
func (m Model) View() string {
	m.grid.Apply(m.state.Render(true)...)
	return m.grid.Render(m.styles)
}

var teaKeys = map[tea.KeyType]input.KeyEvent{
	tea.KeyEnter:     {Code: input.KeyEnter},
	tea.KeyTab:       {Code: input.KeyTab},
	tea.KeyShiftTab:  {Code: input.KeyTab, Mod: input.ModShift},
	tea.KeyBackspace: {Code: input.KeyBackspace},
	tea.KeyCtrlH:     {Code: input.KeyBackspace},
	tea.KeyDelete:    {Code: input.KeyDelete},
	tea.KeyInsert:    {Code: input.KeyInsert},
	tea.KeyEsc:       {Code: input.KeyEsc},
	tea.KeySpace:     {Code: input.KeyRune, Rune: ' '},

	tea.KeyUp:     {Code: input.KeyUp},
	tea.KeyDown:   {Code: input.KeyDown},
	tea.KeyLeft:   {Code: input.KeyLeft},
	tea.KeyRight:  {Code: input.KeyRight},
	tea.KeyHome:   {Code: input.KeyHome},
	tea.KeyEnd:    {Code: input.KeyEnd},
	tea.KeyPgUp:   {Code: input.KeyPageUp},
	tea.KeyPgDown: {Code: input.KeyPageDown},

	tea.KeyShiftUp:    {Code: input.KeyUp, Mod: input.ModShift},
	tea.KeyShiftDown:  {Code: input.KeyDown, Mod: input.ModShift},
	tea.KeyShiftLeft:  {Code: input.KeyLeft, Mod: input.ModShift},
	tea.KeyShiftRight: {Code: input.KeyRight, Mod: input.ModShift},
	tea.KeyShiftHome:  {Code: input.KeyHome, Mod: input.ModShift},
	tea.KeyShiftEnd:   {Code: input.KeyEnd, Mod: input.ModShift},

	tea.KeyCtrlUp:     {Code: input.KeyUp, Mod: input.ModCtrl},
	tea.KeyCtrlDown:   {Code: input.KeyDown, Mod: input.ModCtrl},
	tea.KeyCtrlLeft:   {Code: input.KeyLeft, Mod: input.ModCtrl},
	tea.KeyCtrlRight:  {Code: input.KeyRight, Mod: input.ModCtrl},
	tea.KeyCtrlHome:   {Code: input.KeyHome, Mod: input.ModCtrl},
	tea.KeyCtrlEnd:    {Code: input.KeyEnd, Mod: input.ModCtrl},
	tea.KeyCtrlPgUp:   {Code: input.KeyPageUp, Mod: input.ModCtrl},
	tea.KeyCtrlPgDown: {Code: input.KeyPageDown, Mod: input.ModCtrl},

	tea.KeyCtrlShiftUp:    {Code: input.KeyUp, Mod: input.ModCtrl | input.ModShift},
	tea.KeyCtrlShiftDown:  {Code: input.KeyDown, Mod: input.ModCtrl | input.ModShift},
	tea.KeyCtrlShiftLeft:  {Code: input.KeyLeft, Mod: input.ModCtrl | input.ModShift},
	tea.KeyCtrlShiftRight: {Code: input.KeyRight, Mod: input.ModCtrl | input.ModShift},
	tea.KeyCtrlShiftHome:  {Code: input.KeyHome, Mod: input.ModCtrl | input.ModShift},
	tea.KeyCtrlShiftEnd:   {Code: input.KeyEnd, Mod: input.ModCtrl | input.ModShift},
}

func eventFromKey(msg tea.KeyMsg) (input.Event, bool) {
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) == 0 {
			return nil, false
		}
		if msg.Paste || len(msg.Runes) > 1 {
			return input.PasteEvent{Text: string(msg.Runes)}, true
		}
		ev := input.KeyEvent{Code: input.KeyRune, Rune: msg.Runes[0]}
		if msg.Alt {
			ev.Mod |= input.ModAlt
		}
		return ev, true
	}

	ev, ok := teaKeys[msg.Type]
	if !ok && msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		ev, ok = input.KeyEvent{Code: input.KeyRune, Rune: rune('a' + msg.Type - tea.KeyCtrlA), Mod: input.ModCtrl}, true
	}
	if !ok {
		return nil, false
	}
	if msg.Alt {
		ev.Mod |= input.ModAlt
	}
	return ev, true
}

func eventFromMouse(msg tea.MouseMsg) (input.Event, bool) {
	ev := input.MouseEvent{X: msg.X, Y: msg.Y}
	if msg.Shift {
		ev.Mod |= input.ModShift
	}
	if msg.Alt {
		ev.Mod |= input.ModAlt
	}
	if msg.Ctrl {
		ev.Mod |= input.ModCtrl
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.Kind = input.MouseWheelUp
		return ev, msg.Action == tea.MouseActionPress
	case tea.MouseButtonWheelDown:
		ev.Kind = input.MouseWheelDown
		return ev, msg.Action == tea.MouseActionPress
	case tea.MouseButtonLeft:
		ev.Button = input.ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = input.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = input.ButtonRight
	default:
		if msg.Action != tea.MouseActionRelease {
			return nil, false
		}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = input.MousePress
	case tea.MouseActionRelease:
		ev.Action = input.MouseRelease
	case tea.MouseActionMotion:
		ev.Action = input.MouseDrag
	}
	return ev, true
}
