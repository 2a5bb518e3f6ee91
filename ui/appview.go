package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	appmodel "sportai/model"
)

// noticeDuration is how long a notification stays in the status line.
const noticeDuration = 4 * time.Second

type inputMode int

const (
	modeChat       inputMode = iota
	modeCredential           // editing the API key or server URL of the active service
)

// AppView renders the conversation and forwards user intent to the orchestrator.
type AppView struct {
	dataModel *appmodel.Model

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	mode inputMode

	// Model selector (Ollama)
	showModelSelector bool
	modelFilter       textinput.Model
	filteredModels    []string
	selectedModelIdx  int

	showTokenDetails bool

	notice   string
	noticeID int
}

type clearNoticeMsg struct {
	id int
}

// NewAppView creates the root bubbletea model.
func NewAppView(m *appmodel.Model) AppView {
	input := textinput.New()
	input.Placeholder = "Enter your sports query here..."
	input.Focus()
	input.CharLimit = 4000

	filter := textinput.New()
	filter.Placeholder = "filter models"

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = AssistantStyle

	return AppView{
		dataModel:   m,
		input:       input,
		modelFilter: filter,
		spinner:     s,
	}
}

func (a AppView) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.spinner.Tick)
}

// showNotice puts text in the status line and schedules its removal.
func (a *AppView) showNotice(text string) tea.Cmd {
	a.noticeID++
	a.notice = text
	id := a.noticeID
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}
