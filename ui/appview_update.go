package ui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"sportai/config"
	appmodel "sportai/model"
)

const (
	headerHeight = 2
	footerHeight = 5
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		vpHeight := msg.Height - headerHeight - footerHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !a.ready {
			a.viewport = viewport.New(msg.Width, vpHeight)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = vpHeight
		}
		a.input.Width = msg.Width - 4
		a.refreshViewport()
		return a, nil

	case appmodel.ResponseMsg:
		cmds = append(cmds, a.dataModel.ApplyResponse(msg))
		a.refreshViewport()

	case appmodel.ModelsDetectedMsg:
		cmds = append(cmds, a.dataModel.ApplyModels(msg))

	case appmodel.PingResultMsg:
		cmds = append(cmds, a.dataModel.ApplyPing(msg))

	case appmodel.NotificationMsg:
		cmds = append(cmds, a.showNotice(msg.Text))

	case clearNoticeMsg:
		if msg.id == a.noticeID {
			a.notice = ""
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		if a.dataModel.InFlight() {
			a.refreshViewport()
		}
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch {
		case a.showModelSelector:
			return a.handleModelSelectorUpdate(msg)
		case a.showTokenDetails:
			a.showTokenDetails = false
			return a, nil
		default:
			return a.handleKey(msg)
		}
	}

	return a, tea.Batch(cmds...)
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "enter":
		if a.mode == modeCredential {
			sel := a.dataModel.Selection()
			a.dataModel.SetCredential(sel, a.input.Value())
			a.leaveCredentialMode()
			return a, a.showNotice(credentialLabel(sel) + " updated")
		}
		cmd := a.dataModel.Submit(a.input.Value())
		if cmd == nil {
			return a, nil
		}
		a.input.SetValue("")
		a.refreshViewport()
		return a, cmd

	case "esc":
		if a.mode == modeCredential {
			a.leaveCredentialMode()
		}
		return a, nil

	case "tab":
		if a.mode == modeCredential {
			return a, nil
		}
		a.dataModel.SetProvider(a.dataModel.Selection().Next())
		return a, nil

	case "ctrl+k":
		a.enterCredentialMode()
		return a, textinput.Blink

	case "ctrl+r":
		a.dataModel.ResetConversation()
		a.refreshViewport()
		return a, nil

	case "ctrl+t":
		a.showTokenDetails = true
		return a, nil

	case "ctrl+d":
		return a, a.dataModel.DetectModels(a.dataModel.Credentials().OllamaURL)

	case "ctrl+p":
		return a, a.dataModel.Ping(a.dataModel.Credentials().OllamaURL)

	case "ctrl+o":
		if len(a.dataModel.DiscoveredModels()) == 0 {
			return a, a.showNotice("Detect models first (ctrl+d)")
		}
		a.openModelSelector()
		return a, textinput.Blink

	case "ctrl+y":
		reply, ok := a.dataModel.Conversation().LastReply()
		if !ok {
			return a, nil
		}
		if err := clipboard.WriteAll(reply); err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[UI] clipboard write failed: %v", err)
			}
			return a, a.showNotice("Copy failed: " + err.Error())
		}
		return a, a.showNotice("Reply copied")

	case "pgup", "pgdown":
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *AppView) enterCredentialMode() {
	sel := a.dataModel.Selection()
	a.mode = modeCredential
	a.input.SetValue(a.dataModel.Credentials().Get(sel))
	a.input.Placeholder = credentialPrompt(sel)
	if sel == appmodel.SelectionOllama {
		a.input.EchoMode = textinput.EchoNormal
	} else {
		a.input.EchoMode = textinput.EchoPassword
	}
}

func (a *AppView) leaveCredentialMode() {
	a.mode = modeChat
	a.input.SetValue("")
	a.input.EchoMode = textinput.EchoNormal
	a.input.Placeholder = "Enter your sports query here..."
}

func credentialLabel(sel appmodel.Selection) string {
	if sel == appmodel.SelectionOllama {
		return "Ollama server URL"
	}
	return sel.String() + " API key"
}

func credentialPrompt(sel appmodel.Selection) string {
	if sel == appmodel.SelectionOllama {
		return "Enter your Ollama server URL (e.g. http://192.168.1.10:11434)"
	}
	return "Enter your " + sel.String() + " API Key here"
}
