package ui

import (
	"fmt"

	"github.com/atomicstack/pushmenu/internal/backend"
	"github.com/atomicstack/pushmenu/internal/dom"
	"github.com/atomicstack/pushmenu/internal/logging"
	"github.com/atomicstack/pushmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

type watchEventMsg struct {
	event backend.Event
}

type watchDoneMsg struct{}

type reloadedMsg struct {
	path string
	doc  *dom.Document
	err  error
}

func waitForWatchEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return watchDoneMsg{}
		}
		return watchEventMsg{event: evt}
	}
}

func (m *Model) handleWatchEventMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(watchEventMsg)
	if !ok {
		return nil
	}
	var next tea.Cmd
	if m.watcher != nil {
		next = waitForWatchEvent(m.watcher)
	}
	if update.event.Err != nil {
		logging.Error(update.event.Err)
		m.errMsg = update.event.Err.Error()
		return next
	}
	if m.opts.Reload == nil {
		return next
	}
	return tea.Batch(next, m.reloadCmd(update.event.Path))
}

func (m *Model) handleWatchDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) reloadCmd(path string) tea.Cmd {
	reload := m.opts.Reload
	return func() tea.Msg {
		doc, err := reload()
		return reloadedMsg{path: path, doc: doc, err: err}
	}
}

func (m *Model) handleReloadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(reloadedMsg)
	if !ok {
		return nil
	}
	err := update.err
	if err == nil {
		err = m.mount(update.doc)
	}
	events.Watch.Reload(update.path, err)
	if err != nil {
		logging.Error(err)
		m.errMsg = fmt.Sprintf("reload failed: %v", err)
		return nil
	}
	m.reloads++
	m.errMsg = ""
	m.setInfo("Menu reloaded")
	return nil
}
