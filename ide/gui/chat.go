package gui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/nexlify/nexlify-smoke/ide/ai"
)

// ChatPanel is the AI assistant panel on the IDE's right side. The message
// list stretches to fill all available vertical space with the input row
// pinned to the bottom edge, so the panel always extends to the bottom of
// the window.
type ChatPanel struct {
	assistant *ai.Assistant

	mu       sync.Mutex
	messages []string

	list     *widget.List
	entry    *widget.Entry
	sendBtn  *widget.Button
	inputRow fyne.CanvasObject
	content  fyne.CanvasObject
}

// NewChatPanel builds the chat panel around an assistant client.
func NewChatPanel(assistant *ai.Assistant) *ChatPanel {
	p := &ChatPanel{assistant: assistant}

	p.list = widget.NewList(
		func() int {
			p.mu.Lock()
			defer p.mu.Unlock()
			return len(p.messages)
		},
		func() fyne.CanvasObject {
			l := widget.NewLabel("")
			l.Wrapping = fyne.TextWrapWord
			return l
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			p.mu.Lock()
			defer p.mu.Unlock()
			if i < len(p.messages) {
				o.(*widget.Label).SetText(p.messages[i])
			}
		},
	)

	p.entry = widget.NewEntry()
	p.entry.SetPlaceHolder("Ask the assistant...")
	p.entry.OnSubmitted = func(string) { p.Send() }
	p.sendBtn = widget.NewButton("Send", p.Send)

	p.inputRow = container.NewBorder(nil, nil, nil, p.sendBtn, p.entry)

	// Border layout: the list takes every pixel the input row doesn't.
	p.content = container.NewBorder(
		widget.NewLabelWithStyle("AI Assistant", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		p.inputRow,
		nil, nil,
		p.list,
	)

	p.append("assistant: Hi! Ask me anything about your scene.")
	return p
}

// Content returns the panel's canvas object.
func (p *ChatPanel) Content() fyne.CanvasObject {
	return p.content
}

// Send submits the entry text to the assistant and appends the reply. The
// request runs off the UI thread; failures show up as chat lines instead of
// crashing the window.
func (p *ChatPanel) Send() {
	prompt := p.entry.Text
	if prompt == "" {
		return
	}
	p.entry.SetText("")
	p.append("you: " + prompt)

	go func() {
		reply, err := p.assistant.Ask(prompt)
		if err != nil {
			reply = fmt.Sprintf("(error: %v)", err)
		}
		fyne.Do(func() {
			p.append("assistant: " + reply)
		})
	}()
}

// Messages returns a copy of the transcript.
func (p *ChatPanel) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.messages))
	copy(out, p.messages)
	return out
}

func (p *ChatPanel) append(msg string) {
	p.mu.Lock()
	p.messages = append(p.messages, msg)
	n := len(p.messages)
	p.mu.Unlock()
	p.list.Refresh()
	p.list.ScrollTo(n - 1)
}
