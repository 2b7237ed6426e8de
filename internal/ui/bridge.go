package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// bridge turns store notifications into storeChangedMsg without blocking the
// notifying goroutine. Bursts collapse into one pending message; the model
// re-reads every store when it arrives.
type bridge struct {
	send func(tea.Msg)
	wake chan struct{}
	done chan struct{}
	once sync.Once
}

func newBridge(send func(tea.Msg)) *bridge {
	b := &bridge{
		send: send,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go b.loop()
	return b
}

func (b *bridge) notify() {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *bridge) loop() {
	for {
		select {
		case <-b.done:
			return
		case <-b.wake:
			b.send(storeChangedMsg{})
		}
	}
}

func (b *bridge) close() {
	b.once.Do(func() { close(b.done) })
}
