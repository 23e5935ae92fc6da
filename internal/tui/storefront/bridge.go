package storefront

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themeswitch/internal/ports"
)

const bridgeBuffer = 32

// bridge forwards events raised on other goroutines (theme listeners, the
// debounce timer) into the Bubble Tea update loop.
type bridge struct {
	ch     chan tea.Msg
	done   chan struct{}
	once   sync.Once
	logger ports.Logger
}

func newBridge(logger ports.Logger) *bridge {
	return &bridge{
		ch:     make(chan tea.Msg, bridgeBuffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// send queues msg without blocking. Listeners can run on the update
// goroutine itself, so a full buffer drops the event instead of waiting for
// a drain that cannot happen until Update returns.
func (b *bridge) send(msg tea.Msg) bool {
	select {
	case <-b.done:
		return false
	default:
	}

	select {
	case b.ch <- msg:
		return true
	default:
		if b.logger != nil {
			b.logger.Warn(context.Background(), "dropping storefront event",
				"event", fmt.Sprintf("%T", msg),
				"buffer", bridgeBuffer,
			)
		}
		return false
	}
}

// listen waits for the next event. It yields nil once the bridge is closed.
func (b *bridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return bridgedMsg{inner: msg}
		case <-b.done:
			return nil
		}
	}
}

func (b *bridge) close() {
	b.once.Do(func() { close(b.done) })
}

func (b *bridge) closed() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}
