package tui

import "sync"

// AlertBox queues blocking messages raised by the use cases. The app shows
// the oldest one on top of the current view until a key dismisses it.
type AlertBox struct {
	mu    sync.Mutex
	queue []string
}

func NewAlertBox() *AlertBox {
	return &AlertBox{}
}

func (a *AlertBox) Alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.queue = append(a.queue, msg)
}

// Current returns the alert on screen, if any.
func (a *AlertBox) Current() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.queue) == 0 {
		return "", false
	}
	return a.queue[0], true
}

func (a *AlertBox) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.queue) > 0 {
		a.queue = a.queue[1:]
	}
}
