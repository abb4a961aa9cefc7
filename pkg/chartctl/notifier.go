package chartctl

import "sync"

// Notifier is a ResizeSource fed by calls to Notify.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
}

func NewNotifier() *Notifier {
	return &Notifier{listeners: map[int]func(){}}
}

func (n *Notifier) OnResize(fn func()) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// Notify calls every subscribed listener.
func (n *Notifier) Notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
