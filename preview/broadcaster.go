package preview

import (
	"net/http"
	"sync"
)

// broadcaster fans one reload message out to every connected SSE client.
// Sends are non-blocking; a client that cannot keep up just misses a beat
// and catches the next one.
type broadcaster struct {
	m       sync.Mutex
	clients map[chan string]struct{}
}

func NewBroadcaster() *broadcaster {
	return &broadcaster{
		clients: make(map[chan string]struct{}),
	}
}

func (b *broadcaster) AddClient(ch chan string) {
	b.m.Lock()
	b.clients[ch] = struct{}{}
	b.m.Unlock()
}

func (b *broadcaster) RemoveClient(ch chan string) {
	b.m.Lock()
	defer b.m.Unlock()

	if _, ok := b.clients[ch]; !ok {
		return
	}
	delete(b.clients, ch)
	close(ch)
}

func (b *broadcaster) Broadcast(msg string) {
	b.m.Lock()
	for ch := range b.clients {
		select {
		case ch <- msg:
		default:
		}
	}
	b.m.Unlock()
}

func (b *broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)

	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	msgCh := make(chan string, 1)
	b.AddClient(msgCh)
	defer b.RemoveClient(msgCh)

	notify := r.Context().Done()

	w.Write([]byte(":ok\n\n"))
	flusher.Flush()

	for {
		select {
		case <-notify:
			return
		case msg := <-msgCh:
			w.Write([]byte("event: update\n"))
			w.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()
		}
	}
}

var _ http.Handler = (*broadcaster)(nil)
