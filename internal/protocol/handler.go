package protocol

import "sync"

type Handler interface {
	HandleRequest(request Request) Result
}

// Listener is notified about every handled request, while the handler lock is held
type Listener func(request Request, result Result)

// SerializedHandler runs requests of concurrent callers one at a time
type SerializedHandler struct {
	mu        sync.Mutex
	handler   Handler
	listeners []Listener
}

func NewSerializedHandler(handler Handler) *SerializedHandler {
	return &SerializedHandler{
		handler: handler,
	}
}

func (h *SerializedHandler) AddListener(listener Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, listener)
}

func (h *SerializedHandler) HandleRequest(request Request) Result {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := h.handler.HandleRequest(request)
	for _, listener := range h.listeners {
		listener(request, result)
	}
	return result
}
