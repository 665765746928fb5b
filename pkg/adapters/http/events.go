package http

import (
	"errors"
	"fmt"
	"net/http"
)

// SubscribeEvents handles the GET /events request (SSE).
// Each document reload is sent as a data line; the stream starts with a ping event.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	watcher, ok := s.Engine.(Watcher)
	if !ok {
		s.writeError(w, r, http.StatusNotImplemented, errors.New("engine does not support watching"))
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, r, http.StatusInternalServerError, errors.New("streaming not supported"))
		return
	}

	events, err := watcher.Watch(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, fmt.Errorf("watch error: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Debug("SSE client disconnected")
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}
