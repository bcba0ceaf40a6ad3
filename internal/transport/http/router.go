package http

import (
	"net/http"

	"quiz-app/internal/app"
)

// NewMux exposes the websocket bridge and a health check.
func NewMux(service *app.QuizService, defaultQuiz string) *http.ServeMux {
	wsHandler := NewWSHandler(service, defaultQuiz)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	return mux
}
