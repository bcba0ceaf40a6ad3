package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"quiz-app/internal/app"
)

// WSHandler bridges a remote renderer to its own quiz session.
type WSHandler struct {
	service     *app.QuizService
	defaultQuiz string
	upgrader    websocket.Upgrader
}

func NewWSHandler(service *app.QuizService, defaultQuiz string) *WSHandler {
	return &WSHandler{
		service:     service,
		defaultQuiz: defaultQuiz,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

const (
	msgSelect = "select"
	msgSubmit = "submit"
	msgReset  = "reset"
	msgRender = "render"

	msgView  = "view"
	msgError = "error"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	QuestionIndex *int `json:"questionIndex"`
	OptionIndex   *int `json:"optionIndex"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type viewPayload struct {
	ClientID string `json:"clientId"`
	app.View
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and runs one session per connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := r.URL.Query().Get("quizId")
	if quizID == "" {
		quizID = h.defaultQuiz
	}
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctrl, err := h.service.Start(r.Context(), quizID, clientID)
	if err != nil {
		writeError(conn, err.Error())
		return
	}
	defer h.service.Finish(r.Context(), clientID)
	log.Printf("client %s started quiz %s", clientID, quizID)

	// Only this goroutine touches the session and writes to conn.
	if !writeView(conn, clientID, ctrl) {
		return
	}
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error for %s: %v", clientID, err)
			}
			return
		}
		h.service.Touch(r.Context(), clientID)

		var actionErr error
		switch inbound.Type {
		case msgSelect:
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.QuestionIndex == nil || payload.OptionIndex == nil {
				writeError(conn, "invalid select payload")
				continue
			}
			actionErr = ctrl.SelectAnswer(*payload.QuestionIndex, *payload.OptionIndex)
		case msgSubmit:
			actionErr = ctrl.Submit()
		case msgReset:
			ctrl.Reset()
		case msgRender:
		default:
			writeError(conn, "unsupported message type")
			continue
		}
		if actionErr != nil {
			if !writeError(conn, actionErr.Error()) {
				return
			}
			continue
		}
		if !writeView(conn, clientID, ctrl) {
			return
		}
	}
}

func writeView(conn *websocket.Conn, clientID string, ctrl *app.Controller) bool {
	msg := outboundMessage[viewPayload]{Type: msgView, Payload: viewPayload{ClientID: clientID, View: ctrl.Render()}}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("ws write error: %v", err)
		return false
	}
	return true
}

func writeError(conn *websocket.Conn, message string) bool {
	if err := conn.WriteJSON(outboundMessage[errorPayload]{Type: msgError, Payload: errorPayload{Message: message}}); err != nil {
		log.Printf("ws write error: %v", err)
		return false
	}
	return true
}
