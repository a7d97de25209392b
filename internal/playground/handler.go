package playground

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
	"github.com/fynk-lang/fynk/foundation/fynk"
	mdwast "github.com/fynk-lang/fynk/foundation/fynk/ast"
	"github.com/fynk-lang/fynk/foundation/fynk/diag"
	"github.com/fynk-lang/fynk/pkg/core/cache"
)

// Message types
const (
	TypePing   = "ping"
	TypeParse  = "parse"
	TypeTokens = "tokens"

	TypePong       = "pong"
	TypeAST        = "ast"
	TypeTokenList  = "tokens"
	TypeDiagnostic = "diagnostic"
	TypeError      = "error"
)

// WSMessage is a client request
type WSMessage struct {
	Type    string          `json:"type"`    // "parse", "tokens", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// WSSourcePayload carries the source of a parse or tokens request
type WSSourcePayload struct {
	File   string `json:"file,omitempty"`
	Source string `json:"source"`
}

// WSResponse is a server reply
type WSResponse struct {
	Type    string      `json:"type"`    // "ast", "tokens", "diagnostic", "pong", "error"
	Session string      `json:"session"` // Connection id
	Payload interface{} `json:"payload"` // Response-specific payload
}

// WSASTPayload carries the structural dump of a parsed program
type WSASTPayload struct {
	RunID   string     `json:"run_id"`
	Program mdwast.Map `json:"program"`
}

// WSToken is one token of a tokens reply
type WSToken struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// WSTokensPayload carries a token stream
type WSTokensPayload struct {
	RunID  string    `json:"run_id"`
	Tokens []WSToken `json:"tokens"`
}

// WSDiagnosticPayload carries the diagnostics of a failed run
type WSDiagnosticPayload struct {
	RunID       string            `json:"run_id"`
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Handler serves the live parse websocket
type Handler struct {
	engine          *fynk.Engine
	logger          *mdwlog.Logger
	upgrader        websocket.Upgrader
	readTimeout     time.Duration
	maxMessageBytes int64

	// results caches Check results by file and source; nil when disabled
	results *cache.Cache
}

// NewHandler creates a websocket handler backed by engine
func NewHandler(engine *fynk.Engine, cfg Config, logger *mdwlog.Logger) *Handler {
	h := &Handler{
		engine: engine,
		logger: logger.WithField("component", "fynk-playground"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local development tool
			},
		},
		readTimeout:     cfg.ReadTimeout,
		maxMessageBytes: cfg.MaxMessageBytes,
	}
	if cfg.CacheSize >= 0 {
		h.results = cache.New(cache.Config{MaxItems: cfg.CacheSize, TTL: cfg.CacheTTL})
	}
	return h
}

// Close releases the result cache
func (h *Handler) Close() {
	if h.results != nil {
		h.results.Close()
	}
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection serves requests on one connection in order
func (h *Handler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	session := uuid.NewString()
	logger := h.logger.WithCorrelationID(session)
	logger.Info("WebSocket connection established", mdwlog.Fields{
		"remote": conn.RemoteAddr().String(),
	})

	if h.maxMessageBytes > 0 {
		conn.SetReadLimit(h.maxMessageBytes)
	}
	h.extendDeadline(conn)
	conn.SetPongHandler(func(string) error {
		h.extendDeadline(conn)
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WarnWithErr("WebSocket read error", err)
			} else {
				logger.Info("WebSocket connection closed")
			}
			return
		}
		h.extendDeadline(conn)

		resp := h.dispatch(logger, msg)
		resp.Session = session
		if err := conn.WriteJSON(resp); err != nil {
			logger.WarnWithErr("WebSocket write failed", err)
			return
		}
	}
}

func (h *Handler) extendDeadline(conn *websocket.Conn) {
	if h.readTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(h.readTimeout))
	}
}

func (h *Handler) dispatch(logger *mdwlog.Logger, msg WSMessage) WSResponse {
	switch msg.Type {
	case TypePing:
		return WSResponse{Type: TypePong}

	case TypeParse, TypeTokens:
		var payload WSSourcePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return errorResponse("invalid_payload", "Invalid source payload")
		}
		if payload.File == "" {
			payload.File = "<playground>"
		}
		logger.Debug("Playground request", mdwlog.Fields{
			"type":  msg.Type,
			"file":  payload.File,
			"bytes": len(payload.Source),
		})
		return h.run(msg.Type, payload)

	default:
		return errorResponse("unknown_type", "Unknown message type: "+msg.Type)
	}
}

func (h *Handler) check(payload WSSourcePayload) (*fynk.Result, error) {
	if h.results == nil {
		return h.engine.Check(payload.File, payload.Source)
	}

	value, err := h.results.GetOrSet(cache.Key(payload.File, payload.Source), func() (interface{}, error) {
		return h.engine.Check(payload.File, payload.Source)
	})
	if err != nil {
		return nil, err
	}
	return value.(*fynk.Result), nil
}

func (h *Handler) run(kind string, payload WSSourcePayload) WSResponse {
	result, err := h.check(payload)
	if err != nil {
		return errorResponse(string(mdwerror.GetCode(err)), err.Error())
	}

	if !result.OK() && (kind == TypeParse || result.Tokens == nil) {
		return WSResponse{
			Type: TypeDiagnostic,
			Payload: WSDiagnosticPayload{
				RunID:       result.RunID,
				Diagnostics: result.Diagnostics,
			},
		}
	}

	if kind == TypeTokens {
		tokens := result.Tokens.Tokens()
		out := make([]WSToken, len(tokens))
		for i, tok := range tokens {
			out[i] = WSToken{
				Kind:   tok.Kind.String(),
				Lexeme: tok.Lexeme(),
				Line:   tok.Line,
				Column: tok.Column,
			}
		}
		return WSResponse{
			Type:    TypeTokenList,
			Payload: WSTokensPayload{RunID: result.RunID, Tokens: out},
		}
	}

	return WSResponse{
		Type:    TypeAST,
		Payload: WSASTPayload{RunID: result.RunID, Program: mdwast.Dump(result.Program)},
	}
}

func errorResponse(code, message string) WSResponse {
	return WSResponse{
		Type:    TypeError,
		Payload: WSErrorPayload{Code: code, Message: message},
	}
}
