package websocket

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Rayou-Ryan/Puissance-4/internal/service/game"
	"github.com/Rayou-Ryan/Puissance-4/pkg/auth"
	"github.com/Rayou-Ryan/Puissance-4/pkg/httputil"
	"github.com/Rayou-Ryan/Puissance-4/pkg/useragent"
)

type TableLookup interface {
	Get(tableID string) (*game.Table, bool)
}

// Handler upgrades renderer connections and routes their commands to the table.
type Handler struct {
	Hub      *Hub
	Tables   TableLookup
	Tokens   *auth.TokenIssuer
	Upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewHandler(hub *Hub, tables TableLookup, tokens *auth.TokenIssuer, allowedOrigins []string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Hub:    hub,
		Tables: tables,
		Tokens: tokens,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.Named("ws"),
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			// Non-browser clients (the TUI, curl) send none.
			return true
		}
		return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
	}
}

// HandleWebSocket authenticates the table token before upgrading so that
// failures are plain HTTP errors.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	tokenString, err := httputil.GetTokenFromRequest(c.Request)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No table token"})
		return
	}
	claims, err := h.Tokens.Validate(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid table token"})
		return
	}
	table, ok := h.Tables.Get(claims.TableID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", zap.Error(err))
		return
	}

	client := newClient(h.Hub, conn, table.ID)
	client.logger = client.logger.With(
		zap.String("client", useragent.Describe(c.Request)),
		zap.String("ip", useragent.ClientIP(c.Request)),
	)
	h.Hub.register(client)

	state := table.State()
	client.sendMessage(ServerMessage{Type: MessageState, State: &state})

	go client.writePump()
	go client.readPump(func(c *Client, msg ClientMessage) {
		h.handleMessage(table, c, msg)
	})
}

// handleMessage applies one command. Successful commands reach every
// renderer through the hub; only errors are answered directly.
func (h *Handler) handleMessage(table *game.Table, c *Client, msg ClientMessage) {
	var err error
	switch msg.Type {
	case MessageMove:
		if msg.Column == nil {
			c.sendMessage(ServerMessage{Type: MessageError, Message: "a column number is required"})
			return
		}
		_, err = table.Play(*msg.Column)
	case MessageUndo:
		_, err = table.Undo()
	case MessageReset:
		_, err = table.Reset()
	case MessageReconfigure:
		table.RequestReconfigure()
	default:
		c.sendMessage(ServerMessage{Type: MessageError, Message: "unknown message type: " + msg.Type})
		return
	}

	if err != nil {
		c.logger.Debug("command rejected", zap.String("type", msg.Type), zap.Error(err))
		c.sendMessage(ServerMessage{Type: MessageError, Message: err.Error()})
	}
}
