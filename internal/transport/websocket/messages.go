package websocket

import "github.com/Rayou-Ryan/Puissance-4/internal/service/game"

const (
	MessageMove        = "move"
	MessageUndo        = "undo"
	MessageReset       = "reset"
	MessageReconfigure = "reconfigure"

	MessageState  = "state"
	MessageError  = "error"
	MessageClosed = "table_closed"
)

type ClientMessage struct {
	Type   string `json:"type"`
	Column *int   `json:"column,omitempty"`
}

type ServerMessage struct {
	Type    string      `json:"type"`
	State   *game.State `json:"state,omitempty"`
	Message string      `json:"message,omitempty"`
}
