package game

import (
	"encoding/json"
	"fmt"
)

// Message type for WebSocket communication between client and server.
type MessageType string

const (
	MsgTypeJoin   MessageType = "join"   // Client starts a session
	MsgTypeState  MessageType = "state"  // Server sends the ring and the dice throw
	MsgTypeStep   MessageType = "step"   // Server sends one animated draw outcome
	MsgTypeClick  MessageType = "click"  // Client clicks a card on the ring
	MsgTypeResult MessageType = "result" // Server sends the click verdict
	MsgTypePing   MessageType = "ping"   // Server pings client to measure RTT
	MsgTypePong   MessageType = "pong"   // Client responds to ping
	MsgTypeError  MessageType = "error"  // Server sends an error message
)

// WsMessage represents a WebSocket message.
type WsMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewWsMessage creates a new WsMessage with a marshaled payload.
func NewWsMessage(msgType MessageType, payload interface{}) (WsMessage, error) {
	if payload == nil {
		return WsMessage{Type: msgType}, nil
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return WsMessage{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return WsMessage{
		Type:    msgType,
		Payload: payloadBytes,
	}, nil
}

// Parse unmarshals the message payload into one of the message types (JoinMessage, StateMessage, etc.)
func (m *WsMessage) Parse() (any, error) {
	var target any
	switch m.Type {
	case MsgTypeJoin:
		target = &JoinMessage{}
	case MsgTypeState:
		target = &StateMessage{}
	case MsgTypeStep:
		target = &StepMessage{}
	case MsgTypeClick:
		target = &ClickMessage{}
	case MsgTypeResult:
		target = &ResultMessage{}
	case MsgTypePing:
		target = &PingMessage{}
	case MsgTypePong:
		target = &PongMessage{}
	case MsgTypeError:
		target = &ErrorMessage{}
	default:
		return nil, fmt.Errorf("unknown message type: %s", m.Type)
	}

	if len(m.Payload) == 0 {
		return target, nil
	}

	err := json.Unmarshal(m.Payload, target)
	return target, err
}

// JoinMessage is the payload for MsgTypeJoin
type JoinMessage struct {
	PlayerName string `json:"player_name,omitempty"`
}

// StateMessage is the payload for MsgTypeState. Cards are in the ring's
// current visitation order (the thrown lab sits at slot 0 in the first
// round; later rounds keep the ring as the direction rules left it).
type StateMessage struct {
	SessionID string `json:"session_id"`
	Round     int    `json:"round"` // 1-based round counter
	Cards     []Card `json:"cards"`
	Throw     Throw  `json:"throw"`
}

// StepMessage is the payload for MsgTypeStep
type StepMessage struct {
	Outcome  Outcome `json:"outcome"`
	Position int     `json:"position"` // ring slot of the drawn card
}

// ClickMessage is the payload for MsgTypeClick
type ClickMessage struct {
	Position int  `json:"position"` // ring slot the player clicked
	Card     Card `json:"card"`
}

// ResultMessage is the payload for MsgTypeResult
type ResultMessage struct {
	Correct  bool     `json:"correct"`
	Terminal Terminal `json:"terminal,omitempty"` // how the clicked round had ended
}

// PingMessage is the payload for MsgTypePing
type PingMessage struct {
	ServerTime int64 `json:"server_time"` // Nanoseconds since Unix epoch
}

// PongMessage is the payload for MsgTypePong
type PongMessage struct {
	ServerTime int64 `json:"server_time"` // Same value from Ping
	ClientTime int64 `json:"client_time"` // Client's own timestamp
}

// ErrorMessage is the payload for MsgTypeError
type ErrorMessage struct {
	Message string `json:"message"`
}
