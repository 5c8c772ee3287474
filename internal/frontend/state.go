package frontend

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/amoebalab/menavky/internal/game"
)

// GlobalClientState manages the connection and the current round as seen
// by the browser.
type GlobalClientState struct {
	Conn  *websocket.Conn
	Error string

	// Last received round state
	SessionID string
	Round     int
	Cards     []game.Card
	Throw     game.Throw

	// Animation state for the replay after a correct click
	Pointer  int // ring slot of the last animated draw, -1 when idle
	LastStep *game.StepMessage
	Result   *game.ResultMessage
	Solved   bool // correct card clicked, replay running or finished

	// Listeners for state updates
	Listeners map[string]func()
}

var State *GlobalClientState

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		State = &GlobalClientState{
			Pointer:   -1,
			Listeners: make(map[string]func()),
		}
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

// Notify wakes up every mounted component.
func (s *GlobalClientState) Notify() {
	for _, l := range s.Listeners {
		l()
	}
}

// ConnectWS connects to the server and sends a join message.
func (s *GlobalClientState) ConnectWS() error {
	if s.Conn != nil {
		s.Conn.CloseNow()
	}

	wsURL := fmt.Sprintf("ws://%s/ws", app.Window().URL().Host)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}

	s.Conn = conn

	joinMsg, err := game.NewWsMessage(game.MsgTypeJoin, game.JoinMessage{})
	if err != nil {
		return err
	}
	if err := wsjson.Write(ctx, conn, joinMsg); err != nil {
		return fmt.Errorf("failed to send join: %w", err)
	}

	// Start reading loop in background
	go s.readLoop(conn)

	return nil
}

func (s *GlobalClientState) readLoop(conn *websocket.Conn) {
	ctx := context.Background()
	for {
		var msg game.WsMessage
		err := wsjson.Read(ctx, conn, &msg)
		if err != nil {
			klog.Errorf("WS read error: %v", err)
			break
		}

		s.handleMessage(ctx, conn, msg)
	}
}

func (s *GlobalClientState) handleMessage(ctx context.Context, conn *websocket.Conn, msg game.WsMessage) {
	payload, err := msg.Parse()
	if err != nil {
		klog.Errorf("handleMessage: %v", err)
		return
	}

	switch p := payload.(type) {
	case *game.PingMessage:
		pong, err := game.NewWsMessage(game.MsgTypePong, game.PongMessage{
			ServerTime: p.ServerTime,
			ClientTime: time.Now().UnixNano(),
		})
		if err == nil {
			wsjson.Write(ctx, conn, pong)
		}
	case *game.StateMessage:
		s.SessionID = p.SessionID
		s.Round = p.Round
		s.Cards = p.Cards
		s.Throw = p.Throw
		s.Pointer = -1
		s.LastStep = nil
		s.Result = nil
		s.Solved = false
		s.Notify()
	case *game.StepMessage:
		s.LastStep = p
		s.Pointer = p.Position
		s.Notify()
	case *game.ResultMessage:
		s.Result = p
		if p.Correct {
			s.Solved = true
		}
		s.Notify()
	case *game.ErrorMessage:
		s.Error = p.Message
		s.Notify()
	default:
		klog.V(1).Infof("handleMessage: ignoring %s", msg.Type)
	}
}

// SendClick reports a click on the given ring slot to the server.
func (s *GlobalClientState) SendClick(position int, card game.Card) {
	if s.Conn == nil {
		return
	}
	msg, err := game.NewWsMessage(game.MsgTypeClick, game.ClickMessage{
		Position: position,
		Card:     card,
	})
	if err != nil {
		klog.Errorf("SendClick: %v", err)
		return
	}
	wsjson.Write(context.Background(), s.Conn, msg)
}
