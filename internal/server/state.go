package server

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/amoebalab/menavky/internal/game"
)

// session is one player's connection: a shuffled ring and the rounds
// resolved on it. Rounds are resolved silently up front; the animated
// replay only runs after the player clicks the right card.
type session struct {
	ID       string
	Player   string
	Round    *game.Round
	RoundNum int
	Answer   game.Outcome // terminal outcome of the silently resolved round
	conn     *websocket.Conn
	latency  time.Duration
}

// ServerState tracks active sessions.
type ServerState struct {
	Address   string // filled in by Run once the listener is bound
	StepDelay time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

// NewServerState creates an empty server state with the default pacing.
func NewServerState() *ServerState {
	return &ServerState{
		StepDelay: game.DefaultStepDelay,
		sessions:  make(map[string]*session),
	}
}

// newRNG seeds a math/rand generator from crypto/rand so concurrent
// sessions don't share a shuffle sequence.
func newRNG() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; a time seed
		// keeps the game playable.
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// HandleWS upgrades the connection and runs one player session until the
// client goes away.
func (s *ServerState) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		klog.Errorf("HandleWS: accept failed: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	join, err := readJoin(ctx, conn)
	if err != nil {
		klog.Errorf("HandleWS: join failed: %v", err)
		return
	}

	sess, err := s.newSession(join.PlayerName, conn)
	if err != nil {
		klog.Errorf("HandleWS: session setup failed: %v", err)
		sendError(ctx, conn, err)
		return
	}
	defer s.dropSession(sess.ID)
	klog.Infof("HandleWS: session %s started for %q", sess.ID, sess.Player)

	// Measure RTT before the first round so logs carry a latency estimate.
	if err := s.pingSession(ctx, sess); err != nil {
		klog.Errorf("HandleWS: ping failed: %v", err)
		return
	}

	if err := s.sendState(ctx, sess); err != nil {
		klog.Errorf("HandleWS: initial state failed: %v", err)
		return
	}

	for {
		var msg game.WsMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			klog.V(1).Infof("HandleWS: session %s read loop ended: %v", sess.ID, err)
			return
		}
		payload, err := msg.Parse()
		if err != nil {
			klog.Errorf("HandleWS: session %s sent bad message: %v", sess.ID, err)
			sendError(ctx, conn, err)
			continue
		}
		switch p := payload.(type) {
		case *game.ClickMessage:
			if err := s.handleClick(ctx, sess, p); err != nil {
				klog.Errorf("HandleWS: session %s click failed: %v", sess.ID, err)
				return
			}
		case *game.PongMessage:
			sess.latency = time.Duration(time.Now().UnixNano()-p.ServerTime) / 2
			klog.V(1).Infof("HandleWS: session %s latency %s", sess.ID, sess.latency)
		default:
			klog.V(1).Infof("HandleWS: session %s ignoring %s", sess.ID, msg.Type)
		}
	}
}

func readJoin(ctx context.Context, conn *websocket.Conn) (*game.JoinMessage, error) {
	var msg game.WsMessage
	if err := wsjson.Read(ctx, conn, &msg); err != nil {
		return nil, err
	}
	payload, err := msg.Parse()
	if err != nil {
		return nil, err
	}
	join, ok := payload.(*game.JoinMessage)
	if !ok {
		return nil, fmt.Errorf("expected join message, got %s", msg.Type)
	}
	return join, nil
}

func (s *ServerState) newSession(player string, conn *websocket.Conn) (*session, error) {
	round, err := game.NewRound(game.DefaultCardCounts(), newRNG())
	if err != nil {
		return nil, fmt.Errorf("build round: %w", err)
	}
	sess := &session{
		ID:       uuid.NewString(),
		Player:   player,
		Round:    round,
		RoundNum: 1,
		conn:     conn,
	}
	s.resolveCurrentRound(sess)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *ServerState) dropSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	klog.Infof("session %s closed", id)
}

// resolveCurrentRound plays the round out invisibly and remembers the
// terminal outcome. The card to click is the terminal draw: the found
// amoeba, or the mutation that killed it.
func (s *ServerState) resolveCurrentRound(sess *session) {
	outcomes := sess.Round.Resolve()
	sess.Answer = outcomes[len(outcomes)-1]
	klog.V(1).Infof("session %s round %d resolved: %s after %d draws",
		sess.ID, sess.RoundNum, sess.Answer.Terminal, len(outcomes))
}

func (s *ServerState) pingSession(ctx context.Context, sess *session) error {
	ping, err := game.NewWsMessage(game.MsgTypePing, game.PingMessage{ServerTime: time.Now().UnixNano()})
	if err != nil {
		return err
	}
	return wsjson.Write(ctx, sess.conn, ping)
}

func (s *ServerState) sendState(ctx context.Context, sess *session) error {
	msg, err := game.NewWsMessage(game.MsgTypeState, game.StateMessage{
		SessionID: sess.ID,
		Round:     sess.RoundNum,
		Cards:     sess.Round.Cards(),
		Throw:     sess.Round.Throw(),
	})
	if err != nil {
		return err
	}
	return wsjson.Write(ctx, sess.conn, msg)
}

// handleClick checks the clicked card against the resolved answer. Any
// copy of the right card counts. A correct click replays the round with
// animation and then starts the next one.
func (s *ServerState) handleClick(ctx context.Context, sess *session, click *game.ClickMessage) error {
	card := click.Card
	cards := sess.Round.Cards()
	if card == "" && click.Position >= 0 && click.Position < len(cards) {
		card = cards[click.Position]
	}

	correct := card == sess.Answer.Drawn
	result := game.ResultMessage{Correct: correct}
	if correct {
		result.Terminal = sess.Answer.Terminal
	}
	msg, err := game.NewWsMessage(game.MsgTypeResult, result)
	if err != nil {
		return err
	}
	if err := wsjson.Write(ctx, sess.conn, msg); err != nil {
		return err
	}
	if !correct {
		klog.V(1).Infof("session %s clicked %s, wanted %s", sess.ID, card, sess.Answer.Drawn)
		return nil
	}

	if err := s.replayRound(ctx, sess); err != nil {
		return err
	}
	return s.nextRound(ctx, sess)
}

// replayRound re-runs the already-resolved round visibly, one paced Step
// message per draw.
func (s *ServerState) replayRound(ctx context.Context, sess *session) error {
	if err := sess.Round.Replay(); err != nil {
		return fmt.Errorf("replay round: %w", err)
	}
	for !sess.Round.Done() {
		if s.StepDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.StepDelay):
			}
		}
		out := sess.Round.Step(true)
		msg, err := game.NewWsMessage(game.MsgTypeStep, game.StepMessage{
			Outcome:  out,
			Position: sess.Round.Position(),
		})
		if err != nil {
			return err
		}
		if err := wsjson.Write(ctx, sess.conn, msg); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServerState) nextRound(ctx context.Context, sess *session) error {
	if err := sess.Round.Next(); err != nil {
		return fmt.Errorf("next round: %w", err)
	}
	sess.RoundNum++
	s.resolveCurrentRound(sess)
	return s.sendState(ctx, sess)
}

func sendError(ctx context.Context, conn *websocket.Conn, err error) {
	msg, merr := game.NewWsMessage(game.MsgTypeError, game.ErrorMessage{Message: err.Error()})
	if merr != nil {
		return
	}
	_ = wsjson.Write(ctx, conn, msg)
}
