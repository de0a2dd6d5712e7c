// Package ws implements the duplex translation session protocol: it decodes
// inbound control messages, dispatches them to the classifier or the
// generation bridge, and serializes outbound events through a single writer
// per connection.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/obiente/translate/gotranslator/internal/bridge"
	"github.com/obiente/translate/gotranslator/internal/config"
	"github.com/obiente/translate/gotranslator/internal/engine"
	"github.com/obiente/translate/gotranslator/internal/langdetect"
)

const readWait = 60 * time.Second

type Server struct {
	cfg        config.Config
	upgrader   websocket.Upgrader
	registry   *engine.Registry
	classifier *langdetect.Classifier
}

func NewServer(cfg config.Config, reg *engine.Registry, cls *langdetect.Classifier) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024 * 16,
			WriteBufferSize: 1024 * 16,
		},
		registry:   reg,
		classifier: cls,
	}
}

// session holds per-connection state. The read loop owns conn reads, the
// write loop owns conn writes, and generating guards the Idle -> Generating
// transition so at most one bridge invocation is active at a time.
type session struct {
	conn       *websocket.Conn
	out        chan any
	ctx        context.Context
	cancel     context.CancelFunc
	generating atomic.Bool
}

func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()
	log.Info().Str("remote", conn.RemoteAddr().String()).Msg("ws client connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sess := &session{
		conn:   conn,
		out:    make(chan any, 16),
		ctx:    ctx,
		cancel: cancel,
	}

	writerDone := make(chan struct{})
	go sess.writeLoop(writerDone)

	sess.readLoop(s)

	// Cancelling the session context detaches any in-flight producer; its
	// late output is discarded rather than waited for.
	cancel()
	<-writerDone
	log.Info().Str("remote", conn.RemoteAddr().String()).Msg("ws client disconnected")
}

// writeLoop is the session's only writer; every outbound event funnels
// through it, so events are never interleaved out of causal order.
func (sess *session) writeLoop(done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case ev := <-sess.out:
			_ = sess.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := sess.conn.WriteJSON(ev); err != nil {
				log.Warn().Err(err).Msg("ws write failed")
				sess.cancel()
				return
			}
		case <-sess.ctx.Done():
			return
		}
	}
}

// send enqueues an event for the writer, dropping it once the session is
// torn down.
func (sess *session) send(ev any) {
	select {
	case sess.out <- ev:
	case <-sess.ctx.Done():
	}
}

func (sess *session) readLoop(s *Server) {
	_ = sess.conn.SetReadDeadline(time.Now().Add(readWait))
	sess.conn.SetPongHandler(func(string) error {
		return sess.conn.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("ws read error")
			}
			return
		}
		_ = sess.conn.SetReadDeadline(time.Now().Add(readWait))

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sess.send(errEvent("Invalid JSON message"))
			continue
		}
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			sess.send(errEvent("Empty text received"))
			continue
		}

		switch msg.Type {
		case "detect":
			res := s.classifier.Classify(text)
			sess.send(detectionEvent{
				Type:       "detection_result",
				Text:       res.Text,
				IsFrench:   res.IsFrench,
				Confidence: res.Confidence,
			})
		case "translate":
			if !sess.generating.CompareAndSwap(false, true) {
				// Reject rather than queue: queuing would interleave two
				// generations' chunks on the same connection.
				sess.send(errEvent("A translation is already in progress"))
				continue
			}
			sess.send(startEvent{Type: "translation_start", Original: text})
			go s.runTranslation(sess, text)
		default:
			sess.send(errEvent(fmt.Sprintf("Unknown message type: %s", msg.Type)))
		}
	}
}

// runTranslation pumps one generation from the bridge to the client. It runs
// off the read loop so message receipt never stalls behind the engine, and
// always returns the session to idle.
func (s *Server) runTranslation(sess *session, text string) {
	defer sess.generating.Store(false)

	eng, err := s.registry.Acquire()
	if err != nil {
		log.Error().Err(err).Msg("engine unavailable")
		sess.send(errEvent(fmt.Sprintf("Translation failed: %v", err)))
		return
	}

	ctx := sess.ctx
	if s.cfg.GenerationTimeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.GenerationTimeoutSec)*time.Second)
		defer cancel()
	}

	st := bridge.Start(ctx, s.cfg.ChunkBuffer, func(ctx context.Context, emit func(string) error) error {
		return eng.TranslateStream(ctx, text, emit)
	})

	var full strings.Builder
	for {
		chunk, err := st.Recv(ctx)
		if err == io.EOF {
			sess.send(endEvent{
				Type:            "translation_end",
				FullTranslation: strings.TrimSpace(full.String()),
			})
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("translation stream failed")
			sess.send(errEvent(fmt.Sprintf("Translation failed: %v", err)))
			return
		}
		full.WriteString(chunk)
		sess.send(chunkEvent{Type: "translation_chunk", Chunk: chunk})
	}
}
