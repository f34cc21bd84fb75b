package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"crimedash/internal/apperror"
	"crimedash/internal/dashboard"
	"crimedash/internal/dataset"
	"crimedash/internal/live"
	"crimedash/internal/view"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 16
)

// Inbound message types.
const (
	msgSelectArea      = "select_area"
	msgSelectCrimeType = "select_crime_type"
	msgSetFilter       = "set_filter"
	msgClearFilter     = "clear_filter"
	msgReset           = "reset"
	msgAutoRefresh     = "auto_refresh"
	msgRefresh         = "refresh"
	msgNotifications   = "notifications"
	msgTab             = "tab"
)

// Outbound message types.
const (
	msgView  = "view"
	msgLive  = "live"
	msgError = "error"
)

var errUnknownMessage = errors.New("unknown message type")

type inbound struct {
	Type      string                 `json:"type"`
	Value     string                 `json:"value,omitempty"`
	Kind      view.FilterKind        `json:"kind,omitempty"`
	Enabled   *bool                  `json:"enabled,omitempty"`
	Tab       string                 `json:"tab,omitempty"`
	Selection *view.SelectionRequest `json:"selection,omitempty"`
}

type outbound struct {
	Type      string          `json:"type"`
	Selection *view.Selection `json:"selection,omitempty"`
	View      *view.Result    `json:"view,omitempty"`
	Live      *live.Snapshot  `json:"live,omitempty"`
	Tab       dashboard.Tab   `json:"tab,omitempty"`
	Payload   any             `json:"payload,omitempty"`
	Error     *errorBody      `json:"error,omitempty"`
}

// viewClient is one mounted dashboard view. Its selection is owned by the read loop; its
// live metrics by its own updater.
type viewClient struct {
	id      uuid.UUID
	conn    *websocket.Conn
	send    chan outbound
	updater *live.Updater
	sel     view.Selection
	logger  zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logRequest(r).Warn().Err(err).Str("remote_addr", r.RemoteAddr).Msg("WebSocket upgrade failed")
		return
	}

	id := uuid.New()
	ctx, cancel := context.WithCancel(s.ctx)
	c := &viewClient{
		id:   id,
		conn: conn,
		send: make(chan outbound, sendBuffer),
		updater: live.NewUpdater(live.Options{
			Interval:     s.cfg.LiveInterval,
			RefreshDelay: s.cfg.RefreshDelay,
			OnTick:       func(live.Snapshot) { liveTicks.Inc() },
		}),
		sel:    view.ResetSelection(),
		logger: logRequest(r).With().Str("view_id", id.String()).Logger(),
		ctx:    ctx,
		cancel: cancel,
	}

	activeViews.Inc()
	c.logger.Info().Str("remote_addr", r.RemoteAddr).Msg("Dashboard view mounted")

	go c.writePump()
	c.start(s.cfg.AutoRefresh)
	go c.readPump()
}

// start sends the initial state and begins forwarding live snapshots.
func (c *viewClient) start(autoRefresh bool) {
	// Hijacked connections are not closed by http.Server.Shutdown.
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.ctx.Done()
		_ = c.conn.Close()
	}()

	snapshots, unsubscribe := c.updater.Subscribe()
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer unsubscribe()
		for {
			select {
			case <-c.ctx.Done():
				return
			case snap, ok := <-snapshots:
				if !ok {
					return
				}
				c.enqueue(outbound{Type: msgLive, Live: &snap})
			}
		}
	}()

	c.pushView()
	snap := c.updater.Snapshot()
	c.enqueue(outbound{Type: msgLive, Live: &snap})

	if autoRefresh {
		if err := c.updater.SetAutoRefresh(true); err != nil {
			c.pushError(err)
		}
	}
}

// teardown runs once the read loop ends. Every producer is stopped before send is closed.
func (c *viewClient) teardown() {
	c.cancel()
	_ = c.updater.Close()
	c.wg.Wait()
	close(c.send)
	activeViews.Dec()
	c.logger.Info().Msg("Dashboard view unmounted")
}

func (c *viewClient) enqueue(msg outbound) {
	select {
	case c.send <- msg:
	default:
		c.logger.Warn().Str("type", msg.Type).Msg("Dropping message for slow client")
	}
}

func (c *viewClient) pushView() {
	res, err := view.ComputeView(dataset.Areas(), c.sel)
	if err != nil {
		c.pushError(err)
		return
	}
	viewComputations.WithLabelValues(string(c.sel.SortKey)).Inc()
	sel := c.sel
	c.enqueue(outbound{Type: msgView, Selection: &sel, View: &res})
}

func (c *viewClient) pushError(err error) {
	appErr := apperror.From(err)
	c.enqueue(outbound{Type: msgError, Error: &errorBody{Code: appErr.Code, Message: appErr.Message}})
}

func (c *viewClient) readPump() {
	defer func() {
		c.teardown()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn().Err(err).Msg("WebSocket read error")
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			c.pushError(apperror.New(apperror.CodeBadRequest, "malformed message", http.StatusBadRequest).WithCause(err))
			continue
		}
		if err := c.handle(msg); err != nil {
			c.pushError(err)
		}
	}
}

func (c *viewClient) handle(msg inbound) error {
	switch msg.Type {
	case msgSelectArea:
		if msg.Value == "" {
			return apperror.New(apperror.CodeBadRequest, "select_area needs a value", http.StatusBadRequest)
		}
		c.sel.SelectedArea = view.ToggleSelection(c.sel.SelectedArea, msg.Value)
	case msgSelectCrimeType:
		if msg.Value == "" {
			return apperror.New(apperror.CodeBadRequest, "select_crime_type needs a value", http.StatusBadRequest)
		}
		c.sel.SelectedCrimeType = view.ToggleSelection(c.sel.SelectedCrimeType, msg.Value)
	case msgSetFilter:
		if msg.Selection == nil {
			return apperror.New(apperror.CodeBadRequest, "set_filter needs a selection", http.StatusBadRequest)
		}
		if err := msg.Selection.Validate(); err != nil {
			return err
		}
		c.sel = msg.Selection.Apply(c.sel)
	case msgClearFilter:
		sel, err := view.ClearFilter(c.sel, msg.Kind)
		if err != nil {
			return err
		}
		c.sel = sel
	case msgReset:
		c.sel = view.ResetSelection()
	case msgAutoRefresh:
		return c.updater.SetAutoRefresh(msg.Enabled != nil && *msg.Enabled)
	case msgNotifications:
		c.updater.SetNotifications(msg.Enabled == nil || *msg.Enabled)
		return nil
	case msgRefresh:
		c.refresh()
		return nil
	case msgTab:
		return c.pushTab(msg.Tab)
	default:
		return apperror.New(apperror.CodeBadRequest, "unknown message type "+msg.Type, http.StatusBadRequest).WithCause(errUnknownMessage)
	}

	c.pushView()
	return nil
}

// refresh runs off the read loop so the view stays responsive while it waits.
func (c *viewClient) refresh() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.updater.Refresh(c.ctx); err != nil && !errors.Is(err, context.Canceled) {
			c.pushError(err)
		}
	}()
}

func (c *viewClient) pushTab(name string) error {
	tab, err := dashboard.ParseTab(name)
	if err != nil {
		return err
	}
	payload, err := dashboard.Build(tab, c.sel)
	if err != nil {
		return err
	}
	c.enqueue(outbound{Type: msgTab, Tab: tab, Payload: payload})
	return nil
}

func (c *viewClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
