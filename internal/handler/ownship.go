package handler

import (
	"net/http"
	"time"

	"waypoints-api/internal/gpscache"
	"waypoints-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// DefaultStreamInterval is the push period of /ownship/stream
const DefaultStreamInterval = time.Second

// OwnshipHandler serves the cached own-ship position
type OwnshipHandler struct {
	cache    PositionSource
	interval time.Duration
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// PositionSource is the read side of gpscache.Cache
type PositionSource interface {
	Snapshot() (models.Position, gpscache.State)
}

// OwnshipResponse wraps a snapshot with the cache state
type OwnshipResponse struct {
	State    string          `json:"state"`
	Position models.Position `json:"position"`
}

// NewOwnshipHandler creates a new own-ship handler. interval <= 0 uses DefaultStreamInterval.
func NewOwnshipHandler(cache PositionSource, interval time.Duration, log zerolog.Logger) *OwnshipHandler {
	if interval <= 0 {
		interval = DefaultStreamInterval
	}
	return &OwnshipHandler{
		cache:    cache,
		interval: interval,
		log:      log.With().Str("component", "ownship").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *OwnshipHandler) snapshot() OwnshipResponse {
	pos, state := h.cache.Snapshot()
	return OwnshipResponse{State: state.String(), Position: pos}
}

// Position handles GET /ownship requests
//
//	@Summary	Current own-ship position
//	@Tags		ownship
//	@Produce	json
//	@Success	200	{object}	OwnshipResponse
//	@Router		/ownship [get]
func (h *OwnshipHandler) Position(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// Stream handles GET /ownship/stream, pushing one snapshot per interval over a websocket
//
//	@Summary	Own-ship position stream (websocket)
//	@Tags		ownship
//	@Success	101
//	@Router		/ownship/stream [get]
func (h *OwnshipHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	h.log.Debug().Str("remote", remote).Msg("stream client connected")

	// Drain client frames so close and ping are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		if err := conn.WriteJSON(h.snapshot()); err != nil {
			h.log.Debug().Err(err).Str("remote", remote).Msg("stream write failed")
			return
		}

		select {
		case <-done:
			h.log.Debug().Str("remote", remote).Msg("stream client disconnected")
			return
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
