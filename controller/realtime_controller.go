// controller/realtime_controller.go
package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

const realtimeWriteTimeout = 5 * time.Second

// RealtimeController streams donor-availability changes over websockets.
// Delivery is fire-and-forget: a subscriber whose buffer is full misses the
// event.
type RealtimeController struct {
	bus        *util.EventBus
	bufferSize int
}

func NewRealtimeController(bus *util.EventBus, bufferSize int) *RealtimeController {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &RealtimeController{bus: bus, bufferSize: bufferSize}
}

func (rc *RealtimeController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/realtime/donors", rc.StreamDonorAvailability)
}

type realtimeMessage struct {
	Type string                        `json:"type"`
	Data *model.DonorAvailabilityEvent `json:"data,omitempty"`
}

func (rc *RealtimeController) StreamDonorAvailability(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	events := make(chan model.DonorAvailabilityEvent, rc.bufferSize)
	sub := rc.bus.Subscribe(util.EventDonorAvailability, func(_ context.Context, e util.Event) error {
		evt, ok := e.Payload.(model.DonorAvailabilityEvent)
		if !ok {
			return fmt.Errorf("unexpected donor event payload %T", e.Payload)
		}
		select {
		case events <- evt:
		default:
			logger.Debug("Realtime subscriber buffer full, dropping event", zap.String("donorID", evt.DonorID))
		}
		return nil
	})
	defer rc.bus.Unsubscribe(sub)

	// Clients never send anything; CloseRead cancels ctx once they disconnect.
	ctx := conn.CloseRead(c.Request.Context())

	if err := rc.write(ctx, conn, realtimeMessage{Type: "ready"}); err != nil {
		conn.Close(websocket.StatusInternalError, "write failed")
		return
	}

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "closed")
			return
		case evt := <-events:
			if err := rc.write(ctx, conn, realtimeMessage{Type: "donor_availability", Data: &evt}); err != nil {
				logger.Debug("Realtime write failed", zap.Error(err))
				conn.Close(websocket.StatusInternalError, "write failed")
				return
			}
		}
	}
}

func (rc *RealtimeController) write(ctx context.Context, conn *websocket.Conn, msg realtimeMessage) error {
	writeCtx, cancel := context.WithTimeout(ctx, realtimeWriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, msg)
}
