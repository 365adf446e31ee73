package agentsim

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/kiosk404/scryer/pkg/log"
	"github.com/kiosk404/scryer/pkg/utils/json"
)

// EventsPath is the SSE endpoint the watch command attaches to.
const EventsPath = "/v1/agent/events"

// FeedbackPath receives the one-shot feedback input for a response.
const FeedbackPath = "/v1/agent/feedback"

// FeedbackRequest is the body posted to FeedbackPath.
type FeedbackRequest struct {
	ResponseID string `json:"response_id"`
	Input      string `json:"input"`
}

// Server replays a script over SSE so the rendering layer can be exercised
// without a live orchestration runtime.
type Server struct {
	script *Script
	addr   string
	http   *http.Server
}

// NewServer builds a simulator serving script at addr.
func NewServer(addr string, script *Script) *Server {
	if script == nil {
		script = DefaultScript()
	}
	return &Server{script: script, addr: addr}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET(EventsPath, s.streamEvents)
	engine.POST(FeedbackPath, s.receiveFeedback)
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.http = &http.Server{Addr: s.addr, Handler: engine}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", s.addr).Info("agent simulator listening")
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// streamEvents replays the script to one client. Each event payload is the
// JSON StreamEvent envelope; the SSE event name mirrors the envelope type.
func (s *Server) streamEvents(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ticker := time.NewTicker(s.script.Interval())
	defer ticker.Stop()

	for i, event := range s.script.Events {
		data, err := json.Marshal(event)
		if err != nil {
			log.WithError(err).Warn("skip unmarshalable event")
			continue
		}
		err = sse.Encode(c.Writer, sse.Event{
			Id:    strconv.Itoa(i),
			Event: string(event.Type),
			Data:  string(data),
		})
		if err != nil {
			log.WithError(err).Debug("client disconnected")
			return
		}
		flusher.Flush()

		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

// receiveFeedback logs the user's input. A real agent process would resume
// or abandon execution here.
func (s *Server) receiveFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.WithField("response_id", req.ResponseID).
		WithField("input", req.Input).
		Info("feedback received")
	c.Status(http.StatusNoContent)
}
