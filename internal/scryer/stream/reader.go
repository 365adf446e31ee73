package stream

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/sse"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
	"github.com/kiosk404/scryer/pkg/utils/json"
)

// Decode reads a complete text/event-stream body (e.g. a recorded file) and
// returns the contained agent events. Used by replay mode.
func Decode(r io.Reader) ([]*entity.StreamEvent, error) {
	raw, err := sse.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode event stream: %w", err)
	}

	events := make([]*entity.StreamEvent, 0, len(raw))
	for _, ev := range raw {
		data, ok := ev.Data.(string)
		if !ok {
			continue
		}
		var event entity.StreamEvent
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			return nil, fmt.Errorf("decode event payload: %w", err)
		}
		events = append(events, &event)
	}
	return events, nil
}

// Reader incrementally parses a live text/event-stream body into agent
// events. Unlike Decode it does not need the stream to end before yielding.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader wraps a streaming response body.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: scanner}
}

// Next blocks until the next event arrives. Returns errno.ErrStreamClosed
// once the stream ends.
func (r *Reader) Next() (*entity.StreamEvent, error) {
	var data strings.Builder

	for r.scanner.Scan() {
		line := r.scanner.Text()

		switch {
		case line == "":
			// Blank line terminates one SSE event.
			if data.Len() == 0 {
				continue
			}
			var event entity.StreamEvent
			if err := json.Unmarshal([]byte(data.String()), &event); err != nil {
				return nil, fmt.Errorf("decode event payload: %w", err)
			}
			return &event, nil
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteString("\n")
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		default:
			// event:/id:/retry:/comment lines carry nothing we need; the
			// envelope's type field is authoritative.
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read event stream: %w", err)
	}
	return nil, errno.ErrStreamClosed
}
