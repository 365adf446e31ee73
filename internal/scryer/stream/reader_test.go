package stream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
)

const sampleStream = "id: 0\n" +
	"event: state\n" +
	`data: {"type":"state","status":"inProgress","state":{"tasks":[{"id":"t1","timestamp":"2026-08-25T10:00:00Z","name":"Plan"}]}}` + "\n" +
	"\n" +
	"id: 1\n" +
	"event: response\n" +
	`data: {"type":"response","status":"executing","response":{"id":"r1","content":"Done"}}` + "\n" +
	"\n" +
	"id: 2\n" +
	"event: done\n" +
	`data: {"type":"done","status":"complete"}` + "\n" +
	"\n"

func TestReaderNext(t *testing.T) {
	reader := NewReader(strings.NewReader(sampleStream))

	first, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, entity.EventState, first.Type)
	require.NotNil(t, first.State)
	require.Len(t, first.State.Tasks, 1)
	assert.Equal(t, "Plan", first.State.Tasks[0].Name)
	require.NotNil(t, first.Status)
	assert.Equal(t, entity.StatusInProgress, *first.Status)

	second, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, entity.EventResponse, second.Type)
	require.NotNil(t, second.Response)
	assert.Equal(t, "r1", second.Response.ID)
	assert.Equal(t, "Done", second.Response.Content)

	third, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, entity.EventDone, third.Type)

	_, err = reader.Next()
	assert.ErrorIs(t, err, errno.ErrStreamClosed)
}

func TestReaderBadPayload(t *testing.T) {
	reader := NewReader(strings.NewReader("data: {not json\n\n"))
	_, err := reader.Next()
	assert.Error(t, err)
}

func TestDecodeWholeStream(t *testing.T) {
	events, err := Decode(strings.NewReader(sampleStream))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, entity.EventState, events[0].Type)
	assert.Equal(t, entity.EventResponse, events[1].Type)
	assert.Equal(t, entity.EventDone, events[2].Type)
}
