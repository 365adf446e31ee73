package agentsim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
)

func TestDefaultScript(t *testing.T) {
	script := DefaultScript()
	require.NotEmpty(t, script.Events)

	last := script.Events[len(script.Events)-1]
	assert.Equal(t, entity.EventDone, last.Type)

	var sawResponse bool
	for _, event := range script.Events {
		if event.Type == entity.EventResponse {
			sawResponse = true
			require.NotNil(t, event.Response)
			assert.NotEmpty(t, event.Response.ID)
		}
	}
	assert.True(t, sawResponse)
}

func TestScriptInterval(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, (&Script{}).Interval())
	assert.Equal(t, 50*time.Millisecond, (&Script{IntervalMs: 50}).Interval())
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	content := `{
		"name": "test",
		"interval_ms": 10,
		"events": [
			{"type": "state", "status": "inProgress", "state": {"tasks": [{"id": "t1", "timestamp": "2026-08-25T10:00:00Z", "name": "Plan"}]}},
			{"type": "done", "status": "complete"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, "test", script.Name)
	require.Len(t, script.Events, 2)
	require.NotNil(t, script.Events[0].State)
	assert.Equal(t, "Plan", script.Events[0].State.Tasks[0].Name)
}

func TestLoadScriptErrors(t *testing.T) {
	_, err := LoadScript(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"events": []}`), 0644))
	_, err = LoadScript(empty)
	assert.Error(t, err)
}
