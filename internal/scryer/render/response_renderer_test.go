package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
)

func TestResponseRendererContent(t *testing.T) {
	renderer := NewResponseRenderer(Config{})
	resp := &entity.Response{ID: "r1", Content: "Done"}

	out := renderer.Render(resp, entity.StatusComplete, FeedbackView{})
	assert.Contains(t, out, "Done")
}

func TestResponseRendererNilResponse(t *testing.T) {
	out := NewResponseRenderer(Config{}).Render(nil, entity.StatusComplete, FeedbackView{})
	assert.Empty(t, out)
}

func TestResponseRendererFeedbackControls(t *testing.T) {
	theme := DefaultTheme()
	renderer := NewResponseRenderer(Config{})
	resp := &entity.Response{ID: "r1", Content: "Done"}

	t.Run("shown while executing with callback", func(t *testing.T) {
		out := renderer.Render(resp, entity.StatusExecuting, FeedbackView{Enabled: true})
		assert.Contains(t, out, theme.Labels.Approve)
		assert.Contains(t, out, theme.Labels.Reject)
	})

	t.Run("shown while in progress with callback", func(t *testing.T) {
		out := renderer.Render(resp, entity.StatusInProgress, FeedbackView{Enabled: true})
		assert.Contains(t, out, theme.Labels.Approve)
	})

	t.Run("hidden without callback", func(t *testing.T) {
		out := renderer.Render(resp, entity.StatusExecuting, FeedbackView{Enabled: false})
		assert.NotContains(t, out, theme.Labels.Approve)
	})

	t.Run("hidden once complete", func(t *testing.T) {
		out := renderer.Render(resp, entity.StatusComplete, FeedbackView{Enabled: true})
		assert.NotContains(t, out, theme.Labels.Approve)
	})
}

func TestResponseRendererFeedbackDone(t *testing.T) {
	theme := DefaultTheme()
	renderer := NewResponseRenderer(Config{})
	resp := &entity.Response{ID: "r1", Content: "Done"}

	approved := &entity.FeedbackRecord{
		ResponseID: "r1", Decision: entity.FeedbackApproved, CreatedAt: time.Now(),
	}
	rejected := &entity.FeedbackRecord{
		ResponseID: "r1", Decision: entity.FeedbackRejected, CreatedAt: time.Now(),
	}

	t.Run("approved message replaces controls", func(t *testing.T) {
		out := renderer.Render(resp, entity.StatusExecuting, FeedbackView{Enabled: true, Done: approved})
		assert.Contains(t, out, theme.Labels.Approved)
		assert.NotContains(t, out, theme.Labels.Approve)
		assert.NotContains(t, out, theme.Labels.FeedbackPrompt)
	})

	t.Run("rejected message is distinct", func(t *testing.T) {
		out := renderer.Render(resp, entity.StatusExecuting, FeedbackView{Enabled: true, Done: rejected})
		assert.Contains(t, out, theme.Labels.Rejected)
		assert.NotContains(t, out, theme.Labels.Approved)
	})

	t.Run("controls stay gone on re-render", func(t *testing.T) {
		first := renderer.Render(resp, entity.StatusExecuting, FeedbackView{Enabled: true, Done: approved})
		second := renderer.Render(resp, entity.StatusExecuting, FeedbackView{Enabled: true, Done: approved})
		assert.Equal(t, first, second)
	})
}

func TestResponseRendererOverrideIsolation(t *testing.T) {
	theme := DefaultTheme()
	resp := &entity.Response{ID: "r1", Content: "Done"}

	custom := NewResponseRenderer(Config{
		Content: func(r *entity.Response, th Theme) string { return "CUSTOM" },
	})

	out := custom.Render(resp, entity.StatusExecuting, FeedbackView{Enabled: true})
	assert.Contains(t, out, "CUSTOM")
	assert.NotContains(t, out, "Done")
	// Default feedback controls survive the content override untouched.
	assert.Contains(t, out, theme.Labels.Approve)
	assert.Contains(t, out, theme.Labels.FeedbackPrompt)
}
