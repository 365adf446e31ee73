package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
)

func TestResponseStatus(t *testing.T) {
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusComplete.Valid())
	assert.True(t, StatusExecuting.Valid())
	assert.False(t, ResponseStatus("bogus").Valid())

	assert.True(t, StatusInProgress.AcceptsFeedback())
	assert.True(t, StatusExecuting.AcceptsFeedback())
	assert.False(t, StatusComplete.AcceptsFeedback())

	assert.True(t, StatusComplete.IsTerminal())
	assert.False(t, StatusExecuting.IsTerminal())
}

func TestResponseValidate(t *testing.T) {
	assert.NoError(t, (&Response{ID: "r1", Content: "Done"}).Validate())
	assert.ErrorIs(t, (&Response{Content: "Done"}).Validate(), errno.ErrEmptyResponseID)

	var nilResp *Response
	assert.ErrorIs(t, nilResp.Validate(), errno.ErrEmptyResponseID)
}

func TestFeedbackRecordInput(t *testing.T) {
	assert.Equal(t, ApproveToken, (&FeedbackRecord{Decision: FeedbackApproved}).Input())
	assert.Equal(t, RejectToken, (&FeedbackRecord{Decision: FeedbackRejected}).Input())
	assert.Equal(t, "ship it", (&FeedbackRecord{Decision: FeedbackFreeform, Text: "ship it"}).Input())
}
