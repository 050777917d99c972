package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbinspect/client/model"
)

func TestCanTransition(t *testing.T) {
	all := []model.ProjectStatus{model.StatusPending, model.StatusReviewed, model.StatusAccepted, model.StatusRejected}
	allowed := map[[2]model.ProjectStatus]bool{
		{model.StatusPending, model.StatusReviewed}:  true,
		{model.StatusReviewed, model.StatusAccepted}: true,
		{model.StatusReviewed, model.StatusRejected}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]model.ProjectStatus{from, to}], model.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.True(t, model.StatusAccepted.Terminal())
	assert.True(t, model.StatusRejected.Terminal())
	assert.False(t, model.StatusReviewed.Terminal())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, model.RoleDirector, model.ParseRole("DIRECTOR"))
	assert.Equal(t, model.RoleManager, model.ParseRole(" manager"))
	assert.Equal(t, model.RoleStaff, model.ParseRole("Staff"))
	assert.Equal(t, model.RoleNone, model.ParseRole("root"))
	assert.Equal(t, model.RoleNone, model.ParseRole(""))
}

func TestCommentRepliesDecode(t *testing.T) {
	raw := `{"id":1,"material":4,"author":7,"author_name":"Kim","parent":null,"content":"short on R12",
		"replies":[{"id":2,"material":4,"author":8,"author_name":"Lee","parent":1,"content":"confirmed","replies":[],"created_at":"2024-05-02T09:30:00+09:00"}],
		"created_at":"2024-05-02T09:00:00.123456+09:00"}`

	var c model.Comment
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.False(t, c.IsReply())
	require.Len(t, c.Replies, 1)
	assert.True(t, c.Replies[0].IsReply())
	assert.Equal(t, 1, *c.Replies[0].Parent)
}
