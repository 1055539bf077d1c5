package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionIDFromContext(t *testing.T) {
	_, ok := SessionIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSessionID(context.Background(), "abc")
	id, ok := SessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = SessionIDFromContext(WithSessionID(context.Background(), ""))
	assert.False(t, ok)
}

func TestInit_UnknownLevelDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeDebug, Encoding: "xml"})
	assert.NotNil(t, l)
	l.Infof(WithSessionID(context.Background(), "s1"), "hello %s", "world")
}
