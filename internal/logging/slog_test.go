package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "warn")
	ctx := context.Background()

	log.Info(ctx, "hidden")
	assert.NotContains(t, buf.String(), "hidden")

	log.Warn(ctx, "visible", "key", "value")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "key=value")
}

func TestWithAttachesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, "info").With("component", "tickets")

	log.Info(context.Background(), "created")
	assert.Contains(t, buf.String(), "component=tickets")
}
