package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boost-engine/internal/core/domain"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func testEvent() domain.BoostEvent {
	return domain.BoostEvent{
		Type:       domain.EventBoostCompleted,
		BoostID:    "b-1",
		Target:     domain.Target{Type: domain.TargetProduct, ID: "p1"},
		OwnerID:    "shop-1",
		Status:     domain.StatusCompleted,
		OccurredAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublishKeysByBoost(t *testing.T) {
	w := &recordingWriter{}
	p := &Publisher{writer: w}

	require.NoError(t, p.Publish(context.Background(), testEvent()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "b-1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "boost.completed", string(msg.Headers[0].Value))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "boost.completed", decoded["type"])
	assert.Equal(t, "completed", decoded["status"])
	assert.Equal(t, "p1", decoded["target"].(map[string]any)["targetId"])
}

func TestPublishWrapsWriterError(t *testing.T) {
	boom := errors.New("leader not available")
	p := &Publisher{writer: &recordingWriter{err: boom}}

	err := p.Publish(context.Background(), testEvent())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "b-1")
}
