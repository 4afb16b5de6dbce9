package events

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	messages []message
	err      error
	closed   bool
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message{subject: subject, data: data})
	return nil
}

func (f *fakePublisher) Close() { f.closed = true }

func TestEmitRecord(t *testing.T) {
	pub := &fakePublisher{}
	em := NewEmitter(pub, "cardano.records")

	record := map[string]string{"address": "stake1u8x", "controlledAmountLovelace": "5000000"}
	require.NoError(t, em.EmitRecord("blockfrost", "account", "stake1u8x", record))
	require.Len(t, pub.messages, 1)
	assert.Equal(t, "cardano.records.blockfrost.account", pub.messages[0].subject)

	var event RecordEvent
	require.NoError(t, json.Unmarshal(pub.messages[0].data, &event))
	assert.Equal(t, EventTypeRecord, event.Type)
	assert.Equal(t, "stake1u8x", event.Key)
	assert.NotZero(t, event.Timestamp)
	assert.Equal(t, "5000000", event.Data.(map[string]any)["controlledAmountLovelace"])
}

func TestEmitError(t *testing.T) {
	pub := &fakePublisher{}
	em := NewEmitter(pub, "")

	require.NoError(t, em.EmitError("koios", "tx", "abc", errors.New("tx not found")))
	require.Len(t, pub.messages, 1)
	assert.Equal(t, "koios.tx", pub.messages[0].subject)
	assert.Contains(t, string(pub.messages[0].data), `"message":"tx not found"`)
}

func TestEmitPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nats: connection closed")}
	em := NewEmitter(pub, "cardano")
	assert.Error(t, em.EmitRecord("koios", "asset", "p", struct{}{}))

	em.Close()
	assert.True(t, pub.closed)
}
