package events

import (
	"encoding/json"
	"time"
)

const (
	EventTypeRecord = "record"
	EventTypeError  = "error"
)

// RecordEvent carries one fetched record, or the failure of one lookup.
type RecordEvent struct {
	Type      string `json:"type"`
	Provider  string `json:"provider"`
	Kind      string `json:"kind"`
	Key       string `json:"key"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

type Emitter interface {
	EmitRecord(provider, kind, key string, record any) error
	EmitError(provider, kind, key string, err error) error
	Emit(event RecordEvent) error
	Close()
}

type emitter struct {
	pub           Publisher
	subjectPrefix string
}

func NewEmitter(pub Publisher, subjectPrefix string) Emitter {
	return &emitter{
		pub:           pub,
		subjectPrefix: subjectPrefix,
	}
}

func (e *emitter) EmitRecord(provider, kind, key string, record any) error {
	return e.Emit(RecordEvent{
		Type:      EventTypeRecord,
		Provider:  provider,
		Kind:      kind,
		Key:       key,
		Data:      record,
		Timestamp: time.Now().UTC().Unix(),
	})
}

func (e *emitter) EmitError(provider, kind, key string, err error) error {
	payload := map[string]string{}
	if err != nil {
		payload["message"] = err.Error()
	}

	return e.Emit(RecordEvent{
		Type:      EventTypeError,
		Provider:  provider,
		Kind:      kind,
		Key:       key,
		Data:      payload,
		Timestamp: time.Now().UTC().Unix(),
	})
}

// Emit publishes to <prefix>.<provider>.<kind>
func (e *emitter) Emit(event RecordEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return e.pub.Publish(e.subject(event), data)
}

func (e *emitter) subject(event RecordEvent) string {
	subject := e.subjectPrefix
	for _, part := range []string{event.Provider, event.Kind} {
		if part == "" {
			continue
		}
		if subject != "" {
			subject += "."
		}
		subject += part
	}
	return subject
}

func (e *emitter) Close() {
	if c, ok := e.pub.(interface{ Close() }); ok {
		c.Close()
	}
}
