// Package notification models the outbox messages written inside a status
// change transaction and delivered later by the relay job.
package notification

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned for a Message not built by NewMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is one pending or delivered outbox record.
type Message struct {
	id        kernel.UUID
	topic     string
	key       string
	payload   json.RawMessage
	createdAt time.Time
	sentAt    *time.Time

	isConstructed bool
}

// NewMessage marshals payload and builds a pending message.
func NewMessage(id kernel.UUID, topic, key string, payload any, createdAt time.Time) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	return RestoreMessage(id, topic, key, data, createdAt, nil)
}

// RestoreMessage rebuilds a message loaded from storage.
func RestoreMessage(
	id kernel.UUID,
	topic string,
	key string,
	payload []byte,
	createdAt time.Time,
	sentAt *time.Time,
) (*Message, error) {
	var problems []error
	problems = append(problems, id.Validate())
	if strings.TrimSpace(topic) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("topic"))
	}
	if !json.Valid(payload) {
		problems = append(problems, errs.NewValueIsInvalidError("payload"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	m := &Message{
		id:            id,
		topic:         topic,
		key:           key,
		payload:       append(json.RawMessage(nil), payload...),
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}
	if sentAt != nil {
		at := sentAt.UTC()
		m.sentAt = &at
	}
	return m, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) Topic() string {
	return m.topic
}

func (m *Message) Key() string {
	return m.key
}

// Payload returns a copy of the JSON document.
func (m *Message) Payload() json.RawMessage {
	return append(json.RawMessage(nil), m.payload...)
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// SentAt is nil while the message is pending.
func (m *Message) SentAt() *time.Time {
	return m.sentAt
}

func (m *Message) IsSent() bool {
	return m.sentAt != nil
}

// MarkSent records delivery. Marking an already sent message keeps the first timestamp.
func (m *Message) MarkSent(at time.Time) {
	if m.sentAt != nil {
		return
	}
	at = at.UTC()
	m.sentAt = &at
}
