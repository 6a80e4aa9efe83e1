package conversation

import (
	"errors"
	"strings"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

var (
	ErrConversationIsNotConstructed = errors.New("Conversation must be created via NewConversation constructor")
	ErrMessageIsNotConstructed      = errors.New("Message must be created via NewMessage constructor")
)

// Conversation is a buyer/farmer chat thread, optionally about a crop.
// Deleting a crop deletes its conversations together with their messages.
type Conversation struct {
	id            kernel.UUID
	buyerID       kernel.UUID
	farmerID      kernel.UUID
	cropID        *kernel.UUID
	createdAt     time.Time
	lastMessageAt time.Time
	messages      []*Message

	isConstructed bool
}

func NewConversation(id, buyerID, farmerID kernel.UUID, cropID *kernel.UUID, now time.Time) (*Conversation, error) {
	if err := errors.Join(id.Validate(), buyerID.Validate(), farmerID.Validate()); err != nil {
		return nil, err
	}
	if cropID != nil {
		if err := cropID.Validate(); err != nil {
			return nil, err
		}
		v := *cropID
		cropID = &v
	}
	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	return &Conversation{
		id:            id,
		buyerID:       buyerID,
		farmerID:      farmerID,
		cropID:        cropID,
		createdAt:     now.UTC(),
		lastMessageAt: now.UTC(),
		isConstructed: true,
	}, nil
}

func (c *Conversation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConversationIsNotConstructed
	}
	return nil
}

func (c *Conversation) ID() kernel.UUID {
	return c.id
}

func (c *Conversation) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *Conversation) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c *Conversation) CropID() *kernel.UUID {
	if c.cropID == nil {
		return nil
	}
	v := *c.cropID
	return &v
}

func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Conversation) LastMessageAt() time.Time {
	return c.lastMessageAt
}

func (c *Conversation) Messages() []*Message {
	return append([]*Message(nil), c.messages...)
}

// Post appends a message from one of the two participants.
func (c *Conversation) Post(m *Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !m.senderID.IsEqual(c.buyerID) && !m.senderID.IsEqual(c.farmerID) {
		return errs.NewAccessIsForbiddenError("conversation", c.id)
	}
	c.messages = append(c.messages, m)
	if m.sentAt.After(c.lastMessageAt) {
		c.lastMessageAt = m.sentAt
	}
	return nil
}

// Message is a single chat line.
type Message struct {
	id         kernel.UUID
	senderID   kernel.UUID
	senderName string
	text       string
	sentAt     time.Time
	isRead     bool

	isConstructed bool
}

func NewMessage(id, senderID kernel.UUID, senderName, text string, sentAt time.Time) (*Message, error) {
	if err := errors.Join(id.Validate(), senderID.Validate()); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.NewValueIsRequiredError("message text")
	}
	if sentAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("sent at")
	}

	return &Message{
		id:            id,
		senderID:      senderID,
		senderName:    strings.TrimSpace(senderName),
		text:          text,
		sentAt:        sentAt.UTC(),
		isConstructed: true,
	}, nil
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

func (m *Message) SenderID() kernel.UUID {
	return m.senderID
}

func (m *Message) SenderName() string {
	return m.senderName
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) SentAt() time.Time {
	return m.sentAt
}

func (m *Message) IsRead() bool {
	return m.isRead
}
