// ABOUTME: Message model, a standalone record with no relations.
// ABOUTME: NewMessage is its pre-insert variant.
package models

import "github.com/google/uuid"

// Message is a free-text note.
type Message struct {
	ID      int64  `json:"id" yaml:"id"`
	UUID    string `json:"uuid" yaml:"uuid"`
	Content string `json:"content" yaml:"content"`
}

// NewMessage is a message that has not been inserted yet.
type NewMessage struct {
	UUID    string
	Content string
}

// NewMessageWith creates a NewMessage with a generated UUID.
func NewMessageWith(content string) *NewMessage {
	return &NewMessage{UUID: uuid.NewString(), Content: content}
}
