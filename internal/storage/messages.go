// ABOUTME: Message CRUD operations for SQLite storage.
// ABOUTME: Messages are standalone notes with no relations.
package storage

import (
	"database/sql"
	"errors"

	"github.com/harperreed/workouts/internal/models"
)

// ListMessages returns every message in storage order.
func (d *DB) ListMessages() ([]*models.Message, error) {
	rows, err := d.db.Query("SELECT id, uuid, content FROM messages ORDER BY id")
	if err != nil {
		return nil, queryError("list messages", err)
	}
	defer rows.Close()

	messages := []*models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.UUID, &m.Content); err != nil {
			return nil, queryError("scan message", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list messages", err)
	}
	return messages, nil
}

// GetMessageByUUID retrieves a message by uuid.
func (d *DB) GetMessageByUUID(uuid string) (*models.Message, error) {
	var m models.Message
	err := d.db.QueryRow("SELECT id, uuid, content FROM messages WHERE uuid = ?", uuid).
		Scan(&m.ID, &m.UUID, &m.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("get message", "message", uuid)
	}
	if err != nil {
		return nil, queryError("get message", err)
	}
	return &m, nil
}

// CreateMessage inserts a message and returns its id.
func (d *DB) CreateMessage(m *models.NewMessage) (int64, error) {
	result, err := d.db.Exec("INSERT INTO messages (uuid, content) VALUES (?, ?)", m.UUID, m.Content)
	if err != nil {
		return 0, queryError("create message", err)
	}
	return lastInsertID("create message", result)
}

// DeleteMessage removes a message by uuid, if present.
func (d *DB) DeleteMessage(uuid string) error {
	if _, err := d.db.Exec("DELETE FROM messages WHERE uuid = ?", uuid); err != nil {
		return queryError("delete message", err)
	}
	return nil
}
