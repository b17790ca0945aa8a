package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// MessageRepo 提供聯絡表單訊息的資料存取。
type MessageRepo struct {
	db *sql.DB
}

// NewMessageRepo 建立訊息資料存取實例。
func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// CreateMessage 寫入訪客訊息。
func (r *MessageRepo) CreateMessage(ctx context.Context, m content.Message) (content.Message, error) {
	const q = `
INSERT INTO messages (id, name, email, subject, body, read, created_at)
VALUES ($1, $2, $3, $4, $5, FALSE, $6);
`
	m.ID = uuid.NewString()
	m.Read = false
	m.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Name, m.Email, m.Subject, m.Body, m.CreatedAt)
	return m, err
}

// ListMessages 依建立時間遞減取得全部訊息。
func (r *MessageRepo) ListMessages(ctx context.Context, unreadOnly bool) ([]content.Message, error) {
	const q = `
SELECT id, name, email, subject, body, read, created_at
FROM messages
WHERE ($1::bool IS FALSE OR NOT read)
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, unreadOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Message
	for rows.Next() {
		var m content.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetMessage 取單筆訊息。
func (r *MessageRepo) GetMessage(ctx context.Context, id string) (content.Message, error) {
	const q = `SELECT id, name, email, subject, body, read, created_at FROM messages WHERE id = $1;`
	var m content.Message
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Read, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Message{}, content.ErrNotFound
	}
	return m, err
}

// MarkMessageRead 標記訊息為已讀；重複標記為 no-op。
func (r *MessageRepo) MarkMessageRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE messages SET read = TRUE WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}

// DeleteMessage 刪除訊息。
func (r *MessageRepo) DeleteMessage(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return content.ErrNotFound
	}
	return nil
}
