package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"behavior-analytics/internal/domain"
)

// PgHistoryStore implementa HistoryStore usando pgxpool.
type PgHistoryStore struct {
	pool *pgxpool.Pool
}

func NewPgHistoryStore(pool *pgxpool.Pool) *PgHistoryStore {
	return &PgHistoryStore{pool: pool}
}

// RegisterUser crea el usuario si no existe y devuelve la fila vigente.
func (r *PgHistoryStore) RegisterUser(ctx context.Context, user domain.User) (domain.User, error) {
	const query = `
		INSERT INTO users (id, username, display_name, registered_at, total_messages)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.DisplayName,
		user.RegisteredAt,
	); err != nil {
		return domain.User{}, storageErr("register user", err)
	}
	return r.GetUser(ctx, user.ID)
}

func (r *PgHistoryStore) GetUser(ctx context.Context, userID string) (domain.User, error) {
	const query = `
		SELECT id, username, display_name, registered_at, total_messages
		FROM users
		WHERE id = $1
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&u.ID,
		&u.Username,
		&u.DisplayName,
		&u.RegisteredAt,
		&u.TotalMessages,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, storageErr("get user", err)
	}
	return u, nil
}

// AppendMessage incrementa el contador (bloqueando la fila del usuario) e
// inserta el mensaje en la misma transaccion. Devuelve el contador nuevo.
func (r *PgHistoryStore) AppendMessage(ctx context.Context, record domain.MessageRecord) (total int, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, storageErr("begin append", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	const bump = `
		UPDATE users SET total_messages = total_messages + 1
		WHERE id = $1
		RETURNING total_messages
	`
	if err = tx.QueryRow(ctx, bump, record.UserID).Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, storageErr("increment counter", err)
	}

	const insert = `
		INSERT INTO messages (id, user_id, text, created_at, polarity, word_count)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err = tx.Exec(ctx, insert,
		record.ID,
		record.UserID,
		record.Text,
		record.CreatedAt,
		record.Polarity,
		record.WordCount,
	); err != nil {
		return 0, storageErr("insert message", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, storageErr("commit append", err)
	}
	return total, nil
}

// RecentMessages devuelve hasta limit registros, del mas nuevo al mas viejo.
func (r *PgHistoryStore) RecentMessages(ctx context.Context, userID string, limit int) ([]domain.MessageRecord, error) {
	const query = `
		SELECT id, user_id, text, created_at, polarity, word_count
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	return r.queryMessages(ctx, "recent messages", query, userID, limit)
}

// AllMessages devuelve el historial completo en orden cronologico.
func (r *PgHistoryStore) AllMessages(ctx context.Context, userID string) ([]domain.MessageRecord, error) {
	const query = `
		SELECT id, user_id, text, created_at, polarity, word_count
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	return r.queryMessages(ctx, "all messages", query, userID)
}

func (r *PgHistoryStore) MessagesSince(ctx context.Context, userID string, since time.Time) ([]domain.MessageRecord, error) {
	const query = `
		SELECT id, user_id, text, created_at, polarity, word_count
		FROM messages
		WHERE user_id = $1 AND created_at > $2
		ORDER BY created_at ASC
	`
	return r.queryMessages(ctx, "messages since", query, userID, since)
}

func (r *PgHistoryStore) UserSummary(ctx context.Context, userID string) (domain.UserSummary, error) {
	const query = `
		SELECT COUNT(*), COALESCE(AVG(polarity), 0)::float8, COALESCE(AVG(word_count), 0)::float8,
		       MIN(created_at), MAX(created_at)
		FROM messages
		WHERE user_id = $1
	`
	var s domain.UserSummary
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.TotalCount,
		&s.MeanPolarity,
		&s.MeanWordCount,
		&s.FirstAt,
		&s.LastAt,
	)
	if err != nil {
		return domain.UserSummary{}, storageErr("user summary", err)
	}
	return s, nil
}

func (r *PgHistoryStore) queryMessages(ctx context.Context, op, query string, args ...any) ([]domain.MessageRecord, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	var records []domain.MessageRecord
	for rows.Next() {
		var rec domain.MessageRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Text,
			&rec.CreatedAt,
			&rec.Polarity,
			&rec.WordCount,
		); err != nil {
			return nil, storageErr(op, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return records, nil
}

// storageErr marca los fallos del almacenamiento sin perder la causa original.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}
