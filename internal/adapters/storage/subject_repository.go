package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/ports"
)

// subjectRepository implements ports.SubjectRepository using SQLite.
type subjectRepository struct {
	db *sql.DB
}

// newSubjectRepository creates a new subject repository.
func newSubjectRepository(db *sql.DB) ports.SubjectRepository {
	return &subjectRepository{db: db}
}

// Save persists a subject to storage.
func (r *subjectRepository) Save(ctx context.Context, subject *domain.Subject) error {
	query := `
		INSERT INTO subjects (id, title, status, created_at, updated_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		subject.ID,
		subject.Title,
		string(subject.Status),
		subject.CreatedAt,
		subject.UpdatedAt,
		subject.CompletedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save subject: %w", err)
	}

	return nil
}

// FindByID retrieves a subject by its unique identifier.
func (r *subjectRepository) FindByID(ctx context.Context, id string) (*domain.Subject, error) {
	query := `
		SELECT id, title, status, created_at, updated_at, completed_at
		FROM subjects
		WHERE id = ?
	`

	return r.scanSubject(r.db.QueryRowContext(ctx, query, id))
}

// FindAll retrieves all subjects, optionally filtered by status.
func (r *subjectRepository) FindAll(ctx context.Context, status *domain.SubjectStatus) ([]*domain.Subject, error) {
	query := `
		SELECT id, title, status, created_at, updated_at, completed_at
		FROM subjects
		ORDER BY created_at DESC
	`
	var args []any

	if status != nil {
		query = `
			SELECT id, title, status, created_at, updated_at, completed_at
			FROM subjects
			WHERE status = ?
			ORDER BY created_at DESC
		`
		args = append(args, string(*status))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subjects []*domain.Subject
	for rows.Next() {
		subject, err := r.scanSubjectRow(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	return subjects, rows.Err()
}

// FindMatching returns subjects whose titles fuzzy-match the query, best
// matches first.
func (r *subjectRepository) FindMatching(ctx context.Context, query string) ([]*domain.Subject, error) {
	subjects, err := r.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(subjects))
	for i, subject := range subjects {
		titles[i] = subject.Title
	}

	matches := fuzzy.Find(query, titles)

	var result []*domain.Subject
	for _, match := range matches {
		if match.Score > 0 {
			result = append(result, subjects[match.Index])
		}
	}

	return result, nil
}

// Update modifies an existing subject.
func (r *subjectRepository) Update(ctx context.Context, subject *domain.Subject) error {
	query := `
		UPDATE subjects
		SET title = ?, status = ?, updated_at = ?, completed_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		subject.Title,
		string(subject.Status),
		subject.UpdatedAt,
		subject.CompletedAt,
		subject.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update subject: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrSubjectNotFound
	}

	return nil
}

// Delete removes a subject from storage.
func (r *subjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrSubjectNotFound
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

func (r *subjectRepository) scanSubject(row scanner) (*domain.Subject, error) {
	subject, err := r.scanSubjectRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSubjectNotFound
	}
	return subject, err
}

func (r *subjectRepository) scanSubjectRow(row scanner) (*domain.Subject, error) {
	var subject domain.Subject
	var completedAt sql.NullTime

	err := row.Scan(
		&subject.ID,
		&subject.Title,
		&subject.Status,
		&subject.CreatedAt,
		&subject.UpdatedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan subject: %w", err)
	}

	if completedAt.Valid {
		subject.CompletedAt = &completedAt.Time
	}

	return &subject, nil
}
