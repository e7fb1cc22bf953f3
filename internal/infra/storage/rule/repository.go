package rule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

var ruleColumns = []string{
	"id",
	"calendar_owner_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с правилами доступности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое правило доступности
func (r *Repository) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rule.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("availability_rules").
		Columns(
			"id",
			"calendar_owner_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_active",
		).
		Values(
			rule.ID,
			rule.CalendarOwnerID,
			rule.DayOfWeek,
			rule.StartTime,
			rule.EndTime,
			rule.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateRule
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID получает правило по ID в рамках календаря владельца
func (r *Repository) GetByID(ctx context.Context, ownerID, ruleID string) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"id": ruleID, "calendar_owner_id": ownerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// GetActiveByOwnerAndDay получает единственное активное правило владельца
// на указанный день недели (ISO, понедельник = 1)
func (r *Repository) GetActiveByOwnerAndDay(ctx context.Context, ownerID string, dayOfWeek int) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{
			"calendar_owner_id": ownerID,
			"day_of_week":       dayOfWeek,
			"is_active":         true,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByOwnerAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByOwnerAndDay - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// GetAllByOwner получает все правила владельца, отсортированные по дню недели
func (r *Repository) GetAllByOwner(ctx context.Context, ownerID string) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"calendar_owner_id": ownerID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByOwner - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByOwner - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Update сохраняет изменённые поля правила
func (r *Repository) Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_rules").
		Set("day_of_week", rule.DayOfWeek).
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID, "calendar_owner_id": rule.CalendarOwnerID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateRule
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// Delete удаляет правило доступности
func (r *Repository) Delete(ctx context.Context, ownerID, ruleID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"id": ruleID, "calendar_owner_id": ownerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.CalendarOwnerID,
		&rule.DayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
