package property

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const tableProperties = "properties"

var propertyColumns = []string{
	"id",
	"owner_id",
	"name",
	"airbnb_ical_url",
	"booking_ical_url",
	"airbnb_status",
	"booking_status",
	"events_count",
	"last_checked_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с объектами и их ссылками на календари
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый объект
func (r *Repository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	query, args, err := psqlbuilder.Insert(tableProperties).
		Columns(
			"owner_id",
			"name",
			"airbnb_ical_url",
			"booking_ical_url",
		).
		Values(
			p.OwnerID,
			p.Name,
			p.AirbnbICalURL,
			p.BookingICalURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	query, args, err := psqlbuilder.Select(propertyColumns...).
		From(tableProperties).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProperty(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	return p, nil
}

// Update обновляет название и ссылки на календари.
// Сброс статуса источника при смене ссылки: старый статус относится к другой ссылке.
func (r *Repository) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	query, args, err := updateQuery(p)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanProperty(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan property: %v", ErrScanRow, err)
	}

	return updated, nil
}

// Delete удаляет объект
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := deleteQuery(id)
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

// ListWithFeeds получает объекты, у которых настроена хотя бы одна ссылка.
// Возвращает не более limit записей с id > afterID (постраничный обход для монитора).
func (r *Repository) ListWithFeeds(ctx context.Context, afterID int64, limit uint64) ([]*domain.Property, error) {
	query, args, err := listWithFeedsQuery(afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFeeds - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFeeds - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFeeds - scan property: %v", ErrScanRow, err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFeeds - iterate rows: %v", ErrScanRow, err)
	}

	return properties, nil
}

// UpdateFeedHealth сохраняет результат проверки источников монитором
func (r *Repository) UpdateFeedHealth(ctx context.Context, health domain.PropertyFeedHealth) error {
	query, args, err := updateFeedHealthQuery(health)
	if err != nil {
		return fmt.Errorf("%w: UpdateFeedHealth - build update query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateFeedHealth - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateFeedHealth - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

func updateQuery(p *domain.Property) (string, []interface{}, error) {
	return psqlbuilder.Update(tableProperties).
		Set("name", p.Name).
		Set("airbnb_ical_url", p.AirbnbICalURL).
		Set("booking_ical_url", p.BookingICalURL).
		Set("airbnb_status", squirrel.Expr("CASE WHEN airbnb_ical_url IS DISTINCT FROM ? THEN NULL ELSE airbnb_status END", p.AirbnbICalURL)).
		Set("booking_status", squirrel.Expr("CASE WHEN booking_ical_url IS DISTINCT FROM ? THEN NULL ELSE booking_status END", p.BookingICalURL)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(propertyColumns, ", ")).
		ToSql()
}

func deleteQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Delete(tableProperties).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

// listWithFeedsQuery keyset-пагинация по id
func listWithFeedsQuery(afterID int64, limit uint64) (string, []interface{}, error) {
	return psqlbuilder.Select(propertyColumns...).
		From(tableProperties).
		Where(squirrel.Gt{"id": afterID}).
		Where(squirrel.Or{
			squirrel.NotEq{"airbnb_ical_url": nil},
			squirrel.NotEq{"booking_ical_url": nil},
		}).
		OrderBy("id ASC").
		Limit(limit).
		ToSql()
}

func updateFeedHealthQuery(health domain.PropertyFeedHealth) (string, []interface{}, error) {
	return psqlbuilder.Update(tableProperties).
		Set("airbnb_status", string(health.Status.Airbnb)).
		Set("booking_status", string(health.Status.Booking)).
		Set("events_count", health.EventsCount).
		Set("last_checked_at", health.CheckedAt).
		Where(squirrel.Eq{"id": health.PropertyID}).
		ToSql()
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var (
		p                           domain.Property
		airbnbURL, bookingURL       sql.NullString
		airbnbStatus, bookingStatus sql.NullString
		lastCheckedAt               sql.NullTime
		createdAt, updatedAt        sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&airbnbURL,
		&bookingURL,
		&airbnbStatus,
		&bookingStatus,
		&p.EventsCount,
		&lastCheckedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.AirbnbICalURL = nullStringPtr(airbnbURL)
	p.BookingICalURL = nullStringPtr(bookingURL)
	p.AirbnbStatus = nullStatusPtr(airbnbStatus)
	p.BookingStatus = nullStatusPtr(bookingStatus)
	if lastCheckedAt.Valid {
		t := lastCheckedAt.Time
		p.LastCheckedAt = &t
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullStatusPtr(s sql.NullString) *domain.SourceStatus {
	if !s.Valid {
		return nil
	}
	v := domain.SourceStatus(s.String)
	return &v
}
