package sqlite

import (
	"context"
	"fmt"

	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
)

// HolidayRepository implements repository.HolidayRepository for SQLite
type HolidayRepository struct {
	db *DB
}

// NewHolidayRepository creates a new HolidayRepository
func NewHolidayRepository(db *DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// ListBetween returns holidays whose date falls in [from, to), day keys.
func (r *HolidayRepository) ListBetween(ctx context.Context, from, to string) ([]earnedvalue.Holiday, error) {
	query := `
		SELECT holiday_date, kind
		FROM holidays
		WHERE holiday_date >= ? AND holiday_date < ?
		ORDER BY holiday_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []earnedvalue.Holiday
	for rows.Next() {
		var holiday earnedvalue.Holiday
		if err := rows.Scan(&holiday.Date, &holiday.Kind); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holiday rows: %w", err)
	}

	return holidays, nil
}
