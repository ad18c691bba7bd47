package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cryptotracker/backend/internal/apperrors"
	"github.com/cryptotracker/backend/internal/model"
)

// LotRepository provides data access methods for the lot table.
type LotRepository struct {
	db *sql.DB
}

// NewLotRepository creates a new LotRepository with the provided database connection.
func NewLotRepository(db *sql.DB) *LotRepository {
	return &LotRepository{db: db}
}

// GetLotsByPositionIDs retrieves all lots for the given positions, grouped by
// position ID and ordered by date then creation time. If the input slice is
// empty, returns an empty map.
func (r *LotRepository) GetLotsByPositionIDs(positionIDs []string) (map[string][]model.Lot, error) {
	if len(positionIDs) == 0 {
		return map[string][]model.Lot{}, nil
	}

	placeholders := make([]string, len(positionIDs))
	args := make([]any, len(positionIDs))
	for i, id := range positionIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
          SELECT id, position_id, date, kind, quantity, unit_price, created_at
          FROM lot
          WHERE position_id IN (` + strings.Join(placeholders, ",") + `)
          ORDER BY date, created_at
      `

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lot table: %w", err)
	}
	defer rows.Close()

	lotsByPosition := make(map[string][]model.Lot)

	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, err
		}
		lotsByPosition[lot.PositionID] = append(lotsByPosition[lot.PositionID], lot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lot table: %w", err)
	}

	return lotsByPosition, nil
}

// GetLotOnID retrieves a single lot by its ID.
func (r *LotRepository) GetLotOnID(ctx context.Context, q DBTX, lotID string) (model.Lot, error) {
	query := `
          SELECT id, position_id, date, kind, quantity, unit_price, created_at
          FROM lot
          WHERE id = ?
      `

	row := q.QueryRowContext(ctx, query, lotID)

	var (
		lot           model.Lot
		date, created string
	)
	err := row.Scan(&lot.ID, &lot.PositionID, &date, &lot.Kind, &lot.Quantity, &lot.UnitPrice, &created)
	if err == sql.ErrNoRows {
		return model.Lot{}, apperrors.ErrLotNotFound
	}
	if err != nil {
		return model.Lot{}, fmt.Errorf("failed to query lot: %w", err)
	}

	if lot.Date, err = ParseTime(date); err != nil {
		return model.Lot{}, err
	}
	if lot.CreatedAt, err = ParseTime(created); err != nil {
		return model.Lot{}, err
	}

	return lot, nil
}

// InsertLot inserts a new lot row. The date is stored at day granularity.
func (r *LotRepository) InsertLot(ctx context.Context, q DBTX, lot *model.Lot) error {
	query := `
          INSERT INTO lot (id, position_id, date, kind, quantity, unit_price)
          VALUES (?, ?, ?, ?, ?, ?)
      `

	_, err := q.ExecContext(ctx, query,
		lot.ID,
		lot.PositionID,
		lot.Date.Format(model.DateLayout),
		string(lot.Kind),
		lot.Quantity,
		lot.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lot: %w", err)
	}

	return nil
}

// DeleteLot removes a lot by its ID.
func (r *LotRepository) DeleteLot(ctx context.Context, q DBTX, lotID string) error {
	result, err := q.ExecContext(ctx, "DELETE FROM lot WHERE id = ?", lotID)
	if err != nil {
		return fmt.Errorf("failed to delete lot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrLotNotFound
	}

	return nil
}

// CountLotsOnPositionID returns the number of lots remaining on a position.
// Used by the cascading delete to decide whether the position itself goes.
func (r *LotRepository) CountLotsOnPositionID(ctx context.Context, q DBTX, positionID string) (int, error) {
	var count int
	err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM lot WHERE position_id = ?", positionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count lots: %w", err)
	}
	return count, nil
}

// scanLot scans one lot row from a multi-row result set.
func scanLot(rows *sql.Rows) (model.Lot, error) {
	var (
		lot           model.Lot
		date, created string
	)

	err := rows.Scan(&lot.ID, &lot.PositionID, &date, &lot.Kind, &lot.Quantity, &lot.UnitPrice, &created)
	if err != nil {
		return model.Lot{}, fmt.Errorf("failed to scan lot table results: %w", err)
	}

	if lot.Date, err = ParseTime(date); err != nil {
		return model.Lot{}, err
	}
	if lot.CreatedAt, err = ParseTime(created); err != nil {
		return model.Lot{}, err
	}

	return lot, nil
}
