package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cryptotracker/backend/internal/apperrors"
	"github.com/cryptotracker/backend/internal/model"
)

// PositionRepository provides data access methods for the position table.
type PositionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new PositionRepository with the provided database connection.
func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// GetPositions retrieves all positions in insertion order. created_at only has
// second granularity, so ordering uses the monotonic rowid — positions created
// within the same second must still come back in creation order (chart dataset
// order and the performer ranking depend on it). Lots are not loaded here;
// callers attach them via LotRepository.GetLotsByPositionIDs.
// Returns an empty slice when no positions exist.
func (r *PositionRepository) GetPositions() ([]model.Position, error) {
	query := `
          SELECT id, symbol, current_price, display_color
          FROM position
          ORDER BY rowid
      `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query position table: %w", err)
	}
	defer rows.Close()

	positions := []model.Position{}

	for rows.Next() {
		var p model.Position

		err := rows.Scan(
			&p.ID,
			&p.Symbol,
			&p.CurrentPrice,
			&p.DisplayColor,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position table results: %w", err)
		}

		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating position table: %w", err)
	}

	return positions, nil
}

// GetPositionOnID retrieves a single position by its ID.
func (r *PositionRepository) GetPositionOnID(positionID string) (model.Position, error) {
	query := `
          SELECT id, symbol, current_price, display_color
          FROM position
          WHERE id = ?
      `
	var p model.Position

	err := r.db.QueryRow(query, positionID).Scan(
		&p.ID,
		&p.Symbol,
		&p.CurrentPrice,
		&p.DisplayColor,
	)
	if err == sql.ErrNoRows {
		return model.Position{}, apperrors.ErrPositionNotFound
	}
	if err != nil {
		return model.Position{}, fmt.Errorf("failed to query position: %w", err)
	}

	return p, nil
}

// GetPositionBySymbol retrieves a position by symbol, matched
// case-insensitively. This is the merge lookup for new lot submissions.
func (r *PositionRepository) GetPositionBySymbol(ctx context.Context, q DBTX, symbol string) (model.Position, error) {
	query := `
          SELECT id, symbol, current_price, display_color
          FROM position
          WHERE symbol = ? COLLATE NOCASE
      `
	var p model.Position

	err := q.QueryRowContext(ctx, query, symbol).Scan(
		&p.ID,
		&p.Symbol,
		&p.CurrentPrice,
		&p.DisplayColor,
	)
	if err == sql.ErrNoRows {
		return model.Position{}, apperrors.ErrPositionNotFound
	}
	if err != nil {
		return model.Position{}, fmt.Errorf("failed to query position by symbol: %w", err)
	}

	return p, nil
}

// CountPositions returns the number of live positions. Used for the
// round-robin display color assignment.
func (r *PositionRepository) CountPositions(ctx context.Context, q DBTX) (int, error) {
	var count int
	err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM position").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count positions: %w", err)
	}
	return count, nil
}

// InsertPosition inserts a new position row.
func (r *PositionRepository) InsertPosition(ctx context.Context, q DBTX, p *model.Position) error {
	query := `
          INSERT INTO position (id, symbol, current_price, display_color)
          VALUES (?, ?, ?, ?)
      `

	_, err := q.ExecContext(ctx, query, p.ID, p.Symbol, p.CurrentPrice, p.DisplayColor)
	if err != nil {
		return fmt.Errorf("failed to insert position: %w", err)
	}

	return nil
}

// UpdateCurrentPrice overwrites a position's current price. Called on every
// lot submission for an existing symbol.
func (r *PositionRepository) UpdateCurrentPrice(ctx context.Context, q DBTX, positionID string, price float64) error {
	result, err := q.ExecContext(ctx, "UPDATE position SET current_price = ? WHERE id = ?", price, positionID)
	if err != nil {
		return fmt.Errorf("failed to update current price: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}

// DeletePosition removes a position. The lot table's ON DELETE CASCADE removes
// any remaining lots, though callers only delete positions that have none.
func (r *PositionRepository) DeletePosition(ctx context.Context, q DBTX, positionID string) error {
	result, err := q.ExecContext(ctx, "DELETE FROM position WHERE id = ?", positionID)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPositionNotFound
	}

	return nil
}
