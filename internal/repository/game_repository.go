package repository

import (
	"context"
	"database/sql"
	"fmt"

	"gamehub-be/internal/entities"
)

// GameRepository defines the interface for game catalog reads
type GameRepository interface {
	ListAll(ctx context.Context) ([]*entities.Game, error)
}

type gameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *sql.DB) GameRepository {
	return &gameRepository{db: db}
}

// ListAll returns every game in the catalog in insertion order
func (r *gameRepository) ListAll(ctx context.Context) ([]*entities.Game, error) {
	query := `
		SELECT id, name, genre, price
		FROM games
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*entities.Game
	for rows.Next() {
		var game entities.Game
		err := rows.Scan(
			&game.ID,
			&game.Name,
			&game.Genre,
			&game.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, &game)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating games: %w", err)
	}

	return games, nil
}
