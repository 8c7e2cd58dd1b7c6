package repository

import (
	"context"
	"errors"
	"fmt"

	"letterboxd/internal/data/entity"
	"letterboxd/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type pgWatchStateRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewPostgresWatchStateRepository keeps watch state in the watch_states table.
func NewPostgresWatchStateRepository(db database.PgxIface, log *zap.Logger) WatchStateRepository {
	return &pgWatchStateRepository{
		db:  db,
		log: log.With(zap.String("repository", "watch_state_postgres")),
	}
}

const watchStateColumns = `id, movie_id, user_name, status, rating, liked,
		       date_added, date_watched, notes, in_watchlist, updated_at`

func scanWatchState(row pgx.Row) (*entity.WatchState, error) {
	var state entity.WatchState
	var status string
	err := row.Scan(
		&state.ID,
		&state.MovieID,
		&state.UserName,
		&status,
		&state.Rating,
		&state.Liked,
		&state.DateAdded,
		&state.DateWatched,
		&state.Notes,
		&state.OnWatchlist,
		&state.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	state.Status = entity.WatchStatus(status)
	return &state, nil
}

func (r *pgWatchStateRepository) Get(ctx context.Context, movieID, userName string) (*entity.WatchState, error) {
	query := `SELECT ` + watchStateColumns + `
		FROM watch_states
		WHERE movie_id = $1 AND user_name = $2`

	state, err := scanWatchState(r.db.QueryRow(ctx, query, movieID, userName))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get watch state",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.String("user", userName),
		)
		return nil, fmt.Errorf("failed to get watch state: %w", err)
	}
	return state, nil
}

func (r *pgWatchStateRepository) Save(ctx context.Context, state *entity.WatchState) error {
	query := `
		INSERT INTO watch_states (id, movie_id, user_name, status, rating, liked,
		                          date_added, date_watched, notes, in_watchlist, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (movie_id, user_name) DO UPDATE
		SET status = EXCLUDED.status, rating = EXCLUDED.rating, liked = EXCLUDED.liked,
		    date_added = EXCLUDED.date_added, date_watched = EXCLUDED.date_watched,
		    notes = EXCLUDED.notes, in_watchlist = EXCLUDED.in_watchlist,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		state.ID,
		state.MovieID,
		state.UserName,
		string(state.Status),
		state.Rating,
		state.Liked,
		state.DateAdded,
		state.DateWatched,
		state.Notes,
		state.OnWatchlist,
		state.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to save watch state",
			zap.Error(err),
			zap.String("movie_id", state.MovieID),
			zap.String("user", state.UserName),
		)
		return fmt.Errorf("failed to save watch state: %w", err)
	}
	return nil
}

func (r *pgWatchStateRepository) Delete(ctx context.Context, movieID, userName string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM watch_states WHERE movie_id = $1 AND user_name = $2`, movieID, userName)
	if err != nil {
		r.log.Error("Failed to delete watch state",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.String("user", userName),
		)
		return fmt.Errorf("failed to delete watch state: %w", err)
	}
	return nil
}

func (r *pgWatchStateRepository) FindByUser(ctx context.Context, userName string) ([]entity.WatchState, error) {
	query := `SELECT ` + watchStateColumns + `
		FROM watch_states
		WHERE user_name = $1
		ORDER BY updated_at DESC, movie_id`

	rows, err := r.db.Query(ctx, query, userName)
	if err != nil {
		r.log.Error("Failed to list watch states", zap.Error(err), zap.String("user", userName))
		return nil, fmt.Errorf("failed to list watch states: %w", err)
	}
	defer rows.Close()

	states := make([]entity.WatchState, 0)
	for rows.Next() {
		state, err := scanWatchState(rows)
		if err != nil {
			r.log.Error("Failed to scan watch state row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan watch state: %w", err)
		}
		states = append(states, *state)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return states, nil
}
