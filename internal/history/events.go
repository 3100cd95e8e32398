package history

import (
	"context"
	"fmt"

	"github.com/robalobadob/jumble/apps/go-server/internal/daily"
	"github.com/robalobadob/jumble/apps/go-server/internal/game"
)

var _ game.Recorder = (*Store)(nil)

// Stats are totals over the whole log.
type Stats struct {
	Games          int `json:"games"`
	DailyGames     int `json:"daily_games"`
	Completed      int `json:"completed"`
	Guesses        int `json:"guesses"`
	CorrectGuesses int `json:"correct_guesses"`
}

// BoardRow is one completed daily game.
type BoardRow struct {
	GameID    string `json:"game_id"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// RecordGame inserts a newly created game.
func (s *Store) RecordGame(ctx context.Context, v game.View, minLength int, isDaily bool) error {
	now := s.now()
	var day any
	if isDaily {
		day = daily.DateKey(now)
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO games
            (id, original_word, scramble_word, min_length, total_words, daily, day, created_ms, completed_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.OriginalWord, v.ScrambleWord, minLength, v.TotalWords, isDaily, day,
		now.UnixMilli(), completedAt(v, now.UnixMilli()),
	)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", v.ID, err)
	}
	return nil
}

// completedAt is set for games that start with nothing to guess.
func completedAt(v game.View, ms int64) any {
	if v.TotalWords == 0 {
		return ms
	}
	return nil
}

// RecordGuess appends a guess and stamps the game complete on the last word.
func (s *Store) RecordGuess(ctx context.Context, v game.View) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO guesses (game_id, word, result, remaining) VALUES (?, ?, ?, ?)`,
		v.ID, v.GuessWord, string(v.Result), v.RemainingWords,
	); err != nil {
		return fmt.Errorf("insert guess for %s: %w", v.ID, err)
	}
	if v.Result == game.ResultAllGuessed {
		if _, err := tx.ExecContext(ctx,
			`UPDATE games SET completed_ms=? WHERE id=? AND completed_ms IS NULL`,
			s.now().UnixMilli(), v.ID,
		); err != nil {
			return fmt.Errorf("complete game %s: %w", v.ID, err)
		}
	}
	return tx.Commit()
}

// Stats returns totals over all recorded games and guesses.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
        SELECT
            (SELECT COUNT(1) FROM games),
            (SELECT COUNT(1) FROM games WHERE daily = 1),
            (SELECT COUNT(1) FROM games WHERE completed_ms IS NOT NULL),
            (SELECT COUNT(1) FROM guesses),
            (SELECT COUNT(1) FROM guesses WHERE result IN (?, ?))`,
		string(game.ResultCorrect), string(game.ResultAllGuessed),
	).Scan(&st.Games, &st.DailyGames, &st.Completed, &st.Guesses, &st.CorrectGuesses)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	return st, nil
}

// DailyBoard lists the fastest completed daily games for day (YYYY-MM-DD).
//
//   - Ordered by elapsed time ASC, then guesses ASC, then creation ASC.
//   - Default limit is 20 if not specified.
func (s *Store) DailyBoard(ctx context.Context, day string, limit int) ([]BoardRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT g.id,
               (SELECT COUNT(1) FROM guesses q WHERE q.game_id = g.id) AS n,
               g.completed_ms - g.created_ms AS elapsed
        FROM games g
        WHERE g.daily = 1 AND g.day = ? AND g.completed_ms IS NOT NULL
        ORDER BY elapsed ASC, n ASC, g.created_ms ASC
        LIMIT ?`, day, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("daily board: %w", err)
	}
	defer rows.Close()

	out := make([]BoardRow, 0, limit)
	for rows.Next() {
		var r BoardRow
		if err := rows.Scan(&r.GameID, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
