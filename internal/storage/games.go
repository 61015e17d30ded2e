package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/bowling-solitaire/internal/games/bowling"
)

// GameRecord is one finished game with its full roll ledger.
type GameRecord struct {
	ID        string // uuid v4
	GameID    string
	Profile   string
	Seed      int64
	Rolls     []int
	Total     int
	CreatedAt time.Time
}

// Frames re-scores the stored ledger.
func (r GameRecord) Frames() []bowling.FrameScore {
	return bowling.FrameScores(r.Rolls)
}

// SaveGame stores a finished game. The ID and total are
// assigned here; the total is always recomputed from the rolls.
func (s *Store) SaveGame(rec GameRecord) (GameRecord, error) {
	if err := validateRolls(rec.Rolls); err != nil {
		return rec, fmt.Errorf("storage: cannot save game: %w", err)
	}
	rec.ID = uuid.NewString()
	rec.Total = bowling.GameTotal(rec.Rolls)
	if rec.GameID == "" {
		rec.GameID = bowling.GameID
	}

	if _, err := s.db.Exec(
		`INSERT INTO games (id, game_id, profile, seed, rolls, total) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, rec.Profile, rec.Seed, encodeRolls(rec.Rolls), rec.Total,
	); err != nil {
		return rec, fmt.Errorf("storage: cannot save game: %w", err)
	}
	return rec, nil
}

// GameByID retrieves a stored game. It returns nil without an error when
// no game has that ID.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("storage: invalid game id %q: %w", id, err)
	}

	row := s.db.QueryRow(
		`SELECT id, game_id, profile, seed, rolls, total, created_at
		 FROM games WHERE id = ?`,
		id,
	)
	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	return rec, nil
}

// TopGames retrieves the highest scoring stored games, best first.
func (s *Store) TopGames(gameID string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, game_id, profile, seed, rolls, total, created_at
		 FROM games
		 WHERE game_id = ?
		 ORDER BY total DESC, created_at ASC, rowid ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentGames retrieves a profile's most recent games, newest first.
func (s *Store) RecentGames(profile string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(
		`SELECT id, game_id, profile, seed, rolls, total, created_at
		 FROM games
		 WHERE profile = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		profile, limit,
	)
}

func (s *Store) queryGames(query string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (*GameRecord, error) {
	var rec GameRecord
	var rolls string
	var createdAt any
	if err := row.Scan(&rec.ID, &rec.GameID, &rec.Profile, &rec.Seed, &rolls, &rec.Total, &createdAt); err != nil {
		return nil, err
	}
	parsed, err := decodeRolls(rolls)
	if err != nil {
		return nil, err
	}
	rec.Rolls = parsed
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// encodeRolls stores a ledger as comma-separated pin counts.
func encodeRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ",")
}

func decodeRolls(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	rolls := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad roll %q: %w", p, err)
		}
		rolls[i] = n
	}
	return rolls, validateRolls(rolls)
}

func validateRolls(rolls []int) error {
	if len(rolls) > 21 {
		return fmt.Errorf("%d rolls is more than a game can hold", len(rolls))
	}
	for i, r := range rolls {
		if r < 0 || r > bowling.AllPins {
			return fmt.Errorf("roll %d knocks %d pins", i+1, r)
		}
	}
	return nil
}
