package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ProfileOptions are the option flags and story progress saved per profile.
type ProfileOptions struct {
	Profile         string
	ShowHints       bool
	VisibleDiscards bool
	StoryPhase      int
	UpdatedAt       time.Time
}

// LoadOptions returns the saved options of a profile. A profile that has
// never saved gets def back with its Profile set.
func (s *Store) LoadOptions(profile string, def ProfileOptions) (ProfileOptions, error) {
	def.Profile = profile

	var o ProfileOptions
	var updatedAt any
	err := s.db.QueryRow(
		`SELECT profile, show_hints, visible_discards, story_phase, updated_at
		 FROM options WHERE profile = ?`,
		profile,
	).Scan(&o.Profile, &o.ShowHints, &o.VisibleDiscards, &o.StoryPhase, &updatedAt)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot load options: %w", err)
	}
	o.UpdatedAt = parseTime(updatedAt)
	return o, nil
}

// SaveOptions creates or replaces a profile's options.
func (s *Store) SaveOptions(o ProfileOptions) error {
	if o.Profile == "" {
		return fmt.Errorf("storage: cannot save options: empty profile")
	}
	_, err := s.db.Exec(
		`INSERT INTO options (profile, show_hints, visible_discards, story_phase, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
			show_hints = excluded.show_hints,
			visible_discards = excluded.visible_discards,
			story_phase = excluded.story_phase,
			updated_at = CURRENT_TIMESTAMP`,
		o.Profile, o.ShowHints, o.VisibleDiscards, o.StoryPhase,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save options: %w", err)
	}
	return nil
}

// DeleteOptions removes a profile's saved options. It reports whether there
// was anything to delete.
func (s *Store) DeleteOptions(profile string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM options WHERE profile = ?", profile)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete options: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete options: %w", err)
	}
	return n > 0, nil
}
