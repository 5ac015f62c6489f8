// Package store persists segmentation results per album.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/movements/internal/db"
	"github.com/llehouerou/movements/internal/library"
	"github.com/llehouerou/movements/internal/segment"
)

// Work is a stored work with its movements in album order.
type Work struct {
	ID         int64
	Position   int
	Title      string
	AnchorRule string
	Movements  []Movement
}

// Movement is a stored movement.
type Movement struct {
	Position    int
	SourceIndex int
	Path        string
	Title       string
	Rule        string
}

// Stats summarizes the stored results.
type Stats struct {
	Albums    int
	Works     int
	Movements int
	// Breaks counts tracks that did not continue the preceding work.
	Breaks int
}

// Store provides database operations for segmentation results.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Open opens the database at path and migrates it.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := dbutil.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveAlbum replaces the stored results for album with works.
func (s *Store) SaveAlbum(ctx context.Context, album *library.Album, works []segment.Work) error {
	return dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM albums WHERE album_key = ?`, album.Key()); err != nil {
			return fmt.Errorf("delete album: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO albums (album_key, artist, name, scanned_at)
			VALUES (?, ?, ?, ?)
		`, album.Key(), album.Artist, album.Name, s.now().Unix())
		if err != nil {
			return fmt.Errorf("insert album: %w", err)
		}
		albumID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		for wi, w := range works {
			res, err := tx.ExecContext(ctx, `
				INSERT INTO works (album_id, position, title, anchor_rule)
				VALUES (?, ?, ?, ?)
			`, albumID, wi, w.Title, w.Anchor.ParseName)
			if err != nil {
				return fmt.Errorf("insert work: %w", err)
			}
			workID, err := res.LastInsertId()
			if err != nil {
				return err
			}

			for mi, m := range w.Movements {
				var path string
				if m.SourceIndex >= 0 && m.SourceIndex < len(album.Tracks) {
					path = album.Tracks[m.SourceIndex].Path
				}
				_, err := tx.ExecContext(ctx, `
					INSERT INTO movements (work_id, position, source_index, track_path, title, parse_rule)
					VALUES (?, ?, ?, ?, ?, ?)
				`, workID, mi, m.SourceIndex, dbutil.NullString(path), m.Title, m.ParseName)
				if err != nil {
					return fmt.Errorf("insert movement: %w", err)
				}
			}
		}
		return nil
	})
}

// Works returns the stored works of an album, or nil if the album is unknown.
func (s *Store) Works(ctx context.Context, albumArtist, album string) ([]Work, error) {
	var albumID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM albums WHERE album_key = ?`,
		library.AlbumKey(albumArtist, album),
	).Scan(&albumID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT w.id, w.position, w.title, w.anchor_rule,
		       m.position, m.source_index, m.track_path, m.title, m.parse_rule
		FROM works w
		JOIN movements m ON m.work_id = w.id
		WHERE w.album_id = ?
		ORDER BY w.position, m.position
	`, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var works []Work
	for rows.Next() {
		var w Work
		var m Movement
		var path sql.NullString
		if err := rows.Scan(&w.ID, &w.Position, &w.Title, &w.AnchorRule,
			&m.Position, &m.SourceIndex, &path, &m.Title, &m.Rule); err != nil {
			return nil, err
		}
		m.Path = dbutil.NullStringValue(path)

		if n := len(works); n == 0 || works[n-1].ID != w.ID {
			works = append(works, w)
		}
		last := &works[len(works)-1]
		last.Movements = append(last.Movements, m)
	}
	return works, rows.Err()
}

// Stats returns totals over every stored album.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM albums),
			(SELECT COUNT(*) FROM works),
			(SELECT COUNT(*) FROM movements),
			(SELECT COUNT(*) FROM works WHERE position > 0)
	`).Scan(&st.Albums, &st.Works, &st.Movements, &st.Breaks)
	return st, err
}
