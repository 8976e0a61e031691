package devapi

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
)

//go:embed schema.sql
var schema string

// Store persists users, species and catches in SQLite.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the database at path. ":memory:" gives
// a private in-memory database.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// An in-memory database lives in one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddUser creates or replaces a user with a bcrypt hash of password.
func (s *Store) AddUser(ctx context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO users (courriel, password_hash) VALUES (?, ?)",
		strings.ToLower(strings.TrimSpace(email)), string(hash))
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Authenticate checks a password against the stored hash.
func (s *Store) Authenticate(ctx context.Context, email, password string) error {
	var hash string
	err := s.db.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE courriel = ?",
		strings.ToLower(strings.TrimSpace(email))).Scan(&hash)
	if err == sql.ErrNoRows {
		return errors.NewAuthenticationError("password", "unknown user", nil)
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.NewAuthenticationError("password", "wrong password", err)
	}
	return nil
}

// AddSpecies inserts species names, ignoring ones already present.
func (s *Store) AddSpecies(ctx context.Context, names ...string) error {
	for _, name := range names {
		if _, err := s.db.ExecContext(ctx, "INSERT OR IGNORE INTO species (nom_francais) VALUES (?)", name); err != nil {
			return fmt.Errorf("insert species %s: %w", name, err)
		}
	}
	return nil
}

// Species returns the reference list, sorted.
func (s *Store) Species(ctx context.Context) ([]catches.Species, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT nom_francais FROM species")
	if err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	defer func() { _ = rows.Close() }()

	list := []catches.Species{}
	for rows.Next() {
		var sp catches.Species
		if err := rows.Scan(&sp.Name); err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		list = append(list, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	catches.SortSpecies(list)
	return list, nil
}

const catchColumns = "id, espece, taille_cm, poids_kg, date_capture, remis_a_leau, technique, lieu, conditions_meteo, temperature_eau, notes"

// List returns the catches matching f, newest first. Date filters compare
// the capture instant strictly before the start of the day, or from the
// start of the following day.
func (s *Store) List(ctx context.Context, f catches.Filter) ([]catches.Catch, error) {
	query := "SELECT " + catchColumns + " FROM catches"
	var args []any

	if f.Active() {
		value := strings.TrimSpace(f.Value)
		switch f.Kind {
		case catches.KindSpecies:
			query += " WHERE espece = ?"
			args = append(args, value)
		case catches.KindBefore, catches.KindAfter:
			day, err := time.Parse(catches.DateLayout, value)
			if err != nil {
				return nil, errors.NewValidationError("date", value, "date invalide, format attendu AAAA-MM-JJ")
			}
			if f.Kind == catches.KindBefore {
				query += " WHERE date_capture < ?"
				args = append(args, day.UTC().Format(catches.ISOLayout))
			} else {
				query += " WHERE date_capture >= ?"
				args = append(args, day.AddDate(0, 0, 1).UTC().Format(catches.ISOLayout))
			}
		}
	}
	query += " ORDER BY date_capture DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list catches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	list := []catches.Catch{}
	for rows.Next() {
		c, err := scanCatch(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catches: %w", err)
	}
	return list, nil
}

// Get returns one catch.
func (s *Store) Get(ctx context.Context, id string) (*catches.Catch, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+catchColumns+" FROM catches WHERE id = ?", id)
	c, err := scanCatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFoundError("catch", id)
	}
	return c, err
}

// Insert stores c under a new identifier and returns the stored record.
func (s *Store) Insert(ctx context.Context, c catches.Catch) (*catches.Catch, error) {
	if err := prepare(&c); err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()
	notes, err := json.Marshal(c.Notes)
	if err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO catches ("+catchColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.Species, c.LengthCm, c.WeightKg, c.CapturedAt, c.Released,
		c.Technique, c.Location, c.Weather, c.WaterTempC, string(notes))
	if err != nil {
		return nil, fmt.Errorf("insert catch: %w", err)
	}
	return &c, nil
}

// Update replaces the catch with c.ID.
func (s *Store) Update(ctx context.Context, c catches.Catch) (*catches.Catch, error) {
	if err := prepare(&c); err != nil {
		return nil, err
	}
	notes, err := json.Marshal(c.Notes)
	if err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE catches SET espece = ?, taille_cm = ?, poids_kg = ?, date_capture = ?, remis_a_leau = ?,
		technique = ?, lieu = ?, conditions_meteo = ?, temperature_eau = ?, notes = ? WHERE id = ?`,
		c.Species, c.LengthCm, c.WeightKg, c.CapturedAt, c.Released,
		c.Technique, c.Location, c.Weather, c.WaterTempC, string(notes), c.ID)
	if err != nil {
		return nil, fmt.Errorf("update catch: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, errors.NewNotFoundError("catch", c.ID)
	}
	return &c, nil
}

// Delete removes one catch.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM catches WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete catch: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NewNotFoundError("catch", id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCatch(row scanner) (*catches.Catch, error) {
	var c catches.Catch
	var notes string
	err := row.Scan(&c.ID, &c.Species, &c.LengthCm, &c.WeightKg, &c.CapturedAt, &c.Released,
		&c.Technique, &c.Location, &c.Weather, &c.WaterTempC, &notes)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan catch: %w", err)
	}
	c.Notes = []string{}
	if err := json.Unmarshal([]byte(notes), &c.Notes); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return &c, nil
}

// prepare validates c and stores its timestamp in the canonical UTC form so
// date filters can compare strings.
func prepare(c *catches.Catch) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.CapturedAt == "" {
		c.CapturedAt = time.Now().UTC().Format(catches.ISOLayout)
	} else {
		t, err := catches.ParseTimestamp(c.CapturedAt, time.UTC)
		if err != nil {
			return errors.NewValidationError("dateCapture", c.CapturedAt, "date de capture invalide")
		}
		c.CapturedAt = t.UTC().Format(catches.ISOLayout)
	}
	if c.Notes == nil {
		c.Notes = []string{}
	}
	return nil
}
