package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// scanElement scans a row into an Element. The row must have id, label, created_at in order.
func scanElement(scanner interface{ Scan(dest ...any) error }) (Element, error) {
	var e Element
	err := scanner.Scan(&e.ID, &e.Label, &e.CreatedAt)
	return e, err
}

// AddElement stores a new element. IDs are unique.
func (d *DB) AddElement(id, label string) (*Element, error) {
	if id == "" {
		return nil, fmt.Errorf("adding element: empty id")
	}
	e := Element{ID: id, Label: label, CreatedAt: time.Now().UnixMilli()}
	_, err := d.conn.Exec(
		`INSERT INTO elements (id, label, created_at) VALUES (?, ?, ?)`,
		e.ID, e.Label, e.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: %s", ErrElementExists, id)
		}
		return nil, fmt.Errorf("adding element %s: %w", id, err)
	}
	return &e, nil
}

// AllElements returns all elements in insertion order
func (d *DB) AllElements() ([]Element, error) {
	rows, err := d.conn.Query(`SELECT id, label, created_at FROM elements ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var elements []Element
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, rows.Err()
}

// GetElement returns a single element by ID
func (d *DB) GetElement(id string) (*Element, error) {
	row := d.conn.QueryRow(`SELECT id, label, created_at FROM elements WHERE id = ?`, id)

	e, err := scanElement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CountElements returns the number of stored elements
func (d *DB) CountElements() (int, error) {
	var count int
	err := d.conn.QueryRow("SELECT COUNT(*) FROM elements").Scan(&count)
	return count, err
}

// SearchByIDPrefix finds elements whose ID starts with the given prefix.
func (d *DB) SearchByIDPrefix(prefix string, limit int) ([]Element, error) {
	rows, err := d.conn.Query(`
		SELECT id, label, created_at FROM elements
		WHERE substr(id, 1, ?) = ? ORDER BY rowid LIMIT ?
	`, utf8.RuneCountInString(prefix), prefix, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var elements []Element
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, rows.Err()
}
