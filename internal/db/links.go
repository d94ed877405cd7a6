package db

import (
	"fmt"
	"time"
)

// scanLink scans a row into a Link. The row must have all 4 columns in standard order.
func scanLink(scanner interface{ Scan(dest ...any) error }) (Link, error) {
	var l Link
	err := scanner.Scan(&l.ID, &l.SourceID, &l.TargetID, &l.CreatedAt)
	return l, err
}

// AddLink records a union request between two stored elements.
// Both must exist; the error names the first one that does not.
func (d *DB) AddLink(sourceID, targetID string) (*Link, error) {
	for _, id := range []string{sourceID, targetID} {
		if _, err := d.GetElement(id); err != nil {
			return nil, fmt.Errorf("adding link: %w", err)
		}
	}

	l := Link{SourceID: sourceID, TargetID: targetID, CreatedAt: time.Now().UnixMilli()}
	res, err := d.conn.Exec(
		`INSERT INTO links (source_id, target_id, created_at) VALUES (?, ?, ?)`,
		l.SourceID, l.TargetID, l.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("adding link %s-%s: %w", sourceID, targetID, err)
	}
	if l.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("adding link %s-%s: %w", sourceID, targetID, err)
	}
	return &l, nil
}

// AllLinks returns all links in the order they were recorded
func (d *DB) AllLinks() ([]Link, error) {
	rows, err := d.conn.Query(`SELECT id, source_id, target_id, created_at FROM links ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// LinksForElement returns all links where the element is source OR target.
func (d *DB) LinksForElement(id string) ([]Link, error) {
	rows, err := d.conn.Query(`
		SELECT id, source_id, target_id, created_at
		FROM links WHERE source_id = ? OR target_id = ? ORDER BY id
	`, id, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// CountLinks returns the number of stored links
func (d *DB) CountLinks() (int, error) {
	var count int
	err := d.conn.QueryRow("SELECT COUNT(*) FROM links").Scan(&count)
	return count, err
}
