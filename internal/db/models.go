package db

// Element represents a row in the elements table
type Element struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	CreatedAt int64  `json:"created_at"` // Unix millis
}

// Link represents a row in the links table: a request to merge the sets
// of its two elements. Order of ID is the order unions are replayed in.
type Link struct {
	ID        int64  `json:"id"`
	SourceID  string `json:"source_id"`
	TargetID  string `json:"target_id"`
	CreatedAt int64  `json:"created_at"` // Unix millis
}
