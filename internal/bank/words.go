package bank

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/storyforge/madlib/pkg/types"
)

// TypeCount is one row of a per-type word tally.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// generateID generates a UUID v7 for a word row, falling back to v4 if
// v7 generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ImportEntries appends entries to the bank in order, in one transaction.
// Returns the number of words imported.
func (b *Backend) ImportEntries(entries []types.WordEntry) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return 0, types.ErrBankDetached
	}

	var next int
	err := b.db.QueryRow("SELECT COALESCE(MAX(position), -1) + 1 FROM words").Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next bank position: %w", err)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin bank import: %w", err)
	}
	defer tx.Rollback()

	for i, e := range entries {
		_, err := tx.Exec(
			"INSERT INTO words (word_id, word, type, position) VALUES (?, ?, ?, ?)",
			generateID(), e.Word, e.Type, next+i,
		)
		if err != nil {
			return 0, fmt.Errorf("import word %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bank import: %w", err)
	}
	return len(entries), nil
}

// Dictionary loads every word in the bank into a Dictionary, in import
// order within each type.
func (b *Backend) Dictionary() (types.Dictionary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBankDetached
	}

	rows, err := b.db.Query("SELECT word, type FROM words ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query bank words: %w", err)
	}
	defer rows.Close()

	dict := make(types.Dictionary)
	for rows.Next() {
		var word, typ string
		if err := rows.Scan(&word, &typ); err != nil {
			return nil, fmt.Errorf("scan bank word: %w", err)
		}
		dict.Add(typ, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read bank words: %w", err)
	}
	return dict, nil
}

// Types returns the per-type word counts, sorted by type name.
func (b *Backend) Types() ([]TypeCount, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrBankDetached
	}

	rows, err := b.db.Query("SELECT type, COUNT(*) FROM words GROUP BY type ORDER BY type")
	if err != nil {
		return nil, fmt.Errorf("query bank types: %w", err)
	}
	defer rows.Close()

	var counts []TypeCount
	for rows.Next() {
		var tc TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan bank type: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read bank types: %w", err)
	}
	return counts, nil
}
