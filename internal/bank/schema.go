package bank

// schemaSQL is the bank DDL. The bank persists across runs, so creation
// is conditional. position preserves import order; generation draws words
// in the same order the source dictionary listed them.
const schemaSQL = `CREATE TABLE IF NOT EXISTS words (
    word_id TEXT PRIMARY KEY,
    word TEXT NOT NULL,
    type TEXT NOT NULL,
    position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_words_type ON words(type);`
