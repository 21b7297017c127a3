package emoji

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

//go:embed data/emoji.json
var defaultDataset []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded dataset.
//
// The dataset is parsed on first use. The returned Table is shared and must
// be treated as read-only, which its API already guarantees.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Decode(bytes.NewReader(defaultDataset))
		if err != nil {
			panic(fmt.Sprintf("emoji: embedded dataset: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Decode reads a JSON array of records and builds a Table.
func Decode(r io.Reader) (*Table, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode emoji dataset: %w", err)
	}
	return NewTable(records)
}

// Load builds a Table from the JSON dataset at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open emoji dataset: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
