// Package output serializes generated records and writes them to a filesystem.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zgen/internal/record"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Marshal renders records as a JSON array indented with two spaces.
// An empty or nil slice renders as [].
func Marshal(records []record.Record) ([]byte, error) {
	if records == nil {
		records = []record.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Write serializes records to name on fsys, creating parent directories and
// replacing any existing file. It returns the size of the written file in bytes.
func Write(fsys zfilesystem.ReadWriteFileFS, name string, records []record.Record) (int64, error) {
	data, err := Marshal(records)
	if err != nil {
		return 0, err
	}

	if dir := path.Dir(name); dir != "." {
		if err := fsys.MkdirAll(dir, dirPerm); err != nil {
			return 0, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	if err := fsys.WriteFile(name, data, filePerm); err != nil {
		return 0, fmt.Errorf("write %s: %w", name, err)
	}

	return int64(len(data)), nil
}

// KB converts a byte count to kilobytes.
func KB(size int64) float64 {
	return float64(size) / 1024
}
