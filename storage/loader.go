package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"argus/core"
)

// scanner buffer sizing for JSONL: alerts with every facet populated run a
// few KB; 8MB leaves headroom for pathological messages.
const (
	scannerInitialBuffer = 1 << 20
	scannerMaxBuffer     = 8 << 20
)

// LoadFile reads a dataset file into memory. Both formats produced by the
// offline generators are accepted: a single JSON array, or JSONL with one
// object per line. The format is chosen by extension (.json / .jsonl) and,
// for anything else, by sniffing the first non-space byte. A missing,
// unreadable or empty file wraps ErrEmptyDataset so the caller can fail
// startup.
func LoadFile(path string, logger *zap.SugaredLogger) ([]*core.Alert, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyDataset, err)
	}

	var alerts []*core.Alert
	switch {
	case isJSONArray(path, data):
		alerts, err = decodeArray(data)
	default:
		alerts, err = decodeLines(data)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	if len(alerts) == 0 {
		return nil, fmt.Errorf("%w: %s contains no records", ErrEmptyDataset, filepath.Base(path))
	}

	logger.Infof("Loaded %d alerts from %s in %s", len(alerts), filepath.Base(path), time.Since(start).Round(time.Millisecond))
	return alerts, nil
}

// isJSONArray decides whether the payload is one JSON array. The extension
// wins when it is unambiguous; otherwise the first non-space byte decides.
func isJSONArray(path string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return true
	case ".jsonl", ".ndjson":
		return false
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

func decodeArray(data []byte) ([]*core.Alert, error) {
	var alerts []*core.Alert
	if err := json.Unmarshal(data, &alerts); err != nil {
		return nil, fmt.Errorf("parse JSON array: %w", err)
	}
	return alerts, nil
}

func decodeLines(data []byte) ([]*core.Alert, error) {
	alerts := make([]*core.Alert, 0, 4096)

	s := bufio.NewScanner(bytes.NewReader(data))
	s.Buffer(make([]byte, 0, scannerInitialBuffer), scannerMaxBuffer)

	lineNo := 0
	for s.Scan() {
		lineNo++
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 {
			continue
		}
		var a core.Alert
		if err := json.Unmarshal(line, &a); err != nil {
			return nil, fmt.Errorf("parse JSONL line %d: %w", lineNo, err)
		}
		alerts = append(alerts, &a)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan JSONL: %w", err)
	}
	return alerts, nil
}
