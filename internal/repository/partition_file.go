package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"loan-reconciliation-backend/internal/domain"

	"github.com/google/uuid"
)

const maxPartitionLine = 1 << 20

// FilePartitionWriter keeps one append-only JSON Lines log per partition under
// <dir>/<category>/findings_<YYYYMMDD>.jsonl.
type FilePartitionWriter struct {
	dir string

	mu       sync.Mutex
	verified map[string]bool
}

func NewFilePartitionWriter(dir string) *FilePartitionWriter {
	return &FilePartitionWriter{dir: dir, verified: make(map[string]bool)}
}

type partitionLine struct {
	RunID uuid.UUID `json:"run_id"`
	domain.Finding
}

// Path is where the partition's log lives.
func (w *FilePartitionWriter) Path(partition domain.Partition) string {
	return filepath.Join(w.dir, partition.Category, "findings_"+partition.Date+".jsonl")
}

// AppendFindings appends the findings to the partition log. The first append
// to an existing log in this process reads it back and fails with
// domain.ErrCorruptPartition if any line does not decode.
func (w *FilePartitionWriter) AppendFindings(ctx context.Context, runID uuid.UUID, partition domain.Partition, findings []domain.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	path := w.Path(partition)
	if !w.verified[path] {
		if _, err := readLines(path); err != nil {
			return err
		}
		w.verified[path] = true
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrPartitionIO, filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", domain.ErrPartitionIO, path, err)
	}

	buf := bufio.NewWriter(f)
	enc := json.NewEncoder(buf)
	for _, finding := range findings {
		if err := enc.Encode(partitionLine{RunID: runID, Finding: finding}); err != nil {
			f.Close()
			return fmt.Errorf("%w: encode finding %s: %w", domain.ErrPartitionIO, finding.Document, err)
		}
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", domain.ErrPartitionIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrPartitionIO, path, err)
	}
	return nil
}

// ReadPartition loads every finding of a partition. A missing log is empty.
func (w *FilePartitionWriter) ReadPartition(partition domain.Partition) ([]domain.Finding, error) {
	lines, err := readLines(w.Path(partition))
	if err != nil {
		return nil, err
	}
	findings := make([]domain.Finding, 0, len(lines))
	for _, line := range lines {
		findings = append(findings, line.Finding)
	}
	return findings, nil
}

// ListFindings pages through one partition log. The log is addressed by
// category and date, so both are required; the cursor is a line offset
// into the filtered result.
func (w *FilePartitionWriter) ListFindings(ctx context.Context, q FindingQuery) (FindingPage, error) {
	if q.Category == "" || q.Date == "" {
		return FindingPage{}, ErrPartitionRequired
	}
	if err := ctx.Err(); err != nil {
		return FindingPage{}, err
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := 0
	if q.Cursor != "" {
		n, err := strconv.Atoi(q.Cursor)
		if err != nil || n < 0 {
			return FindingPage{}, fmt.Errorf("%w: %q", ErrInvalidCursor, q.Cursor)
		}
		offset = n
	}

	w.mu.Lock()
	lines, err := readLines(w.Path(domain.Partition{Category: q.Category, Date: q.Date}))
	w.mu.Unlock()
	if err != nil {
		return FindingPage{}, err
	}

	var matched []domain.Finding
	for _, line := range lines {
		if q.RunID != uuid.Nil && line.RunID != q.RunID {
			continue
		}
		if q.Kind != "" && q.Kind != "all" && string(line.Kind) != q.Kind {
			continue
		}
		matched = append(matched, line.Finding)
	}

	page := FindingPage{Items: []domain.Finding{}}
	if offset >= len(matched) {
		return page, nil
	}
	end := offset + limit
	if end < len(matched) {
		page.HasMore = true
		page.NextCursor = strconv.Itoa(end)
	} else {
		end = len(matched)
	}
	page.Items = append(page.Items, matched[offset:end]...)
	return page, nil
}

func readLines(path string) ([]partitionLine, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrPartitionIO, path, err)
	}
	defer f.Close()

	var lines []partitionLine
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxPartitionLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var line partitionLine
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", domain.ErrCorruptPartition, path, lineNo, err)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrPartitionIO, path, err)
	}
	return lines, nil
}
