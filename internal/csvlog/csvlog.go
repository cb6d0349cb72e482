// Package csvlog appends interaction rows to a CSV file for later
// analysis. The file is created with a header on first write; every
// append opens, flushes and closes the file so a crash never loses more
// than the row being written.
package csvlog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/abhisek/continha/internal/session"
)

// maxPairs is how many (example, understood) column pairs the schema
// reserves. Matches the engine's retry maximum.
const maxPairs = session.MaxExampleAttempts

var header = buildHeader()

func buildHeader() []string {
	h := []string{
		"timestamp", "sessao", "faixa_etaria", "operacao", "questao",
		"operando1", "operando2", "resposta", "resposta_correta", "acertou",
	}
	for i := 1; i <= maxPairs; i++ {
		h = append(h, fmt.Sprintf("exemplo_%d", i), fmt.Sprintf("entendeu_%d", i))
	}
	return append(h, "fator_dificuldade", "precisao_recente", "questoes_operacao")
}

// Sink is a session.Recorder writing CSV rows.
type Sink struct {
	path string
	mu   sync.Mutex
}

// New creates a Sink for path. The file itself is created lazily on the
// first append.
func New(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the backing file path.
func (s *Sink) Path() string { return s.path }

// Append writes one row, creating the file with its header first when
// needed.
func (s *Sink) Append(_ context.Context, row session.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write(record(row)); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush log file: %w", err)
	}
	return f.Sync()
}

// record flattens a Row into the fixed CSV schema. Unused example pairs
// stay empty.
func record(row session.Row) []string {
	rec := []string{
		row.Timestamp.Format(time.RFC3339),
		row.SessionID,
		string(row.Bracket),
		string(row.Operation),
		row.QuestionText,
		strconv.Itoa(row.OperandA),
		strconv.Itoa(row.OperandB),
		row.Answer,
		strconv.Itoa(row.CorrectAnswer),
		simNao(row.Correct),
	}
	for i := 0; i < maxPairs; i++ {
		if i < len(row.Attempts) {
			rec = append(rec, row.Attempts[i].Example, simNao(row.Attempts[i].Understood))
		} else {
			rec = append(rec, "", "")
		}
	}
	return append(rec,
		strconv.FormatFloat(row.DifficultyFactor, 'f', 3, 64),
		strconv.FormatFloat(row.RecentAccuracy, 'f', 3, 64),
		strconv.Itoa(row.OperationCount),
	)
}

func simNao(b bool) string {
	if b {
		return "sim"
	}
	return "nao"
}
