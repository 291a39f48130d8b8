// Package backup renders and validates the portable full-state backup
// envelope. The envelope wraps the serialized ledger state with a type
// marker, a format version, and an export timestamp so a restore can
// reject files that are not backups at all.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/aravindcleaerr/DietWise/internal/ledger"
)

const (
	// EnvelopeType marks a backup file as ours.
	EnvelopeType = "dietwise-backup"
	// Version is the current backup format version.
	Version = 1
)

// Envelope is the on-disk backup document.
type Envelope struct {
	Type       string       `json:"_type"`
	Version    int          `json:"_version"`
	ExportedAt string       `json:"_exported_at"`
	State      ledger.State `json:"state"`
}

// Export wraps the state in an envelope and renders it as indented JSON.
func Export(state ledger.State, now time.Time) ([]byte, error) {
	env := Envelope{
		Type:       EnvelopeType,
		Version:    Version,
		ExportedAt: now.UTC().Format(time.RFC3339),
		State:      state,
	}
	raw, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return raw, nil
}

// FileName returns the suggested backup file name for the export date.
func FileName(now time.Time) string {
	return fmt.Sprintf("dietwise-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// Parse validates a backup document and returns the state it carries.
// A file without the envelope type marker or without a profile is
// rejected.
func Parse(raw []byte) (ledger.State, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ledger.State{}, fmt.Errorf("could not parse backup file: %w", err)
	}
	if env.Type != EnvelopeType {
		return ledger.State{}, fmt.Errorf("invalid backup file format")
	}
	if env.State.Profile == nil {
		return ledger.State{}, fmt.Errorf("backup file is missing profile data")
	}
	return env.State, nil
}
