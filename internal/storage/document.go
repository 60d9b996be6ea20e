package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"CoordinatePlane/internal/state"
)

// DocumentVersion is the only document version Decode accepts.
const DocumentVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported document version")

// Document is the on-disk form of a plane.
type Document struct {
	Version int           `json:"version"`
	Bounds  state.Bounds  `json:"bounds"`
	Points  []state.Point `json:"points"`
	SavedAt time.Time     `json:"saved_at"`
}

// NewDocument captures the model's current bounds and points.
func NewDocument(m *state.PlaneModel) Document {
	return Document{
		Version: DocumentVersion,
		Bounds:  m.Bounds(),
		Points:  m.Points(),
		SavedAt: time.Now().UTC(),
	}
}

func Encode(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	log.Printf("[STORAGE] Saved %d points", len(doc.Points))
	return nil
}

func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}
	if doc.Version != DocumentVersion {
		return Document{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	for i, p := range doc.Points {
		if !finite(p.X) || !finite(p.Y) {
			return Document{}, fmt.Errorf("point %d: coordinates must be finite", i)
		}
	}
	log.Printf("[STORAGE] Read %d bytes, %d points", len(data), len(doc.Points))
	return doc, nil
}

// Apply loads the document into the model, replacing its contents.
func (d Document) Apply(m *state.PlaneModel) {
	m.Restore(d.Bounds, d.Points)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
