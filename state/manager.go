package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/param"
)

const (
	magic          = "SUBDOM"
	currentVersion = uint32(1)
	// maxParams bounds the count read from untrusted blobs.
	maxParams = 1 << 12
)

// ErrInvalidState is returned for blobs that cannot be decoded.
var ErrInvalidState = errors.New("state: invalid state")

// Manager saves and restores a registry's values.
type Manager struct {
	version  uint32
	registry *param.Registry
}

// NewManager creates a state manager bound to registry.
func NewManager(registry *param.Registry) *Manager {
	return &Manager{
		version:  currentVersion,
		registry: registry,
	}
}

// Save writes magic header, version, count and (id, value) pairs.
func (m *Manager) Save(w io.Writer) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return err
	}

	params := m.registry.All()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(params))); err != nil {
		return err
	}

	for _, p := range params {
		if err := binary.Write(w, binary.LittleEndian, p.ID); err != nil {
			return err
		}

		if err := binary.Write(w, binary.LittleEndian, p.Value()); err != nil {
			return err
		}
	}

	return nil
}

// Load decodes a blob written by Save and applies it to the registry.
// Unknown IDs are ignored. Nothing is applied unless the whole blob decodes.
func (m *Manager) Load(r io.Reader) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("%w: header: %w", ErrInvalidState, err)
	}

	if string(header) != magic {
		return fmt.Errorf("%w: bad magic %q", ErrInvalidState, header)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("%w: version: %w", ErrInvalidState, err)
	}

	if version == 0 || version > m.version {
		return fmt.Errorf("%w: version %d not supported (max %d)", ErrInvalidState, version, m.version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("%w: count: %w", ErrInvalidState, err)
	}

	if count > maxParams {
		return fmt.Errorf("%w: parameter count %d too large", ErrInvalidState, count)
	}

	type entry struct {
		id    uint32
		value float64
	}

	entries := make([]entry, 0, count)
	for i := uint32(0); i < count; i++ {
		var e entry
		if err := binary.Read(r, binary.LittleEndian, &e.id); err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidState, i, err)
		}

		if err := binary.Read(r, binary.LittleEndian, &e.value); err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidState, i, err)
		}

		if math.IsNaN(e.value) || math.IsInf(e.value, 0) {
			return fmt.Errorf("%w: entry %d: non-finite value", ErrInvalidState, i)
		}

		entries = append(entries, e)
	}

	for _, e := range entries {
		if p := m.registry.Get(e.id); p != nil {
			p.Set(e.value)
		}
	}

	return nil
}

// Marshal returns the registry state as a byte slice.
func (m *Manager) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal applies a byte slice produced by Marshal.
func (m *Manager) Unmarshal(data []byte) error {
	return m.Load(bytes.NewReader(data))
}
