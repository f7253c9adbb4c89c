// Package session owns the stage register shared between submissions: a
// keyed store holding at most one state per stage plus the declared
// process. Latest submission wins; no history is kept. The core packages
// never reach into it — they take and return values, and the consumer
// layer decides where the register lives.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Klassiq901/ThermoApp/internal/process"
	"github.com/Klassiq901/ThermoApp/internal/state"
)

// Stage keys understood by the register.
const (
	StageState1  = "state1"
	StageState2  = "state2"
	StageProcess = "process"
)

// ErrUnknownStage rejects a stage key outside the fixed set.
var ErrUnknownStage = errors.New("unknown stage key")

// Store is the register interface injected into the consumer layer.
type Store interface {
	SaveState(stage string, st state.State) error
	LoadState(stage string) (state.State, bool, error)
	SaveDeclaration(decl process.Declaration) error
	LoadDeclaration() (process.Declaration, bool, error)
}

func validStage(stage string) error {
	if stage != StageState1 && stage != StageState2 {
		return fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}
	return nil
}

// MemoryStore is the in-process register used by tests and by callers
// that drive a whole simulation in one invocation.
type MemoryStore struct {
	states map[string]state.State
	decl   *process.Declaration
}

// NewMemoryStore returns an empty in-memory register.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]state.State)}
}

func (m *MemoryStore) SaveState(stage string, st state.State) error {
	if err := validStage(stage); err != nil {
		return err
	}
	m.states[stage] = st
	return nil
}

func (m *MemoryStore) LoadState(stage string) (state.State, bool, error) {
	if err := validStage(stage); err != nil {
		return state.State{}, false, err
	}
	st, ok := m.states[stage]
	return st, ok, nil
}

func (m *MemoryStore) SaveDeclaration(decl process.Declaration) error {
	m.decl = &decl
	return nil
}

func (m *MemoryStore) LoadDeclaration() (process.Declaration, bool, error) {
	if m.decl == nil {
		return process.Declaration{}, false, nil
	}
	return *m.decl, true, nil
}

// fileContents is the on-disk layout of a session file.
type fileContents struct {
	States  map[string]state.State `json:"states,omitempty"`
	Process *process.Declaration   `json:"process,omitempty"`
}

// FileStore persists the register as a JSON file so separate command
// invocations share one simulation run. Reads tolerate a missing file
// (empty register); every write rewrites the whole file.
type FileStore struct {
	Path string
}

// NewFileStore returns a register backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) read() (*fileContents, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return &fileContents{States: make(map[string]state.State)}, nil
	}
	if err != nil {
		return nil, err
	}
	var c fileContents
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("session file %s: %w", f.Path, err)
	}
	if c.States == nil {
		c.States = make(map[string]state.State)
	}
	return &c, nil
}

func (f *FileStore) write(c *fileContents) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0644)
}

func (f *FileStore) SaveState(stage string, st state.State) error {
	if err := validStage(stage); err != nil {
		return err
	}
	c, err := f.read()
	if err != nil {
		return err
	}
	c.States[stage] = st
	return f.write(c)
}

func (f *FileStore) LoadState(stage string) (state.State, bool, error) {
	if err := validStage(stage); err != nil {
		return state.State{}, false, err
	}
	c, err := f.read()
	if err != nil {
		return state.State{}, false, err
	}
	st, ok := c.States[stage]
	return st, ok, nil
}

func (f *FileStore) SaveDeclaration(decl process.Declaration) error {
	c, err := f.read()
	if err != nil {
		return err
	}
	c.Process = &decl
	return f.write(c)
}

func (f *FileStore) LoadDeclaration() (process.Declaration, bool, error) {
	c, err := f.read()
	if err != nil {
		return process.Declaration{}, false, err
	}
	if c.Process == nil {
		return process.Declaration{}, false, nil
	}
	return *c.Process, true, nil
}
