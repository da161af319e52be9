package database

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fulldump/dyngrid/sheet"
)

// ErrorUnchanged is returned by a Lock mutation that left the sheet as it
// was. Lock swallows it without bumping the version.
var ErrorUnchanged = errors.New("unchanged")

// Table is a named sheet. Every operation on the sheet goes through Lock or
// View so a mutation and the recomputation it triggers are seen as a single
// step.
type Table struct {
	Name      string
	Id        string
	CreatedAt time.Time

	mutex   sync.RWMutex
	sheet   sheet.Sheet
	version atomic.Uint64
}

// Lock gives f exclusive access to the sheet for a mutation. The table
// version is bumped only when f succeeds.
func (t *Table) Lock(f func(s sheet.Sheet) error) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	err := f(t.sheet)
	if errors.Is(err, ErrorUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	t.version.Add(1)
	return nil
}

// View gives f shared access to the sheet for reading.
func (t *Table) View(f func(s sheet.Sheet) error) error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return f(t.sheet)
}

// Version changes every time a mutation on the table succeeds.
func (t *Table) Version() uint64 {
	return t.version.Load()
}

func (t *Table) Kind() string {
	return t.sheet.Kind()
}
