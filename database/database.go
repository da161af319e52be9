package database

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/google/uuid"

	"github.com/fulldump/dyngrid/sheet"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

var ErrorTableNotFound = errors.New("table not found")
var ErrorTableAlreadyExists = errors.New("table already exists")
var ErrorInvalidName = errors.New("invalid table name")

type Config struct {
	Demo bool
}

type Database struct {
	config *Config
	status string
	mutex  sync.RWMutex
	tables *btree.BTreeG[*Table]
	exit   chan struct{}
	once   sync.Once
}

func NewDatabase(config *Config) *Database {
	return &Database{
		config: config,
		status: StatusOpening,
		tables: btree.NewG(32, func(a, b *Table) bool {
			return a.Name < b.Name
		}),
		exit: make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.mutex.Lock()
	db.status = status
	db.mutex.Unlock()
}

func (db *Database) CreateTable(name, kind, operator string) (*Table, error) {

	if name == "" {
		return nil, ErrorInvalidName
	}

	s, err := sheet.New(kind, operator)
	if err != nil {
		return nil, err
	}

	t := &Table{
		Name:      name,
		Id:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		sheet:     s,
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()

	if db.tables.Has(t) {
		return nil, fmt.Errorf("%w: '%s'", ErrorTableAlreadyExists, name)
	}
	db.tables.ReplaceOrInsert(t)

	return t, nil
}

func (db *Database) GetTable(name string) (*Table, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	t, exists := db.tables.Get(&Table{Name: name})
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", ErrorTableNotFound, name)
	}
	return t, nil
}

// ListTables returns every table sorted by name.
func (db *Database) ListTables() []*Table {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	result := make([]*Table, 0, db.tables.Len())
	db.tables.Ascend(func(t *Table) bool {
		result = append(result, t)
		return true
	})
	return result
}

func (db *Database) DropTable(name string) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	_, deleted := db.tables.Delete(&Table{Name: name})
	if !deleted {
		return fmt.Errorf("%w: '%s'", ErrorTableNotFound, name)
	}
	return nil
}

func (db *Database) Load() error {

	if db.config.Demo {
		fmt.Println("Loading demo tables...") // todo: move to logger
		err := loadDemo(db)
		if err != nil {
			db.setStatus(StatusClosing)
			return err
		}
	}

	db.mutex.Lock()
	if db.status == StatusOpening {
		db.status = StatusOperating
	}
	db.mutex.Unlock()

	return nil
}

func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	defer db.once.Do(func() {
		close(db.exit)
	})

	db.setStatus(StatusClosing)

	for _, t := range db.ListTables() {
		fmt.Printf("Closing '%s'...\n", t.Name)
	}

	return nil
}
