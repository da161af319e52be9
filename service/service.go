package service

import (
	"fmt"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) CreateTable(name, kind, operator string) (*database.Table, error) {
	t, err := s.db.CreateTable(name, kind, operator)
	if err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}
	return t, nil
}

func (s *Service) GetTable(name string) (*database.Table, error) {
	return s.db.GetTable(name)
}

func (s *Service) ListTables() ([]*database.Table, error) {
	return s.db.ListTables(), nil
}

func (s *Service) DeleteTable(name string) error {
	return s.db.DropTable(name)
}

func (s *Service) Kinds() []sheet.KindInfo {
	return sheet.Kinds()
}
