package service

import (
	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

var ErrorTableNotFound = database.ErrorTableNotFound
var ErrorTableAlreadyExists = database.ErrorTableAlreadyExists

type Servicer interface {
	CreateTable(name, kind, operator string) (*database.Table, error)
	GetTable(name string) (*database.Table, error)
	ListTables() ([]*database.Table, error)
	DeleteTable(name string) error
	Kinds() []sheet.KindInfo
}
