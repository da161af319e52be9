package api

import (
	"context"

	"github.com/fulldump/dyngrid/service"
	"github.com/fulldump/dyngrid/sheet"
)

func listKinds(s service.Servicer) interface{} {
	return func(ctx context.Context) []sheet.KindInfo {
		return s.Kinds()
	}
}
