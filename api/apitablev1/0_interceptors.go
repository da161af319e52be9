package apitablev1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/service"
	"github.com/fulldump/dyngrid/sheet"
)

const ContextServicerKey = "3b1f3a52-8c0e-11f0-a6c4-2f6e8a1d9b07"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	s, _ := ctx.Value(ContextServicerKey).(service.Servicer)
	return s
}

func urlTable(ctx context.Context) (*database.Table, error) {
	tableName := box.GetUrlParameter(ctx, "tableName")
	return GetServicer(ctx).GetTable(tableName)
}

// lockTable runs the mutation f holding the lock of the table named in the
// url.
func lockTable(ctx context.Context, f func(t *database.Table, s sheet.Sheet) error) error {
	t, err := urlTable(ctx)
	if err != nil {
		return err
	}
	return t.Lock(func(s sheet.Sheet) error {
		return f(t, s)
	})
}

func viewTable(ctx context.Context, f func(t *database.Table, s sheet.Sheet) error) error {
	t, err := urlTable(ctx)
	if err != nil {
		return err
	}
	return t.View(func(s sheet.Sheet) error {
		return f(t, s)
	})
}
