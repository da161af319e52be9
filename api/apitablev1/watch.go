package apitablev1

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fulldump/dyngrid/sheet"
)

const watchInterval = 100 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// watch upgrades to a websocket and sends a fresh snapshot every time the
// table changes, starting with the current one.
//
// websocat ws://localhost:8080/v1/tables/colors:watch
func watch(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	t, err := urlTable(ctx)
	if err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil // Upgrade already replied to the client
	}
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	sent := ^uint64(0)
	for {
		if version := t.Version(); version != sent {
			var snapshot *SnapshotResponse
			t.View(func(s sheet.Sheet) error {
				snapshot = newSnapshotResponse(t, s)
				return nil
			})
			if err := conn.WriteJSON(snapshot); err != nil {
				return nil
			}
			sent = version
		}

		select {
		case <-ticker.C:
		case <-closed:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

