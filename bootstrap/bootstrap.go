package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fulldump/box"
	"golang.org/x/sync/errgroup"

	"github.com/fulldump/dyngrid/api"
	"github.com/fulldump/dyngrid/configuration"
	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/service"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration) (start func() error, stop func(), err error) {

	db := database.NewDatabase(&database.Config{
		Demo: c.Demo,
	})

	b := api.Build(service.NewService(db), VERSION, c.ApiKey, c.ApiSecret)
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
		api.InterceptorUnavailable(db),
	)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	if c.HttpsSelfsigned {
		log.Println("HTTPS Selfsigned")
		cert, err := selfSignedCertificate()
		if err != nil {
			return nil, nil, fmt.Errorf("self signed certificate: %w", err)
		}
		s.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
		}
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen: %w", err)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		db.Stop()
		s.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() error {

		g := &errgroup.Group{}

		g.Go(func() error {
			return db.Start()
		})

		g.Go(func() error {
			var err error
			if c.HttpsEnabled {
				err = s.ServeTLS(ln, "", "")
			} else {
				err = s.Serve(ln)
			}
			if err == http.ErrServerClosed {
				return nil
			}
			return err
		})

		return g.Wait()
	}

	return
}
