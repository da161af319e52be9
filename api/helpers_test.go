package api

import (
	"net/http"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/service"
)

func TestInterceptorUnavailable(t *testing.T) {

	db := database.NewDatabase(&database.Config{})

	b := Build(service.NewService(db), "test", "", "")
	b.WithInterceptors(
		PrettyErrorInterceptor,
		InterceptorUnavailable(db),
	)

	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/tables").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)

	biff.AssertNil(db.Load())
	resp = api.Request("GET", "/v1/tables").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusOK)
}

func TestKinds(t *testing.T) {

	db := database.NewDatabase(&database.Config{})

	b := Build(service.NewService(db), "test", "", "")
	b.WithInterceptors(PrettyErrorInterceptor)

	resp := apitest.NewWithHandler(b).Request("GET", "/v1/kinds").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusOK)

	kinds := resp.BodyJson().([]interface{})
	biff.AssertEqual(len(kinds), 5)
	biff.AssertEqualJson(kinds[0], map[string]any{
		"name":             "color",
		"operators":        []string{"gb", "rb", "rg"},
		"default_operator": "rg",
	})
}

func TestRecoverFromPanic(t *testing.T) {

	b := Build(service.NewService(database.NewDatabase(&database.Config{})), "test", "", "")
	b.Resource("/panic").WithActions(
		box.Get(func() string {
			panic("boom")
		}).WithName("panic"),
	)
	b.WithInterceptors(RecoverFromPanic)

	resp := apitest.NewWithHandler(b).Request("GET", "/panic").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
}

func TestCompression(t *testing.T) {

	db := database.NewDatabase(&database.Config{})
	db.Load()

	b := Build(service.NewService(db), "test", "", "")
	b.WithInterceptors(Compression)

	resp := apitest.NewWithHandler(b).Request("GET", "/v1/tables").
		WithHeader("Accept-Encoding", "gzip").
		Do()
	biff.AssertEqual(resp.StatusCode, http.StatusOK)
	biff.AssertEqual(resp.Header.Get("Content-Encoding"), "gzip")
}
