package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/api/apitablev1"
	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/service"
	"github.com/fulldump/dyngrid/sheet"
	"github.com/fulldump/dyngrid/table"
)

var ErrUnavailable = errors.New("temporary unavailable")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(db *database.Database) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := db.GetStatus()
			if status == database.StatusOpening {
				box.SetError(ctx, fmt.Errorf("%w: opening", ErrUnavailable))
				return
			}
			if status == database.StatusClosing {
				box.SetError(ctx, fmt.Errorf("%w: closing", ErrUnavailable))
				return
			}
			next(ctx)
		}
	}
}

// badRequest lists the errors caused by the client input.
var badRequest = []error{
	sheet.ErrorKindNotFound,
	sheet.ErrorOperatorNotFound,
	sheet.ErrorInvalidKey,
	database.ErrorInvalidName,
	table.ErrIndexOutOfRange,
	apitablev1.ErrorUnknownFormat,
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		writeError := func(status int, description string) {
			w.WriteHeader(status)
			PrettyError{
				Message:     err.Error(),
				Description: description,
			}.MarshalTo(w)
		}

		if err == ErrUnauthorized {
			writeError(http.StatusUnauthorized, "user is not authenticated")
			return
		}

		if errors.Is(err, ErrUnavailable) {
			writeError(http.StatusServiceUnavailable, "service is not ready, try again later")
			return
		}

		if err == box.ErrResourceNotFound {
			writeError(http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		}

		if err == box.ErrMethodNotAllowed {
			writeError(http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if errors.Is(err, service.ErrorTableNotFound) {
			writeError(http.StatusNotFound, fmt.Sprintf("table '%s' not found", box.GetUrlParameter(ctx, "tableName")))
			return
		}

		if errors.Is(err, service.ErrorTableAlreadyExists) {
			writeError(http.StatusConflict, "table names must be unique")
			return
		}

		for _, e := range badRequest {
			if errors.Is(err, e) {
				writeError(http.StatusBadRequest, "Invalid input")
				return
			}
		}

		var syntaxError *json.SyntaxError
		var typeError *json.UnmarshalTypeError
		var streamError *jsontext.SyntacticError
		if errors.As(err, &syntaxError) || errors.As(err, &typeError) || errors.As(err, &streamError) {
			writeError(http.StatusBadRequest, "Malformed JSON")
			return
		}

		writeError(http.StatusInternalServerError, "Unexpected error")
	}
}
