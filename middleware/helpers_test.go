package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/handler"
)

// run passes r through mw into h and renders the result.
func run(t *testing.T, mw handler.Middleware, h handler.HandlerFunc, r *http.Request) (*httptest.ResponseRecorder, error) {
	t.Helper()

	resp, err := mw.Process(r, h)
	if err != nil {
		return nil, err
	}
	require.NotNil(t, resp)

	rec := httptest.NewRecorder()
	return rec, resp(rec, r)
}

func status(code int, body string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(code)
		_, err := w.Write([]byte(body))
		return err
	}
}
