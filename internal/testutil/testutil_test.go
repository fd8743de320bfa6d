package testutil

import (
	"net/http"
	"testing"
)

func TestServeAndDecode(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(h, http.MethodGet, "/anything", nil)
	AssertStatus(t, rr, http.StatusTeapot)

	var body struct {
		OK bool `json:"ok"`
	}
	DecodeJSON(t, rr, &body)
	if !body.OK {
		t.Fatal("expected decoded body")
	}
}

func TestNewBufferLoggerCaptures(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "key", "value")
	if buf.Len() == 0 {
		t.Fatal("expected log output in buffer")
	}
}
