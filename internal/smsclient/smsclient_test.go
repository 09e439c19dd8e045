package smsclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSendPostsFormAndAcceptsResultCodeOne(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("receiver"); got != "01012345678" {
			t.Errorf("expected receiver 01012345678, got %q", got)
		}
		if got := r.PostForm.Get("sender"); got != "0212345678" {
			t.Errorf("expected sender 0212345678, got %q", got)
		}
		if got := r.PostForm.Get("msg"); got != "hello" {
			t.Errorf("expected msg hello, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result_code":1,"message":"success","msg_id":"m-1"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", "careon", "0212345678", quietLogger())
	if err := client.Send(context.Background(), "01012345678", "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
}

func TestSendRejectedResultCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result_code":-101,"message":"invalid key"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "bad-key", "careon", "0212345678", quietLogger())
	if err := client.Send(context.Background(), "01012345678", "hello"); err == nil {
		t.Fatal("expected error for non-1 result_code")
	}
}

func TestSendGatewayServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, "test-key", "careon", "0212345678", quietLogger())
	if err := client.Send(context.Background(), "01012345678", "hello"); err == nil {
		t.Fatal("expected error for 502 response")
	}
}
