package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthcheckCommandHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	healthcheckURL = server.URL
	defer func() { healthcheckURL = "" }()

	root := newRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"healthcheck"})

	if err := root.Execute(); err != nil {
		t.Fatalf("healthcheck command failed: %v", err)
	}
}

func TestHealthcheckCommandUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	healthcheckURL = server.URL
	defer func() { healthcheckURL = "" }()

	root := newRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"healthcheck"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unhealthy server, got nil")
	}
}

func TestHealthcheckCommandUnreachable(t *testing.T) {
	healthcheckURL = "http://127.0.0.1:1/healthz"
	defer func() { healthcheckURL = "" }()

	root := newRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"healthcheck"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unreachable server, got nil")
	}
}
