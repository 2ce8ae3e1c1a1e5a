package worldid

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", AppID: "app_staging_123", Action: "verify-human", Timeout: 2 * time.Second})
}

func testProof() *Proof {
	return &Proof{
		Proof:             "0xproof",
		MerkleRoot:        "0xroot",
		NullifierHash:     "0xnullifier",
		VerificationLevel: "orb",
	}
}

func TestVerifyProof_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v2/verify/app_staging_123" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if body.Action != "verify-human" || body.NullifierHash != "0xnullifier" || body.SignalHash != HashToField(nil) {
			t.Errorf("unexpected request body %+v", body)
		}
		_, _ = w.Write([]byte(`{"success":true,"nullifier_hash":"0xnullifier","action":"verify-human"}`))
	})

	res, err := c.VerifyProof(context.Background(), testProof())
	if err != nil {
		t.Fatalf("VerifyProof() failed: %v", err)
	}
	if res.NullifierHash != "0xnullifier" || res.VerificationLevel != "orb" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestVerifyProof_Rejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_proof","detail":"The provided proof is invalid.","attribute":null}`))
	})

	_, err := c.VerifyProof(context.Background(), testProof())
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	var rej *RejectionError
	if !errors.As(err, &rej) || rej.Code != "invalid_proof" || rej.Detail != "The provided proof is invalid." {
		t.Fatalf("unexpected rejection %+v", rej)
	}
}

func TestVerifyProof_Unavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := c.VerifyProof(context.Background(), testProof())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	closed := NewClient(Config{BaseURL: "http://127.0.0.1:1", AppID: "app", Timeout: time.Second})
	if _, err := closed.VerifyProof(context.Background(), testProof()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for refused connection, got %v", err)
	}
}

func TestHashToField(t *testing.T) {
	h := HashToField([]byte("0x1111111111111111111111111111111111111111"))
	if !strings.HasPrefix(h, "0x00") || len(h) != 66 {
		t.Fatalf("expected 32 byte field element with a zero top byte, got %s", h)
	}
	if HashToField(nil) == h {
		t.Fatal("expected different hashes for different signals")
	}
}
