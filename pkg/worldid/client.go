// Package worldid verifies World ID proofs against the cloud verifier.
package worldid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
)

const maxResponseBytes = 64 << 10

var (
	// ErrRejected is returned when the verifier refused the proof.
	ErrRejected = errors.New("world id proof rejected")
	// ErrUnavailable is returned when the verifier could not be reached or failed.
	ErrUnavailable = errors.New("world id verifier unavailable")
)

// Proof is the payload produced by the World ID widget.
type Proof struct {
	Proof             string
	MerkleRoot        string
	NullifierHash     string
	VerificationLevel string
	Signal            string
}

// Result describes a verified proof.
type Result struct {
	NullifierHash     string
	VerificationLevel string
	Action            string
}

// RejectionError carries the verifier's reason for refusing a proof.
type RejectionError struct {
	Code   string
	Detail string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrRejected, e.Detail, e.Code)
}

func (e *RejectionError) Unwrap() error { return ErrRejected }

// Verifier verifies World ID proofs.
//
//go:generate mockery --name Verifier --output mocks --outpkg mocks --filename mock_verifier.go --with-expecter
type Verifier interface {
	VerifyProof(ctx context.Context, proof *Proof) (*Result, error)
}

// Config configures the cloud verifier client.
type Config struct {
	BaseURL string
	AppID   string
	Action  string
	Timeout time.Duration
}

// Client calls the World ID v2 verify endpoint.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a verifier client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type verifyRequest struct {
	NullifierHash     string `json:"nullifier_hash"`
	MerkleRoot        string `json:"merkle_root"`
	Proof             string `json:"proof"`
	VerificationLevel string `json:"verification_level"`
	Action            string `json:"action"`
	SignalHash        string `json:"signal_hash"`
}

type verifyResponse struct {
	Success       bool   `json:"success"`
	NullifierHash string `json:"nullifier_hash"`
	Action        string `json:"action"`
	Code          string `json:"code"`
	Detail        string `json:"detail"`
}

// VerifyProof posts the proof to {base}/api/v2/verify/{app_id}.
func (c *Client) VerifyProof(ctx context.Context, proof *Proof) (*Result, error) {
	body, err := json.Marshal(&verifyRequest{
		NullifierHash:     proof.NullifierHash,
		MerkleRoot:        proof.MerkleRoot,
		Proof:             proof.Proof,
		VerificationLevel: proof.VerificationLevel,
		Action:            c.cfg.Action,
		SignalHash:        HashToField([]byte(proof.Signal)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/api/v2/verify/" + c.cfg.AppID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	var out verifyResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil && resp.StatusCode < 500 {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
		}
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: verifier returned status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode == http.StatusOK && out.Success:
		nullifier := out.NullifierHash
		if nullifier == "" {
			nullifier = proof.NullifierHash
		}
		return &Result{
			NullifierHash:     nullifier,
			VerificationLevel: proof.VerificationLevel,
			Action:            c.cfg.Action,
		}, nil
	default:
		detail := out.Detail
		if detail == "" {
			detail = fmt.Sprintf("verifier returned status %d", resp.StatusCode)
		}
		return nil, &RejectionError{Code: out.Code, Detail: detail}
	}
}

// HashToField hashes a signal the way World ID encodes external inputs:
// keccak256 shifted right by 8 bits, as a 0x-prefixed 32 byte hex string.
func HashToField(input []byte) string {
	h := new(big.Int).SetBytes(crypto.Keccak256(input))
	h.Rsh(h, 8)
	return fmt.Sprintf("0x%064x", h)
}
