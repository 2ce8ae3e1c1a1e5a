package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	siwe "github.com/spruceid/siwe-go"
)

const (
	siweHeaderSuffix = " wants you to sign in with your Ethereum account:"
	nonceAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// NonceLength is the length of nonces returned by GenerateNonce.
	NonceLength = 24
)

// SIWE validation errors.
var (
	ErrSIWEMalformed = errors.New("malformed sign-in message")
	ErrSIWEDomain    = errors.New("sign-in message domain mismatch")
	ErrSIWEChain     = errors.New("sign-in message chain id mismatch")
	ErrSIWEExpired   = errors.New("sign-in message expired")
	ErrSIWENotYet    = errors.New("sign-in message not yet valid")
	ErrSIWESignature = errors.New("signature does not match message address")
)

// SIWEMessage is a parsed EIP-4361 sign-in message.
type SIWEMessage struct {
	// Scheme is the optional URI scheme in front of the domain, e.g. "https".
	Scheme string
	Domain string
	// Address is the EIP-55 checksummed signer address.
	Address string
	ChainID int64
	Nonce   string

	msg *siwe.Message
}

// ParseSIWEMessage parses the EIP-4361 text representation. The address line
// must be EIP-55 checksummed.
func ParseSIWEMessage(raw string) (*SIWEMessage, error) {
	scheme, body, err := splitScheme(raw)
	if err != nil {
		return nil, err
	}

	msg, err := siwe.ParseMessage(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSIWEMalformed, err)
	}

	address := msg.GetAddress().Hex()
	if addressLine(body) != address {
		return nil, fmt.Errorf("%w: address is not EIP-55 checksummed", ErrSIWEMalformed)
	}

	return &SIWEMessage{
		Scheme:  scheme,
		Domain:  msg.GetDomain(),
		Address: address,
		ChainID: int64(msg.GetChainID()),
		Nonce:   msg.GetNonce(),
		msg:     msg,
	}, nil
}

// Validate checks the message against the expected domain, chain id (when
// non-zero) and validity window.
func (m *SIWEMessage) Validate(domain string, chainID int64, now time.Time) error {
	if m.Domain != domain {
		return fmt.Errorf("%w: got %q", ErrSIWEDomain, m.Domain)
	}
	if chainID != 0 && m.ChainID != chainID {
		return fmt.Errorf("%w: got %d", ErrSIWEChain, m.ChainID)
	}
	if _, err := m.msg.ValidAt(now); err != nil {
		var expired *siwe.ExpiredMessage
		if errors.As(err, &expired) {
			return fmt.Errorf("%w: %v", ErrSIWEExpired, err)
		}
		return fmt.Errorf("%w: %v", ErrSIWENotYet, err)
	}
	return nil
}

// VerifySignature recovers the EIP-191 signer of raw and compares it with the
// message address. raw must be the exact text that was signed, scheme
// included. It returns the checksummed address.
func (m *SIWEMessage) VerifySignature(raw, signature string) (string, error) {
	recovered, err := VerifyEIP191Signature(raw, signature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSIWESignature, err)
	}
	if recovered.Hex() != m.Address {
		return "", ErrSIWESignature
	}
	return m.Address, nil
}

// GenerateNonce returns a random alphanumeric nonce of NonceLength characters.
func GenerateNonce() (string, error) {
	limit := big.NewInt(int64(len(nonceAlphabet)))
	out := make([]byte, NonceLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate nonce: %w", err)
		}
		out[i] = nonceAlphabet[n.Int64()]
	}
	return string(out), nil
}

// splitScheme removes an optional "scheme://" in front of the domain on the
// header line and returns the scheme with the remaining message.
func splitScheme(raw string) (string, string, error) {
	header, _, _ := strings.Cut(raw, "\n")
	if !strings.HasSuffix(header, siweHeaderSuffix) {
		return "", raw, nil
	}
	scheme, _, found := strings.Cut(strings.TrimSuffix(header, siweHeaderSuffix), "://")
	if !found {
		return "", raw, nil
	}
	if !validScheme(scheme) {
		return "", "", fmt.Errorf("%w: invalid scheme %q", ErrSIWEMalformed, scheme)
	}
	return scheme, strings.TrimPrefix(raw, scheme+"://"), nil
}

// validScheme follows RFC 3986: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func validScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

func addressLine(body string) string {
	_, rest, _ := strings.Cut(body, "\n")
	line, _, _ := strings.Cut(rest, "\n")
	return line
}
