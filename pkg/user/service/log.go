package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

const serviceName = "UserService"

const (
	logMessageMaxLen     = 50
	signatureDisplaySize = 16
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the user Service.
// It logs method entry/exit, duration, errors, and sanitized request/response data.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// IssueNonce wraps the service method with logging
func (ls *logService) IssueNonce(ctx context.Context) (resp *user.NonceResponse, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("IssueNonce failed",
				zap.String("service", serviceName),
				zap.String("method", "IssueNonce"),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.IssueNonce(ctx)
}

// SignIn wraps the service method with logging
func (ls *logService) SignIn(ctx context.Context, req *user.SignInRequest) (resp *user.SignInResult, err error) {
	start := time.Now()

	ls.logger.Info("SignIn started",
		zap.String("service", serviceName),
		zap.String("method", "SignIn"),
		zap.String("message", truncateString(req.Message, logMessageMaxLen)),
		zap.String("signature", redactSignature(req.Signature)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("SignIn failed",
				zap.String("service", serviceName),
				zap.String("method", "SignIn"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("SignIn completed",
				zap.String("service", serviceName),
				zap.String("method", "SignIn"),
				zap.String("user_id", resp.User.ID.String()),
				zap.String("wallet_address", shortAddress(resp.User.WalletAddress)),
				zap.Bool("new_user", resp.IsNewUser),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.SignIn(ctx, req)
}

// CompleteProfile wraps the service method with logging
func (ls *logService) CompleteProfile(
	ctx context.Context,
	u *user.User,
	req *user.CompleteProfileRequest,
) (resp *user.CompleteProfileResponse, err error) {
	start := time.Now()

	ls.logger.Info("CompleteProfile started",
		zap.String("service", serviceName),
		zap.String("method", "CompleteProfile"),
		zap.String("user_id", u.ID.String()),
		zap.String("country_code", req.CountryCode),
		zap.Bool("recompletion", u.IsProfileComplete),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("CompleteProfile failed",
				zap.String("service", serviceName),
				zap.String("method", "CompleteProfile"),
				zap.String("user_id", u.ID.String()),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("CompleteProfile completed",
				zap.String("service", serviceName),
				zap.String("method", "CompleteProfile"),
				zap.String("user_id", u.ID.String()),
				zap.Bool("eligible", resp.User.IsEligible),
				zap.Int("current_streak", resp.User.CurrentStreak),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.CompleteProfile(ctx, u, req)
}

// VerifyWorldID wraps the service method with logging
func (ls *logService) VerifyWorldID(
	ctx context.Context,
	u *user.User,
	req *user.VerifyWorldIDRequest,
) (resp *user.User, err error) {
	start := time.Now()

	ls.logger.Info("VerifyWorldID started",
		zap.String("service", serviceName),
		zap.String("method", "VerifyWorldID"),
		zap.String("user_id", u.ID.String()),
		zap.String("verification_level", req.VerificationLevel),
		zap.String("proof", redactSignature(req.Proof)),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("VerifyWorldID failed",
				zap.String("service", serviceName),
				zap.String("method", "VerifyWorldID"),
				zap.String("user_id", u.ID.String()),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("VerifyWorldID completed",
				zap.String("service", serviceName),
				zap.String("method", "VerifyWorldID"),
				zap.String("user_id", u.ID.String()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.VerifyWorldID(ctx, u, req)
}

// Helper functions for sensitive data redaction

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// redactSignature redacts signature data to show only metadata
func redactSignature(sig string) string {
	if sig == "" {
		return "<empty>"
	}
	sigLen := len(sig)
	if sigLen > signatureDisplaySize {
		return fmt.Sprintf("%s...%s (%d bytes)", sig[:8], sig[sigLen-4:], sigLen)
	}
	return fmt.Sprintf("<%d bytes>", sigLen)
}

// shortAddress keeps the first 6 and last 4 characters of a wallet address
func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
