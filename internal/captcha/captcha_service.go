package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Verifier gates public-write endpoints. A false result never distinguishes
// a bad token from a transport failure: both must reject the request.
type Verifier interface {
	Verify(ctx context.Context, token, action string) bool
}

type recaptchaVerifier struct {
	secret   string
	endpoint string
	minScore float64
	client   *http.Client
	logger   *zap.Logger
}

const defaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

func NewRecaptchaVerifierFromEnv(logger *zap.Logger) (Verifier, error) {
	secret := strings.TrimSpace(os.Getenv("RECAPTCHA_SECRET_KEY"))
	if secret == "" {
		return nil, fmt.Errorf("RECAPTCHA_SECRET_KEY is not configured")
	}

	minScore := 0.5
	if raw := os.Getenv("RECAPTCHA_MIN_SCORE"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			minScore = parsed
		}
	}

	return NewRecaptchaVerifier(secret, defaultEndpoint, minScore, logger), nil
}

func NewRecaptchaVerifier(secret, endpoint string, minScore float64, logger *zap.Logger) Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recaptchaVerifier{
		secret:   secret,
		endpoint: endpoint,
		minScore: minScore,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger.Named("captcha"),
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *recaptchaVerifier) Verify(ctx context.Context, token, action string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		v.logger.Warn("failed to build siteverify request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Warn("siteverify request failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.logger.Warn("siteverify returned non-200", zap.Int("status", resp.StatusCode))
		return false
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		v.logger.Warn("failed to decode siteverify response", zap.Error(err))
		return false
	}

	if !body.Success {
		v.logger.Info("captcha rejected", zap.Strings("error_codes", body.ErrorCodes))
		return false
	}
	if body.Action != "" && action != "" && body.Action != action {
		v.logger.Info("captcha action mismatch",
			zap.String("expected", action),
			zap.String("got", body.Action),
		)
		return false
	}
	if body.Score < v.minScore {
		v.logger.Info("captcha score below threshold", zap.Float64("score", body.Score))
		return false
	}

	return true
}

type noopVerifier struct{}

// NewNoopVerifier accepts every token. Local development only.
func NewNoopVerifier() Verifier {
	return &noopVerifier{}
}

func (noopVerifier) Verify(context.Context, string, string) bool {
	return true
}
