// Package codegen implements the identifier generator: partner referral
// codes, partner PINs and coupon codes.
package codegen

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"referidos/internal/domain/repository"
	"referidos/internal/domain/service"

	"go.uber.org/fx"
)

const (
	partnerCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	partnerCodeLength  = 6

	// maxCodeAttempts bounds the uniqueness loop; with 36^6 candidates the
	// loop practically never needs more than one iteration.
	maxCodeAttempts = 10

	couponPrefix       = "CPN-"
	couponRandomLength = 4
	couponStampLength  = 4
)

type generator struct {
	socioRepo repository.SocioRepository
	logger    *slog.Logger
}

// GeneratorParams holds dependencies for the identifier generator, injected by Fx.
type GeneratorParams struct {
	fx.In

	SocioRepo repository.SocioRepository
	Logger    *slog.Logger
}

// NewGenerator creates the identifier generator.
func NewGenerator(params GeneratorParams) service.CodeGenerator {
	return &generator{
		socioRepo: params.SocioRepo,
		logger:    params.Logger,
	}
}

// GeneratePartnerCode samples 6-character [A-Z0-9] candidates until one is
// unused. When the uniqueness lookup itself fails, the last candidate is
// returned unchecked: partner creation stays available and the unique index
// on the column catches the rare write race.
func (g *generator) GeneratePartnerCode(ctx context.Context) (string, error) {
	var candidate string
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		candidate = randomString(partnerCodeCharset, partnerCodeLength)

		exists, err := g.socioRepo.ExistsCodigo(ctx, candidate)
		if err != nil {
			g.logger.Warn("partner code uniqueness check failed, returning unchecked candidate", "error", err)

			return candidate, nil
		}
		if !exists {
			return candidate, nil
		}
	}

	g.logger.Warn("partner code space unusually crowded, returning last candidate", "attempts", maxCodeAttempts)

	return candidate, nil
}

// GeneratePIN returns a uniform random 6-digit PIN. PINs are scoped per
// partner; collisions across partners are acceptable.
func (g *generator) GeneratePIN() string {
	return strconv.FormatInt(100000+randomInt(900000), 10)
}

// GenerateCouponCode joins the fixed prefix, 4 random base-36 uppercase
// characters and the last 4 lowercase base-36 digits of the current
// timestamp with hyphens. No uniqueness check: the timestamp suffix keeps
// the collision probability negligible under concurrent issuance.
func (g *generator) GenerateCouponCode() string {
	stamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	if len(stamp) > couponStampLength {
		stamp = stamp[len(stamp)-couponStampLength:]
	}

	return couponPrefix +
		randomString(partnerCodeCharset, couponRandomLength) +
		"-" + stamp
}

func randomString(charset string, length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(charset[randomInt(int64(len(charset)))])
	}

	return sb.String()
}

// randomInt returns a uniform random value in [0, max) from crypto/rand.
func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		panic(err)
	}

	return n.Int64()
}
