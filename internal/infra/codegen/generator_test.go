package codegen

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	mockRepo "referidos/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGeneratorForTest(t *testing.T) (*generator, *mockRepo.MockSocioRepository) {
	socioRepo := mockRepo.NewMockSocioRepository(t)
	gen := &generator{
		socioRepo: socioRepo,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return gen, socioRepo
}

func TestGenerator_GeneratePartnerCode_Format(t *testing.T) {
	gen, socioRepo := newGeneratorForTest(t)
	ctx := context.Background()

	socioRepo.EXPECT().ExistsCodigo(ctx, mock.AnythingOfType("string")).Return(false, nil)

	code, err := gen.GeneratePartnerCode(ctx)
	require.NoError(t, err)
	assert.Len(t, code, partnerCodeLength)
	for _, r := range code {
		assert.Contains(t, partnerCodeCharset, string(r))
	}
}

func TestGenerator_GeneratePartnerCode_RetriesOnCollision(t *testing.T) {
	gen, socioRepo := newGeneratorForTest(t)
	ctx := context.Background()

	socioRepo.EXPECT().ExistsCodigo(ctx, mock.AnythingOfType("string")).Return(true, nil).Once()
	socioRepo.EXPECT().ExistsCodigo(ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

	code, err := gen.GeneratePartnerCode(ctx)
	require.NoError(t, err)
	assert.Len(t, code, partnerCodeLength)
}

func TestGenerator_GeneratePartnerCode_LookupFailureReturnsCandidate(t *testing.T) {
	gen, socioRepo := newGeneratorForTest(t)
	ctx := context.Background()

	socioRepo.EXPECT().
		ExistsCodigo(ctx, mock.AnythingOfType("string")).
		Return(false, errors.New("relation does not exist")).
		Once()

	code, err := gen.GeneratePartnerCode(ctx)
	require.NoError(t, err)
	assert.Len(t, code, partnerCodeLength)
}

func TestGenerator_GeneratePIN_Bounds(t *testing.T) {
	gen, _ := newGeneratorForTest(t)

	for i := 0; i < 200; i++ {
		pin := gen.GeneratePIN()
		require.Len(t, pin, 6)

		n, err := strconv.Atoi(pin)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerator_GenerateCouponCode_Format(t *testing.T) {
	gen, _ := newGeneratorForTest(t)

	code := gen.GenerateCouponCode()
	assert.Regexp(t, `^CPN-[A-Z0-9]{4}-[a-z0-9]{4}$`, code)
}
