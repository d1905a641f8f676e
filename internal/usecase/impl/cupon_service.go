package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "referidos/internal/delivery/context"
	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/domain/service"
	"referidos/internal/usecase"
	"referidos/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cuponService struct {
	cuponRepo   repository.CuponRepository
	socioRepo   repository.SocioRepository
	artistaRepo repository.ArtistaRepository
	txManager   repository.TransactionManager
	codeGen     service.CodeGenerator
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// CuponServiceParams holds dependencies for CuponService, injected by Fx.
type CuponServiceParams struct {
	fx.In

	CuponRepo   repository.CuponRepository
	SocioRepo   repository.SocioRepository
	ArtistaRepo repository.ArtistaRepository
	TxManager   repository.TransactionManager
	CodeGen     service.CodeGenerator
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewCuponService creates a new coupon lifecycle service instance
func NewCuponService(params CuponServiceParams) usecase.CuponUsecase {
	return &cuponService{
		cuponRepo:   params.CuponRepo,
		socioRepo:   params.SocioRepo,
		artistaRepo: params.ArtistaRepo,
		txManager:   params.TxManager,
		codeGen:     params.CodeGen,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *cuponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCupon is the only coupon creation path: a customer redeems a partner
// code on the public page. The partner must exist and be both active and
// approved; anything else is rejected with the same eligibility error.
func (srv *cuponService) CreateCupon(ctx context.Context, input usecase.CreateCuponInput) (*entity.Cupon, error) {
	verr := domainerrors.NewValidationError()
	if strings.TrimSpace(input.ClienteNombre) == "" {
		verr.Add("cliente_nombre", "El nombre es obligatorio")
	}
	if !util.IsValidChileanPhone(input.ClienteWhatsapp) {
		verr.Add("cliente_whatsapp", "El WhatsApp debe ser un celular chileno válido")
	}
	if verr.HasViolations() {
		return nil, verr
	}

	socio, err := srv.socioRepo.FindByCodigo(ctx, strings.ToUpper(strings.TrimSpace(input.CodigoSocio)))
	if err != nil {
		if errors.Is(err, repository.ErrSocioNotFound) {
			return nil, domainerrors.ErrSocioNotEligible
		}

		return nil, errors.Wrap(err, "failed to find socio by codigo")
	}
	if !socio.PuedeEmitirCupones() {
		return nil, domainerrors.ErrSocioNotEligible
	}

	cupon := &entity.Cupon{
		ID:               uuid.New(),
		Codigo:           srv.codeGen.GenerateCouponCode(),
		SocioID:          socio.ID,
		ClienteNombre:    strings.TrimSpace(input.ClienteNombre),
		ClienteWhatsapp:  strings.TrimSpace(input.ClienteWhatsapp),
		ClienteInstagram: util.FormatInstagram(input.ClienteInstagram),
		Estado:           entity.EstadoDescargado,
		FechaDescarga:    time.Now(),
	}

	if err := srv.cuponRepo.Create(ctx, cupon); err != nil {
		return nil, errors.Wrap(err, "failed to create cupon")
	}

	srv.log(ctx).Info("cupon created", "cuponID", cupon.ID, "socioID", socio.ID)

	return cupon, nil
}

func (srv *cuponService) GetCupon(ctx context.Context, id uuid.UUID) (*entity.Cupon, error) {
	cupon, err := srv.cuponRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCuponNotFound) {
			return nil, domainerrors.ErrCuponNotFound
		}

		return nil, errors.Wrap(err, "failed to find cupon by id")
	}

	return cupon, nil
}

// ListCupones returns matching coupons, degrading to an empty list on read
// failure so listing screens keep rendering.
func (srv *cuponService) ListCupones(ctx context.Context, input usecase.ListCuponesInput) ([]*entity.Cupon, error) {
	cupones, err := srv.cuponRepo.List(ctx, repository.CuponFilter{
		Estado:    input.Estado,
		SocioID:   input.SocioID,
		ArtistaID: input.ArtistaID,
	})
	if err != nil {
		srv.log(ctx).Warn("cupon list degraded to empty", "error", err)

		return []*entity.Cupon{}, nil
	}

	return cupones, nil
}

func (srv *cuponService) ListCuponesSocio(ctx context.Context, socioID uuid.UUID) ([]*entity.Cupon, error) {
	cupones, err := srv.cuponRepo.ListBySocio(ctx, socioID)
	if err != nil {
		srv.log(ctx).Warn("cupon list degraded to empty", "socioID", socioID, "error", err)

		return []*entity.Cupon{}, nil
	}

	return cupones, nil
}

// CambiarEstado moves a coupon to the target state, applying the per-state
// field patch in a single transactional update. Transitions may go in any
// direction; moving backwards clears the data of the stages left behind.
func (srv *cuponService) CambiarEstado(ctx context.Context, id uuid.UUID, input usecase.CambiarEstadoInput) (*entity.Cupon, error) {
	if !input.Estado.Valid() {
		return nil, domainerrors.NewValidationError().Add("estado", "Estado de cupón desconocido")
	}

	var updated *entity.Cupon
	err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		cuponRepo := txRepo.NewCuponRepository()

		cupon, err := cuponRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCuponNotFound) {
				return domainerrors.ErrCuponNotFound
			}

			return errors.Wrap(err, "failed to find cupon by id")
		}

		switch input.Estado {
		case entity.EstadoDescargado:
			cupon.Estado = entity.EstadoDescargado
			cupon.FechaAgendado = nil
			cupon.FechaCobrado = nil
			cupon.ArtistaID = nil
			cupon.ValorTatuaje = nil

		case entity.EstadoAgendado:
			if err := srv.requireArtista(ctx, txRepo, input.ArtistaID); err != nil {
				return err
			}
			now := time.Now()
			cupon.Estado = entity.EstadoAgendado
			cupon.FechaAgendado = &now
			cupon.FechaCobrado = nil
			cupon.ArtistaID = input.ArtistaID
			cupon.ValorTatuaje = nil

		case entity.EstadoCobrado:
			if err := srv.requireArtista(ctx, txRepo, input.ArtistaID); err != nil {
				return err
			}
			if input.ValorTatuaje == nil || *input.ValorTatuaje <= 0 {
				return domainerrors.NewValidationError().Add("valor_tatuaje", "El valor del tatuaje debe ser mayor a cero")
			}
			now := time.Now()
			cupon.Estado = entity.EstadoCobrado
			cupon.FechaCobrado = &now
			cupon.ArtistaID = input.ArtistaID
			cupon.ValorTatuaje = input.ValorTatuaje
		}

		if err := cuponRepo.Update(ctx, cupon); err != nil {
			return errors.Wrap(err, "failed to update cupon")
		}

		updated = cupon

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("cupon estado changed", "cuponID", id, "estado", input.Estado)

	return updated, nil
}

// requireArtista checks that the target artist exists and is active.
func (srv *cuponService) requireArtista(ctx context.Context, txRepo repository.RepositoryFactory, artistaID *uuid.UUID) error {
	if artistaID == nil {
		return domainerrors.NewValidationError().Add("artista_id", "Debes seleccionar un artista")
	}

	artista, err := txRepo.NewArtistaRepository().FindByID(ctx, *artistaID)
	if err != nil {
		if errors.Is(err, repository.ErrArtistaNotFound) {
			return domainerrors.ErrArtistaNotFound
		}

		return errors.Wrap(err, "failed to find artista by id")
	}
	if !artista.Activo {
		return domainerrors.ErrArtistaInactive
	}

	return nil
}

// GenerateCuponQR renders the QR PNG pointing at the partner's public coupon
// page. The partner must exist but inactive partners still get their QR; the
// eligibility gate lives at redemption time.
func (srv *cuponService) GenerateCuponQR(ctx context.Context, codigoSocio string) ([]byte, error) {
	codigo := strings.ToUpper(strings.TrimSpace(codigoSocio))

	if _, err := srv.socioRepo.FindByCodigo(ctx, codigo); err != nil {
		if errors.Is(err, repository.ErrSocioNotFound) {
			return nil, domainerrors.ErrSocioNotFound
		}

		return nil, errors.Wrap(err, "failed to find socio by codigo")
	}

	png, err := srv.qrService.GenerateCouponQR(codigo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate coupon QR")
	}

	return png, nil
}
