package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"referidos/config"
	deliverycontext "referidos/internal/delivery/context"
	"referidos/internal/domain/entity"
	domainerrors "referidos/internal/domain/errors"
	"referidos/internal/domain/repository"
	"referidos/internal/domain/service"
	"referidos/internal/usecase"
	"referidos/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type socioService struct {
	socioRepo repository.SocioRepository
	codeGen   service.CodeGenerator
	mailer    service.Mailer
	storage   service.FileStorage
	validate  *validator.Validate
	config    *config.Config
	logger    *slog.Logger
}

// SocioServiceParams holds dependencies for SocioService, injected by Fx.
type SocioServiceParams struct {
	fx.In

	SocioRepo repository.SocioRepository
	CodeGen   service.CodeGenerator
	Mailer    service.Mailer
	Storage   service.FileStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSocioService creates a new partner directory service instance
func NewSocioService(params SocioServiceParams) usecase.SocioUsecase {
	return &socioService{
		socioRepo: params.SocioRepo,
		codeGen:   params.CodeGen,
		mailer:    params.Mailer,
		storage:   params.Storage,
		validate:  validator.New(),
		config:    params.Config,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *socioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateSocioInput checks every field and collects all violations into a
// single ValidationError so the form can highlight everything at once.
func (srv *socioService) validateSocioInput(input usecase.SocioInput) *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()

	if strings.TrimSpace(input.NombreLocal) == "" {
		verr.Add("nombre_local", "El nombre del local es obligatorio")
	}
	if strings.TrimSpace(input.NombreEncargado) == "" {
		verr.Add("nombre_encargado", "El nombre del encargado es obligatorio")
	}
	if !util.IsValidChileanPhone(input.Telefono) {
		verr.Add("telefono", "El teléfono debe ser un celular chileno válido")
	}
	if err := srv.validate.Var(input.Email, "required,email"); err != nil {
		verr.Add("email", "El email no es válido")
	}
	if strings.TrimSpace(input.TitularCuenta) == "" {
		verr.Add("titular_cuenta", "El titular de la cuenta es obligatorio")
	}
	if !util.IsValidRut(input.RUT) {
		verr.Add("rut", "El RUT no es válido")
	}
	if !util.IsValidBanco(input.Banco) {
		verr.Add("banco", "El banco no está en la lista de bancos aceptados")
	}
	if !util.IsValidTipoCuenta(input.TipoCuenta) {
		verr.Add("tipo_cuenta", "El tipo de cuenta no es válido")
	}
	if strings.TrimSpace(input.NumeroCuenta) == "" {
		verr.Add("numero_cuenta", "El número de cuenta es obligatorio")
	}

	return verr
}

// applySocioInput copies the normalized input onto the entity.
func applySocioInput(socio *entity.Socio, input usecase.SocioInput) {
	socio.NombreLocal = strings.TrimSpace(input.NombreLocal)
	socio.Direccion = strings.TrimSpace(input.Direccion)
	socio.NombreEncargado = strings.TrimSpace(input.NombreEncargado)
	socio.Telefono = strings.TrimSpace(input.Telefono)
	socio.Instagram = util.FormatInstagram(input.Instagram)
	socio.Email = strings.TrimSpace(input.Email)
	socio.TitularCuenta = strings.TrimSpace(input.TitularCuenta)
	socio.RUT = util.FormatRut(input.RUT)
	socio.Banco = input.Banco
	socio.TipoCuenta = input.TipoCuenta
	socio.NumeroCuenta = strings.TrimSpace(input.NumeroCuenta)

	if link := strings.TrimSpace(input.Link); link != "" {
		socio.Link = &link
	} else {
		socio.Link = nil
	}
}

func (srv *socioService) newSocio(ctx context.Context, input usecase.SocioInput, activo, aprobado bool) (*usecase.CreateSocioOutput, error) {
	if verr := srv.validateSocioInput(input); verr.HasViolations() {
		return nil, verr
	}

	codigo, err := srv.codeGen.GeneratePartnerCode(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate partner code")
	}
	pin := srv.codeGen.GeneratePIN()

	socio := &entity.Socio{
		ID:       uuid.New(),
		Codigo:   codigo,
		PIN:      pin,
		Activo:   activo,
		Aprobado: aprobado,
	}
	applySocioInput(socio, input)

	if err := srv.socioRepo.Create(ctx, socio); err != nil {
		return nil, errors.Wrap(err, "failed to create socio")
	}

	return &usecase.CreateSocioOutput{Socio: socio, PIN: pin}, nil
}

// CreateSocio registers a partner from the admin panel.
func (srv *socioService) CreateSocio(ctx context.Context, input usecase.CreateSocioInput) (*usecase.CreateSocioOutput, error) {
	activo, aprobado := true, true
	if input.Activo != nil {
		activo = *input.Activo
	}
	if input.Aprobado != nil {
		aprobado = *input.Aprobado
	}

	out, err := srv.newSocio(ctx, input.SocioInput, activo, aprobado)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("socio created", "socioID", out.Socio.ID, "codigo", out.Socio.Codigo)

	return out, nil
}

// RegisterSocio registers a partner from the public form. The partner starts
// unapproved and inactive until an admin reviews it.
func (srv *socioService) RegisterSocio(ctx context.Context, input usecase.SocioInput) (*usecase.CreateSocioOutput, error) {
	out, err := srv.newSocio(ctx, input, false, false)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("socio registered", "socioID", out.Socio.ID)
	srv.sendMail(ctx, out.Socio, service.MailTemplateRegistro)

	return out, nil
}

func (srv *socioService) GetSocio(ctx context.Context, id uuid.UUID) (*entity.Socio, error) {
	socio, err := srv.socioRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSocioNotFound) {
			return nil, domainerrors.ErrSocioNotFound
		}

		return nil, errors.Wrap(err, "failed to find socio by id")
	}

	return socio, nil
}

func (srv *socioService) GetSocioByCodigo(ctx context.Context, codigo string) (*entity.Socio, error) {
	socio, err := srv.socioRepo.FindByCodigo(ctx, strings.ToUpper(strings.TrimSpace(codigo)))
	if err != nil {
		if errors.Is(err, repository.ErrSocioNotFound) {
			return nil, domainerrors.ErrSocioNotFound
		}

		return nil, errors.Wrap(err, "failed to find socio by codigo")
	}

	return socio, nil
}

// ListSocios returns matching partners. A read failure (including a missing
// table on a fresh database) degrades to an empty list so listing screens
// keep rendering.
func (srv *socioService) ListSocios(ctx context.Context, input usecase.ListSociosInput) ([]*entity.Socio, error) {
	socios, err := srv.socioRepo.List(ctx, repository.SocioFilter{
		Activo:   input.Activo,
		Aprobado: input.Aprobado,
	})
	if err != nil {
		srv.log(ctx).Warn("socio list degraded to empty", "error", err)

		return []*entity.Socio{}, nil
	}

	return socios, nil
}

func (srv *socioService) UpdateSocio(ctx context.Context, id uuid.UUID, input usecase.UpdateSocioInput) (*entity.Socio, error) {
	socio, err := srv.GetSocio(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := usecase.SocioInput{
		NombreLocal:     socio.NombreLocal,
		Direccion:       socio.Direccion,
		NombreEncargado: socio.NombreEncargado,
		Telefono:        socio.Telefono,
		Instagram:       socio.Instagram,
		Email:           socio.Email,
		TitularCuenta:   socio.TitularCuenta,
		RUT:             socio.RUT,
		Banco:           socio.Banco,
		TipoCuenta:      socio.TipoCuenta,
		NumeroCuenta:    socio.NumeroCuenta,
	}
	if socio.Link != nil {
		merged.Link = *socio.Link
	}

	applyPatch(&merged.NombreLocal, input.NombreLocal)
	applyPatch(&merged.Direccion, input.Direccion)
	applyPatch(&merged.NombreEncargado, input.NombreEncargado)
	applyPatch(&merged.Telefono, input.Telefono)
	applyPatch(&merged.Instagram, input.Instagram)
	applyPatch(&merged.Email, input.Email)
	applyPatch(&merged.Link, input.Link)
	applyPatch(&merged.TitularCuenta, input.TitularCuenta)
	applyPatch(&merged.RUT, input.RUT)
	applyPatch(&merged.Banco, input.Banco)
	applyPatch(&merged.TipoCuenta, input.TipoCuenta)
	applyPatch(&merged.NumeroCuenta, input.NumeroCuenta)

	if verr := srv.validateSocioInput(merged); verr.HasViolations() {
		return nil, verr
	}

	applySocioInput(socio, merged)

	if err := srv.socioRepo.Update(ctx, socio); err != nil {
		return nil, errors.Wrap(err, "failed to update socio")
	}

	return socio, nil
}

// DeleteSocio removes the partner permanently.
func (srv *socioService) DeleteSocio(ctx context.Context, id uuid.UUID) error {
	if err := srv.socioRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSocioNotFound) {
			return domainerrors.ErrSocioNotFound
		}

		return errors.Wrap(err, "failed to delete socio")
	}

	srv.log(ctx).Info("socio deleted", "socioID", id)

	return nil
}

// SetAprobado writes the approval flag idempotently. The approval email goes
// out only when the flag flips from false to true, after the write has been
// persisted; a send failure is logged and never rolls the write back.
func (srv *socioService) SetAprobado(ctx context.Context, id uuid.UUID, aprobado bool) (*entity.Socio, error) {
	socio, err := srv.GetSocio(ctx, id)
	if err != nil {
		return nil, err
	}

	notify := aprobado && !socio.Aprobado
	socio.Aprobado = aprobado

	if err := srv.socioRepo.Update(ctx, socio); err != nil {
		return nil, errors.Wrap(err, "failed to update socio aprobado")
	}

	if notify {
		srv.sendMail(ctx, socio, service.MailTemplateAprobacion)
	}

	return socio, nil
}

// SetActivo writes the activation flag idempotently, with the same
// edge-triggered notification policy as SetAprobado.
func (srv *socioService) SetActivo(ctx context.Context, id uuid.UUID, activo bool) (*entity.Socio, error) {
	socio, err := srv.GetSocio(ctx, id)
	if err != nil {
		return nil, err
	}

	notify := activo && !socio.Activo
	socio.Activo = activo

	if err := srv.socioRepo.Update(ctx, socio); err != nil {
		return nil, errors.Wrap(err, "failed to update socio activo")
	}

	if notify {
		srv.sendMail(ctx, socio, service.MailTemplateActivacion)
	}

	return socio, nil
}

// RegenerateCredenciales assigns a fresh codigo and PIN to the partner.
func (srv *socioService) RegenerateCredenciales(ctx context.Context, id uuid.UUID) (*usecase.CreateSocioOutput, error) {
	socio, err := srv.GetSocio(ctx, id)
	if err != nil {
		return nil, err
	}

	codigo, err := srv.codeGen.GeneratePartnerCode(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate partner code")
	}
	pin := srv.codeGen.GeneratePIN()

	socio.Codigo = codigo
	socio.PIN = pin

	if err := srv.socioRepo.Update(ctx, socio); err != nil {
		return nil, errors.Wrap(err, "failed to update socio credentials")
	}

	srv.log(ctx).Info("socio credentials regenerated", "socioID", id)

	return &usecase.CreateSocioOutput{Socio: socio, PIN: pin}, nil
}

// UploadLogo stores the image in the blob store and records its URL.
func (srv *socioService) UploadLogo(ctx context.Context, id uuid.UUID, contentType string, data []byte) (*entity.Socio, error) {
	socio, err := srv.GetSocio(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("logos/socios/%s%s", socio.ID, extensionFor(contentType))
	url, err := srv.storage.Save(ctx, key, contentType, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store socio logo")
	}

	socio.LogoURL = &url
	if err := srv.socioRepo.Update(ctx, socio); err != nil {
		return nil, errors.Wrap(err, "failed to update socio logo url")
	}

	return socio, nil
}

// sendMail dispatches a lifecycle notification best-effort. Failures are
// logged, never propagated: a mail outage must not block partner management.
func (srv *socioService) sendMail(ctx context.Context, socio *entity.Socio, template string) {
	vars := map[string]string{
		"nombre_local":     socio.NombreLocal,
		"nombre_encargado": socio.NombreEncargado,
		"codigo":           socio.Codigo,
	}

	if err := srv.mailer.Send(ctx, socio.Email, template, vars); err != nil {
		srv.log(ctx).Error("failed to send socio email", "template", template, "socioID", socio.ID, "error", err)
	}
}

func applyPatch(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
