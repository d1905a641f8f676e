package impl

import (
	"io"
	"log/slog"

	"referidos/config"
	"referidos/internal/domain/entity"
	"referidos/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAdminConfig(email, passwordHash string) *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			Email:        email,
			PasswordHash: passwordHash,
		},
	}
}

func validSocioInput() usecase.SocioInput {
	return usecase.SocioInput{
		NombreLocal:     "Barbería Central",
		Direccion:       "Av. Siempre Viva 742",
		NombreEncargado: "Camila Rojas",
		Telefono:        "+56 9 1234 5678",
		Instagram:       "barberiacentral",
		Email:           "contacto@barberiacentral.cl",
		TitularCuenta:   "Camila Rojas",
		RUT:             "12345678-5",
		Banco:           "Banco Estado",
		TipoCuenta:      "Cuenta RUT",
		NumeroCuenta:    "123456789",
	}
}

func activeSocio() *entity.Socio {
	return &entity.Socio{
		ID:              uuid.New(),
		Codigo:          "AB12CD",
		PIN:             "123456",
		NombreLocal:     "Barbería Central",
		NombreEncargado: "Camila Rojas",
		Telefono:        "+56 9 1234 5678",
		Instagram:       "@barberiacentral",
		Email:           "contacto@barberiacentral.cl",
		TitularCuenta:   "Camila Rojas",
		RUT:             "12.345.678-5",
		Banco:           "Banco Estado",
		TipoCuenta:      "Cuenta RUT",
		NumeroCuenta:    "123456789",
		Activo:          true,
		Aprobado:        true,
	}
}
