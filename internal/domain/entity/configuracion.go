package entity

// Configuracion is the singleton site configuration. It is assembled from a
// key/value table and falls back to DefaultConfiguracion when the backing
// table is absent, so a half-provisioned database never breaks public pages.
type Configuracion struct {
	NombreSitio  string
	LogoURL      *string
	FooterTexto1 string
	FooterTexto2 string
	FooterTexto3 string
	FooterTexto4 string

	// PorcentajeComision is the commission percentage (1-100) applied to the
	// tattoo value of every charged coupon at computation time.
	PorcentajeComision int
}

// DefaultConfiguracion returns the hardcoded fallback configuration used when
// no configuration rows exist yet.
func DefaultConfiguracion() *Configuracion {
	return &Configuracion{
		NombreSitio:        "Sistema de Referidos",
		FooterTexto1:       "© 2025 Sistema de Referidos",
		FooterTexto2:       "Versión: 1.7",
		FooterTexto3:       "Por: Daz The Line",
		FooterTexto4:       "Ver detalles: www.daz.cl",
		PorcentajeComision: 10,
	}
}
