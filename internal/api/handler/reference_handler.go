package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/cezeus/club-api/internal/core/domain"
)

// Registration form reference lists. Health providers are the Colombian EPS
// entities; document types follow the national ID scheme.
var (
	healthProviders = []string{
		"Sura", "Sanitas", "Salud Total", "Nueva EPS", "Compensar",
		"Coosalud", "Mutual Ser", "Famisanar", "Aliansalud", "Ecopetrol",
		"Capresoca", "Capital Salud", "Cajacopi", "Asmet Salud", "Emsanar",
		"Pijaos Salud", "Saviasalud", "Ferrocarriles Nacionales", "Especial",
	}

	documentTypes = []string{
		"Tarjeta de Identidad", "Registros Civil", "Cedula de Ciudadania",
		"Cedula de Extranjeria", "PEP",
	}

	bloodGroups = []string{"O", "A", "B", "AB"}
	rhFactors   = []string{"+", "-"}

	relationships = []string{
		"Padre", "Madre", "Tío", "Tía", "Abuelo", "Abuela",
		"Hermano/a", "Tutor Legal", "Otro",
	}
)

type categoryBandResponse struct {
	Label  string `json:"label"`
	MinAge int    `json:"min_age"`
	MaxAge int    `json:"max_age"` // -1 = open-ended
}

type referenceDataResponse struct {
	HealthProviders []string               `json:"health_providers"`
	DocumentTypes   []string               `json:"document_types"`
	BloodGroups     []string               `json:"blood_groups"`
	RHFactors       []string               `json:"rh_factors"`
	Relationships   []string               `json:"relationships"`
	Categories      []categoryBandResponse `json:"categories"`
	Roles           []string               `json:"roles"`
}

// ReferenceHandler serves the static lists the registration form renders.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// Get handles GET /v1/reference-data.
//
// @Summary      Registration form reference lists
// @Tags         reference
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  referenceDataResponse
// @Router       /v1/reference-data [get]
func (h *ReferenceHandler) Get(c echo.Context) error {
	providers := make([]string, len(healthProviders))
	copy(providers, healthProviders)
	sort.Strings(providers)

	bands := domain.CategoryBands()
	categories := make([]categoryBandResponse, len(bands))
	for i, b := range bands {
		categories[i] = categoryBandResponse{
			Label:  string(b.Label),
			MinAge: b.MinAge,
			MaxAge: b.MaxAge,
		}
	}

	roles := domain.KnownRoles()
	roleNames := make([]string, len(roles))
	for i, r := range roles {
		roleNames[i] = string(r)
	}

	return c.JSON(http.StatusOK, referenceDataResponse{
		HealthProviders: providers,
		DocumentTypes:   documentTypes,
		BloodGroups:     bloodGroups,
		RHFactors:       rhFactors,
		Relationships:   relationships,
		Categories:      categories,
		Roles:           roleNames,
	})
}
