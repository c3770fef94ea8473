package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vientosur/eolico-api/internal/domain"
)

// Caso: cada sentinel de dominio sale con su código HTTP; en particular una
// cuota ya pagada (o inexistente) responde 404, no conflicto.
func TestResponderError_Mapeo(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		status int
	}{
		{"validacion", domain.ErrInvalidInput, http.StatusBadRequest},
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound},
		{"duplicado", domain.ErrDuplicate, http.StatusConflict},
		{"cuenta bloqueada", domain.ErrCuentaBloqueada, http.StatusLocked},
		{"sin alquiler activo", domain.ErrSinAlquilerActivo, http.StatusNotFound},
		{"plan existente", domain.ErrPlanExistente, http.StatusConflict},
		{"cuota pagada", domain.ErrCuotaPagada, http.StatusNotFound},
		{"desconocido", assert.AnError, http.StatusInternalServerError},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(ctx *fiber.Ctx) error {
				return responderError(ctx, c.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, c.status, resp.StatusCode)
		})
	}
}
