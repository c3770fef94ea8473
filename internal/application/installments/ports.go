package installments

import (
	"context"

	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el generador de planes. El check de plan
// duplicado y el insert del lote deben ser atómicos.
type TxRunner interface {
	RunInstallments(ctx context.Context, fn func(
		eolicoRepo repository.EolicoRepository,
		alquilerRepo repository.AlquilerRepository,
		cuotaRepo repository.CuotaRepository,
	) error) error
}
