package assignment

import (
	"context"

	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la secuencia de
// asignación: cualquier error del callback revierte todos los pasos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		eolicoRepo repository.EolicoRepository,
		alquilerRepo repository.AlquilerRepository,
	) error) error
}
