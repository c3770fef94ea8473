package assignment

import (
	"context"
	"time"

	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// UseCase es el orquestador de asignaciones: transiciona la titularidad de un
// eólico de un usuario (o ninguno) a otro preservando el historial de
// alquileres y los invariantes de "un solo alquiler activo" por eólico y por
// usuario.
//
// Cada operación corre dentro de una sola transacción y arranca bloqueando la
// fila del eólico (SELECT ... FOR UPDATE), que serializa asignaciones
// concurrentes sobre el mismo equipo. Los índices únicos parciales sobre
// alquileres cubren la carrera restante entre equipos distintos del mismo
// usuario: esa violación llega como ErrDuplicate y la transacción se revierte.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el orquestador.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// AssignByEquipment asigna el eólico al usuario en forma atómica:
//  1. cierra el alquiler activo del eólico (si hay),
//  2. cierra el alquiler activo del usuario (si tiene otro equipo),
//  3. fija usuario_id y enciende activo+habilitado,
//  4. abre un alquiler nuevo con snapshot de costos del eólico.
func (uc *UseCase) AssignByEquipment(ctx context.Context, eolicoID, usuarioID int64) error {
	if eolicoID < 1 || usuarioID < 1 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(eolicoRepo repository.EolicoRepository, alquilerRepo repository.AlquilerRepository) error {
		return asignar(eolicoRepo, alquilerRepo, eolicoID, usuarioID)
	})
}

// AssignByCode resuelve el código (trim + mayúsculas) a un eólico y ejecuta
// la misma secuencia de asignación. ErrNotFound si el código no existe.
func (uc *UseCase) AssignByCode(ctx context.Context, codigo string, usuarioID int64) error {
	codigo = entity.NormalizarCodigo(codigo)
	if !entity.CodigoValido(codigo) || usuarioID < 1 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(eolicoRepo repository.EolicoRepository, alquilerRepo repository.AlquilerRepository) error {
		// Resolver dentro de la tx para que el lock posterior vea la misma fila.
		e, err := eolicoRepo.GetByCodigo(codigo)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrNotFound
		}
		return asignar(eolicoRepo, alquilerRepo, e.ID, usuarioID)
	})
}

// asignar es la secuencia compartida; asume que corre dentro de una tx.
func asignar(eolicoRepo repository.EolicoRepository, alquilerRepo repository.AlquilerRepository, eolicoID, usuarioID int64) error {
	e, err := eolicoRepo.GetByIDForUpdate(eolicoID)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}

	ahora := time.Now()
	if _, err := alquilerRepo.CerrarActivoPorEolico(eolicoID, ahora); err != nil {
		return err
	}
	if _, err := alquilerRepo.CerrarActivoPorUsuario(usuarioID, ahora); err != nil {
		return err
	}
	if err := eolicoRepo.Asignar(eolicoID, usuarioID); err != nil {
		return err
	}
	_, err = alquilerRepo.Crear(&entity.Alquiler{
		EolicoID:         eolicoID,
		UsuarioID:        usuarioID,
		Estado:           entity.AlquilerActivo,
		FechaInicio:      ahora,
		TarifaMensual:    e.TarifaMensual,
		CostoInstalacion: e.CostoInstalacion,
		Deposito:         e.Deposito,
	})
	return err
}

// Unassign quita el usuario, apaga activo+habilitado y cierra el alquiler
// activo. Re-invocarla sobre un eólico ya desasignado no cierra nada pero
// tampoco falla.
func (uc *UseCase) Unassign(ctx context.Context, eolicoID int64) error {
	if eolicoID < 1 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(eolicoRepo repository.EolicoRepository, alquilerRepo repository.AlquilerRepository) error {
		e, err := eolicoRepo.GetByIDForUpdate(eolicoID)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrNotFound
		}
		if err := eolicoRepo.Desasignar(eolicoID); err != nil {
			return err
		}
		_, err = alquilerRepo.CerrarActivoPorEolico(eolicoID, time.Now())
		return err
	})
}

// ToggleActive enciende o apaga el eólico. Exige usuario asignado: un eólico
// sin usuario con activo=true violaría el invariante de Eolico.
func (uc *UseCase) ToggleActive(ctx context.Context, eolicoID int64, activo bool) error {
	if eolicoID < 1 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(eolicoRepo repository.EolicoRepository, _ repository.AlquilerRepository) error {
		e, err := eolicoRepo.GetByIDForUpdate(eolicoID)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrNotFound
		}
		if !e.Asignado() {
			return domain.ErrSinUsuarioAsignado
		}
		return eolicoRepo.SetActivo(eolicoID, activo)
	})
}

// UpdateCosts actualiza los cuatro campos de costo del eólico. Cuando
// aplicarAlAlquiler es true copia tarifa/instalación/depósito al snapshot del
// alquiler activo; si no hay alquiler activo devuelve una nota de éxito
// parcial en lugar de un error.
func (uc *UseCase) UpdateCosts(ctx context.Context, eolicoID int64, costos entity.CostosEolico, aplicarAlAlquiler bool) (nota string, err error) {
	if eolicoID < 1 {
		return "", domain.ErrInvalidInput
	}
	err = uc.txRunner.Run(ctx, func(eolicoRepo repository.EolicoRepository, alquilerRepo repository.AlquilerRepository) error {
		e, err := eolicoRepo.GetByIDForUpdate(eolicoID)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrNotFound
		}
		if err := eolicoRepo.ActualizarCostos(eolicoID, costos); err != nil {
			return err
		}
		if !aplicarAlAlquiler {
			return nil
		}
		alq, err := alquilerRepo.GetActivoPorEolico(eolicoID)
		if err != nil {
			return err
		}
		if alq == nil {
			nota = "costos actualizados; el eólico no tiene alquiler activo"
			return nil
		}
		return alquilerRepo.ActualizarCostos(alq.ID, costos.TarifaMensual, costos.CostoInstalacion, costos.Deposito)
	})
	if err != nil {
		return "", err
	}
	return nota, nil
}
