package usecase

import (
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// EolicoUseCase registro de eólicos: listado admin y alta por código.
type EolicoUseCase struct {
	eolicoRepo repository.EolicoRepository
}

// NewEolicoUseCase construye el caso de uso.
func NewEolicoUseCase(eolicoRepo repository.EolicoRepository) *EolicoUseCase {
	return &EolicoUseCase{eolicoRepo: eolicoRepo}
}

// Listar devuelve todos los eólicos con los datos del usuario asignado.
func (uc *EolicoUseCase) Listar() ([]dto.EolicoResponse, error) {
	eolicos, err := uc.eolicoRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EolicoResponse, 0, len(eolicos))
	for _, e := range eolicos {
		out = append(out, dto.EolicoResponse{
			IDEolico:             e.ID,
			Codigo:               e.Codigo,
			Activo:               e.Activo,
			Habilitado:           e.Habilitado,
			UsuarioID:            e.UsuarioID,
			FechaCreacion:        e.FechaCreacion,
			TarifaMensual:        e.TarifaMensual,
			CostoInstalacion:     e.CostoInstalacion,
			Deposito:             e.Deposito,
			CostoOperativoDiario: e.CostoOperativoDiario,
			Nombres:              e.Nombres,
			PrimerApellido:       e.PrimerApellido,
			SegundoApellido:      e.SegundoApellido,
			Login:                e.Login,
		})
	}
	return out, nil
}

// Crear da de alta un eólico por código (normalizado a mayúsculas).
// ErrDuplicate si el código ya existe.
func (uc *EolicoUseCase) Crear(in dto.CrearEolicoRequest) (*dto.CrearEolicoResponse, error) {
	codigo := entity.NormalizarCodigo(in.Codigo)
	if !entity.CodigoValido(codigo) {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.eolicoRepo.Crear(&entity.Eolico{Codigo: codigo})
	if err != nil {
		return nil, err
	}
	return &dto.CrearEolicoResponse{IDEolico: id, Mensaje: "Eólico creado"}, nil
}
