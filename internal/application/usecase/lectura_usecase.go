package usecase

import (
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// Límites de los listados de lecturas.
const (
	limiteResumen = 100
	limiteAlertas = 10
)

// LecturaUseCase dashboards de sensores: resumen y alertas, con alcance por
// rol (un usuario solo ve sus propias lecturas; un administrador ve todas o
// filtra por usuario).
type LecturaUseCase struct {
	lecturaRepo repository.LecturaRepository
}

// NewLecturaUseCase construye el caso de uso.
func NewLecturaUseCase(lecturaRepo repository.LecturaRepository) *LecturaUseCase {
	return &LecturaUseCase{lecturaRepo: lecturaRepo}
}

// Resumen devuelve las últimas lecturas según el rol de la sesión.
func (uc *LecturaUseCase) Resumen(cuentaID int64, rol string, filtroUsuarioID int64) ([]dto.LecturaResponse, error) {
	var (
		lecturas []*entity.LecturaResumen
		err      error
	)
	switch {
	case rol != entity.RolAdministrador:
		lecturas, err = uc.lecturaRepo.ListarPorCuenta(cuentaID, limiteResumen)
	case filtroUsuarioID > 0:
		lecturas, err = uc.lecturaRepo.ListarPorUsuario(filtroUsuarioID, limiteResumen)
	default:
		lecturas, err = uc.lecturaRepo.ListarTodas(limiteResumen)
	}
	if err != nil {
		return nil, err
	}
	return aLecturaDTO(lecturas), nil
}

// Alertas devuelve las últimas lecturas fuera de umbral (batería < 20%,
// voltaje < 10V) según el rol de la sesión.
func (uc *LecturaUseCase) Alertas(cuentaID int64, rol string) ([]dto.LecturaResponse, error) {
	var (
		lecturas []*entity.LecturaResumen
		err      error
	)
	if rol != entity.RolAdministrador {
		lecturas, err = uc.lecturaRepo.AlertasPorCuenta(cuentaID, limiteAlertas)
	} else {
		lecturas, err = uc.lecturaRepo.AlertasTodas(limiteAlertas)
	}
	if err != nil {
		return nil, err
	}
	return aLecturaDTO(lecturas), nil
}

func aLecturaDTO(lecturas []*entity.LecturaResumen) []dto.LecturaResponse {
	out := make([]dto.LecturaResponse, 0, len(lecturas))
	for _, l := range lecturas {
		out = append(out, dto.LecturaResponse{
			ID:           l.ID,
			UsuarioID:    l.UsuarioID,
			Voltaje:      l.Voltaje,
			Bateria:      l.Bateria,
			Consumo:      l.Consumo,
			FechaLectura: l.FechaLectura,
		})
	}
	return out
}
