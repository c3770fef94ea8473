package report

import (
	"context"

	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// StatementPDFGenerator puerto de render: recibe los datos ya resueltos y
// devuelve los bytes del PDF.
type StatementPDFGenerator interface {
	GenerarEstadoCuenta(ctx context.Context, eolico *entity.Eolico, alquiler *entity.Alquiler, titular *entity.Usuario, cuotas []*entity.Cuota) ([]byte, error)
}

// PDFUseCase arma el estado de cuenta del alquiler activo de un eólico:
// datos del equipo, del titular y el plan de cuotas completo con pagos.
type PDFUseCase struct {
	eolicoRepo   repository.EolicoRepository
	alquilerRepo repository.AlquilerRepository
	cuotaRepo    repository.CuotaRepository
	usuarioRepo  repository.UsuarioRepository
	generator    StatementPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	eolicoRepo repository.EolicoRepository,
	alquilerRepo repository.AlquilerRepository,
	cuotaRepo repository.CuotaRepository,
	usuarioRepo repository.UsuarioRepository,
	generator StatementPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		eolicoRepo:   eolicoRepo,
		alquilerRepo: alquilerRepo,
		cuotaRepo:    cuotaRepo,
		usuarioRepo:  usuarioRepo,
		generator:    generator,
	}
}

// EstadoCuenta resuelve eólico, alquiler activo, titular y cuotas, y delega
// el render al generador.
func (uc *PDFUseCase) EstadoCuenta(ctx context.Context, eolicoID int64) ([]byte, error) {
	if eolicoID < 1 {
		return nil, domain.ErrInvalidInput
	}
	eolico, err := uc.eolicoRepo.GetByID(eolicoID)
	if err != nil {
		return nil, err
	}
	if eolico == nil {
		return nil, domain.ErrNotFound
	}
	alq, err := uc.alquilerRepo.GetActivoPorEolico(eolicoID)
	if err != nil {
		return nil, err
	}
	if alq == nil {
		return nil, domain.ErrSinAlquilerActivo
	}
	titular, err := uc.usuarioRepo.GetPorID(alq.UsuarioID)
	if err != nil {
		return nil, err
	}
	cuotas, err := uc.cuotaRepo.ListarPorAlquiler(alq.ID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerarEstadoCuenta(ctx, eolico, alq, titular, cuotas)
}
