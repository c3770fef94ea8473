package installments

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// Límites del plan.
const (
	MinCuotas      = 1
	MaxCuotas      = 120
	MaxDescripcion = 120
)

// UseCase genera y consulta planes de cuotas, y marca cuotas como pagadas.
// Un plan es inmutable una vez generado: por cada (alquiler, concepto) se
// genera a lo sumo una vez, y la única transición posterior de cada cuota es
// pendiente → pagada.
type UseCase struct {
	txRunner     TxRunner
	alquilerRepo repository.AlquilerRepository
	cuotaRepo    repository.CuotaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, alquilerRepo repository.AlquilerRepository, cuotaRepo repository.CuotaRepository) *UseCase {
	return &UseCase{txRunner: txRunner, alquilerRepo: alquilerRepo, cuotaRepo: cuotaRepo}
}

// GeneratePlan deriva y persiste el plan de cuotas del alquiler activo del
// eólico para un concepto. La suma de los montos generados es exactamente el
// total, al centavo: las primeras n−1 cuotas llevan floor(total/n) a dos
// decimales y la última absorbe el residuo.
func (uc *UseCase) GeneratePlan(ctx context.Context, eolicoID int64, in dto.GenerarPlanRequest) (*dto.GenerarPlanResponse, error) {
	if eolicoID < 1 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ConceptoValido(in.Concept) {
		return nil, domain.ErrInvalidInput
	}
	if in.NumberOfInstallments < MinCuotas || in.NumberOfInstallments > MaxCuotas {
		return nil, domain.ErrInvalidInput
	}
	periodicidad := in.Periodicity
	if periodicidad == "" {
		periodicidad = entity.PeriodicidadMensual
	}
	if !entity.PeriodicidadValida(periodicidad) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Description) > MaxDescripcion {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalAmount != nil && !in.TotalAmount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	primera := time.Now()
	if in.FirstDueDate != "" {
		var err error
		primera, err = time.ParseInLocation("2006-01-02", in.FirstDueDate, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *dto.GenerarPlanResponse
	err := uc.txRunner.RunInstallments(ctx, func(
		eolicoRepo repository.EolicoRepository,
		alquilerRepo repository.AlquilerRepository,
		cuotaRepo repository.CuotaRepository,
	) error {
		eolico, err := eolicoRepo.GetByID(eolicoID)
		if err != nil {
			return err
		}
		if eolico == nil {
			return domain.ErrNotFound
		}
		// Lock del alquiler activo: serializa el check de duplicado contra
		// otra generación concurrente para el mismo alquiler.
		alq, err := alquilerRepo.GetActivoPorEolicoForUpdate(eolicoID)
		if err != nil {
			return err
		}
		if alq == nil {
			return domain.ErrSinAlquilerActivo
		}
		existe, err := cuotaRepo.ExistePlan(alq.ID, in.Concept)
		if err != nil {
			return err
		}
		if existe {
			return domain.ErrPlanExistente
		}

		total, err := derivarTotal(in.Concept, in.TotalAmount, in.NumberOfInstallments, alq, eolico)
		if err != nil {
			return err
		}

		cuotas := armarPlan(alq.ID, in.Concept, in.Description, in.NumberOfInstallments, periodicidad, primera, total)
		if err := cuotaRepo.CrearLote(cuotas); err != nil {
			return err
		}
		out = &dto.GenerarPlanResponse{CreatedCount: len(cuotas), TotalAmount: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// derivarTotal resuelve el monto total del plan. Cuando no viene explícito se
// deriva del snapshot del alquiler, con el valor actual del eólico como
// fallback si el snapshot quedó en cero. Para operativo/otro el monto es
// obligatorio.
func derivarTotal(concepto string, explicito *decimal.Decimal, n int, alq *entity.Alquiler, eolico *entity.Eolico) (decimal.Decimal, error) {
	if explicito != nil {
		return *explicito, nil
	}
	var base decimal.Decimal
	switch concepto {
	case entity.ConceptoTarifa:
		base = snapshotOFallback(alq.TarifaMensual, eolico.TarifaMensual)
		base = base.Mul(decimal.NewFromInt(int64(n)))
	case entity.ConceptoInstalacion:
		base = snapshotOFallback(alq.CostoInstalacion, eolico.CostoInstalacion)
	case entity.ConceptoDeposito:
		base = snapshotOFallback(alq.Deposito, eolico.Deposito)
	default:
		// operativo / otro: no hay campo de costo del cual derivar
		return decimal.Zero, domain.ErrMontoRequerido
	}
	if !base.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrMontoRequerido
	}
	return base, nil
}

func snapshotOFallback(snapshot, actual decimal.Decimal) decimal.Decimal {
	if snapshot.GreaterThan(decimal.Zero) {
		return snapshot
	}
	return actual
}

// armarPlan computa montos y vencimientos de las n cuotas.
//
// Montos: base = trunc(total/n, 2); las primeras n−1 cuotas llevan base y la
// última total − base×(n−1), de modo que la suma da total exacto pese al
// redondeo. Vencimientos: la cuota i (1-indexada) vence primera avanzada
// (i−1) periodos; el avance mensual usa la aritmética nativa de time.AddDate
// (rollover de fin de mes incluido).
func armarPlan(alquilerID int64, concepto, descripcion string, n int, periodicidad string, primera time.Time, total decimal.Decimal) []*entity.Cuota {
	base := total.Div(decimal.NewFromInt(int64(n))).Truncate(2)
	ultima := total.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))

	cuotas := make([]*entity.Cuota, 0, n)
	for i := 1; i <= n; i++ {
		monto := base
		if i == n {
			monto = ultima
		}
		desc := descripcion
		if desc == "" {
			desc = fmt.Sprintf("%s %d/%d", concepto, i, n)
		}
		cuotas = append(cuotas, &entity.Cuota{
			AlquilerID:       alquilerID,
			Concepto:         concepto,
			Numero:           i,
			Descripcion:      desc,
			FechaVencimiento: avanzar(primera, periodicidad, i-1),
			Monto:            monto,
			Pagada:           false,
		})
	}
	return cuotas
}

func avanzar(desde time.Time, periodicidad string, periodos int) time.Time {
	switch periodicidad {
	case entity.PeriodicidadSemanal:
		return desde.AddDate(0, 0, 7*periodos)
	case entity.PeriodicidadDiaria:
		return desde.AddDate(0, 0, periodos)
	default:
		return desde.AddDate(0, periodos, 0)
	}
}

// MarkPaid marca una cuota como pagada. El UPDATE guardado (WHERE pagada =
// false) hace la operación atómica: una segunda llamada no altera fecha_pago
// y devuelve ErrCuotaPagada.
func (uc *UseCase) MarkPaid(ctx context.Context, cuotaID int64, in dto.PagarCuotaRequest) error {
	if cuotaID < 1 {
		return domain.ErrInvalidInput
	}
	ok, err := uc.cuotaRepo.MarcarPagada(cuotaID, time.Now(), in.PaymentMethod, in.Notes)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCuotaPagada
	}
	return nil
}

// List devuelve el alquiler activo del eólico y sus cuotas.
func (uc *UseCase) List(ctx context.Context, eolicoID int64) (*dto.ListaCuotasResponse, error) {
	if eolicoID < 1 {
		return nil, domain.ErrInvalidInput
	}
	alq, err := uc.alquilerRepo.GetActivoPorEolico(eolicoID)
	if err != nil {
		return nil, err
	}
	if alq == nil {
		return nil, domain.ErrSinAlquilerActivo
	}
	cuotas, err := uc.cuotaRepo.ListarPorAlquiler(alq.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.ListaCuotasResponse{
		Rental: dto.AlquilerResponse{
			ID:          alq.ID,
			EquipmentID: alq.EolicoID,
			UserID:      alq.UsuarioID,
			Status:      alq.Estado,
			StartDate:   alq.FechaInicio,
			EndDate:     alq.FechaFin,
			Tariff:      alq.TarifaMensual,
			InstallCost: alq.CostoInstalacion,
			Deposit:     alq.Deposito,
		},
		Installments: make([]dto.CuotaResponse, 0, len(cuotas)),
	}
	for _, c := range cuotas {
		out.Installments = append(out.Installments, dto.CuotaResponse{
			ID:            c.ID,
			Concept:       c.Concepto,
			Number:        c.Numero,
			Description:   c.Descripcion,
			DueDate:       c.FechaVencimiento,
			Amount:        c.Monto,
			Paid:          c.Pagada,
			PaidAt:        c.FechaPago,
			PaymentMethod: c.MetodoPago,
			Notes:         c.Observaciones,
		})
	}
	return out, nil
}
