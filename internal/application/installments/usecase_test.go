package installments_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vientosur/eolico-api/internal/application/dto"
	"github.com/vientosur/eolico-api/internal/application/installments"
	"github.com/vientosur/eolico-api/internal/domain"
	"github.com/vientosur/eolico-api/internal/domain/entity"
	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memoria es el estado compartido por los repos fake y el tx runner fake.
// El runner solo ejecuta el callback: en estos tests no hay transacción real.
type memoria struct {
	eolico   *entity.Eolico
	alquiler *entity.Alquiler
	cuotas   []*entity.Cuota
}

func (m *memoria) RunInstallments(_ context.Context, fn func(
	repository.EolicoRepository,
	repository.AlquilerRepository,
	repository.CuotaRepository,
) error) error {
	return fn(&fakeEolicoRepo{m}, &fakeAlquilerRepo{m}, &fakeCuotaRepo{m})
}

type fakeEolicoRepo struct{ m *memoria }

func (r *fakeEolicoRepo) Crear(*entity.Eolico) (int64, error) { return 0, nil }
func (r *fakeEolicoRepo) GetByID(id int64) (*entity.Eolico, error) {
	if r.m.eolico != nil && r.m.eolico.ID == id {
		return r.m.eolico, nil
	}
	return nil, nil
}
func (r *fakeEolicoRepo) GetByIDForUpdate(id int64) (*entity.Eolico, error) { return r.GetByID(id) }
func (r *fakeEolicoRepo) GetByCodigo(string) (*entity.Eolico, error)        { return nil, nil }
func (r *fakeEolicoRepo) Listar() ([]*entity.EolicoDetalle, error)          { return nil, nil }
func (r *fakeEolicoRepo) Asignar(int64, int64) error                        { return nil }
func (r *fakeEolicoRepo) Desasignar(int64) error                            { return nil }
func (r *fakeEolicoRepo) SetActivo(int64, bool) error                       { return nil }
func (r *fakeEolicoRepo) ActualizarCostos(int64, entity.CostosEolico) error { return nil }

type fakeAlquilerRepo struct{ m *memoria }

func (r *fakeAlquilerRepo) Crear(*entity.Alquiler) (int64, error) { return 0, nil }
func (r *fakeAlquilerRepo) GetActivoPorEolico(eolicoID int64) (*entity.Alquiler, error) {
	if r.m.alquiler != nil && r.m.alquiler.EolicoID == eolicoID && r.m.alquiler.Activo() {
		return r.m.alquiler, nil
	}
	return nil, nil
}
func (r *fakeAlquilerRepo) GetActivoPorEolicoForUpdate(eolicoID int64) (*entity.Alquiler, error) {
	return r.GetActivoPorEolico(eolicoID)
}
func (r *fakeAlquilerRepo) CerrarActivoPorEolico(int64, time.Time) (int64, error)  { return 0, nil }
func (r *fakeAlquilerRepo) CerrarActivoPorUsuario(int64, time.Time) (int64, error) { return 0, nil }
func (r *fakeAlquilerRepo) ActualizarCostos(int64, decimal.Decimal, decimal.Decimal, decimal.Decimal) error {
	return nil
}

type fakeCuotaRepo struct{ m *memoria }

func (r *fakeCuotaRepo) ExistePlan(alquilerID int64, concepto string) (bool, error) {
	for _, c := range r.m.cuotas {
		if c.AlquilerID == alquilerID && c.Concepto == concepto {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeCuotaRepo) CrearLote(cuotas []*entity.Cuota) error {
	r.m.cuotas = append(r.m.cuotas, cuotas...)
	return nil
}
func (r *fakeCuotaRepo) ListarPorAlquiler(alquilerID int64) ([]*entity.Cuota, error) {
	var out []*entity.Cuota
	for _, c := range r.m.cuotas {
		if c.AlquilerID == alquilerID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeCuotaRepo) MarcarPagada(id int64, fechaPago time.Time, metodo, obs *string) (bool, error) {
	for _, c := range r.m.cuotas {
		if c.ID == id && !c.Pagada {
			c.Pagada = true
			c.FechaPago = &fechaPago
			c.MetodoPago = metodo
			c.Observaciones = obs
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeCuotaRepo) ListarVencidas(time.Time) ([]*entity.CuotaVencida, error) { return nil, nil }

// escenario arma un eólico con alquiler activo listo para generar planes.
func escenario() (*memoria, *installments.UseCase) {
	m := &memoria{
		eolico: &entity.Eolico{
			ID:            1,
			Codigo:        "AE-01",
			TarifaMensual: decimal.NewFromInt(150),
		},
		alquiler: &entity.Alquiler{
			ID:            10,
			EolicoID:      1,
			UsuarioID:     5,
			Estado:        entity.AlquilerActivo,
			TarifaMensual: decimal.NewFromInt(150),
		},
	}
	uc := installments.NewUseCase(m, &fakeAlquilerRepo{m}, &fakeCuotaRepo{m})
	return m, uc
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GeneratePlan
// ──────────────────────────────────────────────────────────────────────────────

// Caso: 100 entre 3 cuotas debe dar [33.33, 33.33, 33.34] y sumar 100 exacto.
func TestGeneratePlan_DistribucionExacta(t *testing.T) {
	m, uc := escenario()
	total := d("100")

	out, err := uc.GeneratePlan(context.Background(), 1, dto.GenerarPlanRequest{
		Concept:              entity.ConceptoOtro,
		NumberOfInstallments: 3,
		TotalAmount:          &total,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.CreatedCount)
	assert.True(t, out.TotalAmount.Equal(d("100")))

	require.Len(t, m.cuotas, 3)
	assert.True(t, m.cuotas[0].Monto.Equal(d("33.33")))
	assert.True(t, m.cuotas[1].Monto.Equal(d("33.33")))
	assert.True(t, m.cuotas[2].Monto.Equal(d("33.34")), "la última cuota absorbe el residuo")

	suma := decimal.Zero
	for _, c := range m.cuotas {
		suma = suma.Add(c.Monto)
	}
	assert.True(t, suma.Equal(total), "la suma de cuotas debe ser el total exacto")
}

// Caso: vencimientos mensuales desde fin de mes usan la aritmética nativa de
// AddDate (31-ene + 1 mes cae en marzo, + 2 meses vuelve al 31-mar).
func TestGeneratePlan_VencimientosMensualesFinDeMes(t *testing.T) {
	m, uc := escenario()
	total := d("300")

	_, err := uc.GeneratePlan(context.Background(), 1, dto.GenerarPlanRequest{
		Concept:              entity.ConceptoOtro,
		NumberOfInstallments: 3,
		FirstDueDate:         "2025-01-31",
		TotalAmount:          &total,
	})
	require.NoError(t, err)
	require.Len(t, m.cuotas, 3)

	assert.Equal(t, "2025-01-31", m.cuotas[0].FechaVencimiento.Format("2006-01-02"))
	assert.Equal(t, "2025-03-03", m.cuotas[1].FechaVencimiento.Format("2006-01-02"))
	assert.Equal(t, "2025-03-31", m.cuotas[2].FechaVencimiento.Format("2006-01-02"))
}

// Caso: sin monto explícito, el concepto tarifa deriva tarifa_mensual × n del
// snapshot del alquiler.
func TestGeneratePlan_DerivaTarifaDelSnapshot(t *testing.T) {
	m, uc := escenario()

	out, err := uc.GeneratePlan(context.Background(), 1, dto.GenerarPlanRequest{
		Concept:              entity.ConceptoTarifa,
		NumberOfInstallments: 12,
	})
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(d("1800")), "150 × 12")
	assert.Len(t, m.cuotas, 12)
	assert.Equal(t, "tarifa 1/12", m.cuotas[0].Descripcion)
}

// Caso: segundo plan para el mismo (alquiler, concepto) → ErrPlanExistente.
func TestGeneratePlan_PlanDuplicado(t *testing.T) {
	_, uc := escenario()
	total := d("100")
	in := dto.GenerarPlanRequest{
		Concept:              entity.ConceptoOtro,
		NumberOfInstallments: 2,
		TotalAmount:          &total,
	}

	_, err := uc.GeneratePlan(context.Background(), 1, in)
	require.NoError(t, err)

	_, err = uc.GeneratePlan(context.Background(), 1, in)
	assert.ErrorIs(t, err, domain.ErrPlanExistente)
}

// Caso: eólico sin alquiler activo → ErrSinAlquilerActivo.
func TestGeneratePlan_SinAlquilerActivo(t *testing.T) {
	m, uc := escenario()
	m.alquiler.Estado = entity.AlquilerFinalizado
	total := d("100")

	_, err := uc.GeneratePlan(context.Background(), 1, dto.GenerarPlanRequest{
		Concept:              entity.ConceptoOtro,
		NumberOfInstallments: 2,
		TotalAmount:          &total,
	})
	assert.ErrorIs(t, err, domain.ErrSinAlquilerActivo)
}

// Caso: eólico inexistente → ErrNotFound.
func TestGeneratePlan_EolicoInexistente(t *testing.T) {
	_, uc := escenario()
	total := d("100")

	_, err := uc.GeneratePlan(context.Background(), 99, dto.GenerarPlanRequest{
		Concept:              entity.ConceptoOtro,
		NumberOfInstallments: 2,
		TotalAmount:          &total,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso: operativo/otro sin monto explícito no tienen de dónde derivar.
func TestGeneratePlan_OperativoSinMonto(t *testing.T) {
	_, uc := escenario()

	_, err := uc.GeneratePlan(context.Background(), 1, dto.GenerarPlanRequest{
		Concept:              entity.ConceptoOperativo,
		NumberOfInstallments: 2,
	})
	assert.ErrorIs(t, err, domain.ErrMontoRequerido)
}

// Casos de validación de entrada.
func TestGeneratePlan_Validaciones(t *testing.T) {
	_, uc := escenario()
	total := d("100")
	negativo := d("-5")

	casos := []dto.GenerarPlanRequest{
		{Concept: "inexistente", NumberOfInstallments: 2, TotalAmount: &total},
		{Concept: entity.ConceptoOtro, NumberOfInstallments: 0, TotalAmount: &total},
		{Concept: entity.ConceptoOtro, NumberOfInstallments: 121, TotalAmount: &total},
		{Concept: entity.ConceptoOtro, NumberOfInstallments: 2, TotalAmount: &negativo},
		{Concept: entity.ConceptoOtro, NumberOfInstallments: 2, TotalAmount: &total, Periodicity: "quincenal"},
		{Concept: entity.ConceptoOtro, NumberOfInstallments: 2, TotalAmount: &total, FirstDueDate: "31-01-2025"},
	}
	for _, in := range casos {
		_, err := uc.GeneratePlan(context.Background(), 1, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MarkPaid
// ──────────────────────────────────────────────────────────────────────────────

// Caso: pagar dos veces la misma cuota — la segunda llamada no pisa el pago y
// devuelve ErrCuotaPagada.
func TestMarkPaid_DobleLlamada(t *testing.T) {
	m, uc := escenario()
	total := d("100")
	_, err := uc.GeneratePlan(context.Background(), 1, dto.GenerarPlanRequest{
		Concept:              entity.ConceptoOtro,
		NumberOfInstallments: 1,
		TotalAmount:          &total,
	})
	require.NoError(t, err)
	require.Len(t, m.cuotas, 1)
	m.cuotas[0].ID = 77

	metodo := "efectivo"
	require.NoError(t, uc.MarkPaid(context.Background(), 77, dto.PagarCuotaRequest{PaymentMethod: &metodo}))
	require.True(t, m.cuotas[0].Pagada)
	primerPago := *m.cuotas[0].FechaPago

	otro := "transferencia"
	err = uc.MarkPaid(context.Background(), 77, dto.PagarCuotaRequest{PaymentMethod: &otro})
	assert.ErrorIs(t, err, domain.ErrCuotaPagada)
	assert.Equal(t, primerPago, *m.cuotas[0].FechaPago, "el segundo intento no debe alterar el pago")
	assert.Equal(t, "efectivo", *m.cuotas[0].MetodoPago)
}

// Caso: cuota inexistente → ErrCuotaPagada (misma respuesta que ya pagada).
func TestMarkPaid_CuotaInexistente(t *testing.T) {
	_, uc := escenario()
	err := uc.MarkPaid(context.Background(), 999, dto.PagarCuotaRequest{})
	assert.ErrorIs(t, err, domain.ErrCuotaPagada)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List
// ──────────────────────────────────────────────────────────────────────────────

// Caso: el listado devuelve el alquiler activo y sus cuotas.
func TestList_AlquilerYCuotas(t *testing.T) {
	_, uc := escenario()
	total := d("90")
	_, err := uc.GeneratePlan(context.Background(), 1, dto.GenerarPlanRequest{
		Concept:              entity.ConceptoOtro,
		NumberOfInstallments: 3,
		TotalAmount:          &total,
	})
	require.NoError(t, err)

	out, err := uc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Rental.ID)
	assert.Equal(t, int64(1), out.Rental.EquipmentID)
	assert.Len(t, out.Installments, 3)
}

// Caso: listado sin alquiler activo → ErrSinAlquilerActivo.
func TestList_SinAlquilerActivo(t *testing.T) {
	m, uc := escenario()
	m.alquiler = nil

	_, err := uc.List(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrSinAlquilerActivo)
}
