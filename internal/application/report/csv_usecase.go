package report

import (
	"bytes"
	"encoding/csv"

	"github.com/vientosur/eolico-api/internal/domain/repository"
)

// CSVUseCase exporta el padrón de usuarios como CSV descargable.
type CSVUseCase struct {
	usuarioRepo repository.UsuarioRepository
}

// NewCSVUseCase construye el caso de uso.
func NewCSVUseCase(usuarioRepo repository.UsuarioRepository) *CSVUseCase {
	return &CSVUseCase{usuarioRepo: usuarioRepo}
}

// ReporteUsuarios genera el CSV con los datos personales de todos los
// usuarios, en el mismo orden de columnas que el reporte histórico.
func (uc *CSVUseCase) ReporteUsuarios() ([]byte, error) {
	usuarios, err := uc.usuarioRepo.Listar("")
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"nombres", "primer_apellido", "segundo_apellido", "ci", "fecha_nacimiento", "telefono", "direccion", "email"}); err != nil {
		return nil, err
	}
	for _, u := range usuarios {
		fechaNac := ""
		if u.FechaNacimiento != nil {
			fechaNac = u.FechaNacimiento.Format("2006-01-02")
		}
		if err := w.Write([]string{
			u.Nombres, u.PrimerApellido, u.SegundoApellido, u.CI,
			fechaNac, u.Telefono, u.Direccion, u.Email,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
