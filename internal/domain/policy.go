package domain

// VerificarPropietario aplica la regla unica de acceso por propietario:
// el id del actor debe coincidir con el vendedor asignado a la entidad.
// Los ids se comparan como cadenas opacas.
func VerificarPropietario(vendedorID, actorID string) error {
	if vendedorID != actorID {
		return ErrSinCredenciales
	}
	return nil
}
