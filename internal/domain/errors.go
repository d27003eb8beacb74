package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los mensajes son el
// contrato observable por el cliente GraphQL.
var (
	ErrUsuarioRegistrado   = errors.New("El usuario ya esta registrado")
	ErrUsuarioNoExiste     = errors.New("El usuario no existe")
	ErrPasswordIncorrecto  = errors.New("El password es incorrecto")
	ErrProductoNoExiste    = errors.New("Producto no existe")
	ErrClienteRegistrado   = errors.New("Ese cliente ya esta registrado")
	ErrClienteNoExiste     = errors.New("Ese cliente no existe")
	ErrPedidoNoExiste      = errors.New("El pedido no existe")
	ErrNoAutenticado       = errors.New("No autenticado")
	ErrSinCredenciales     = errors.New("No tienes las credenciales")
	ErrRepositorio         = errors.New("error consultando el repositorio")
)

// ErrStockInsuficiente indica que un articulo del pedido excede la existencia
// disponible. Lleva el nombre del producto que provoco el rechazo.
type ErrStockInsuficiente struct {
	Producto string
}

func (e *ErrStockInsuficiente) Error() string {
	return fmt.Sprintf("El articulo: %s excede la cantidad disponible", e.Producto)
}

// EsErrorDeDominio reporta si err pertenece a la taxonomia de dominio y por
// tanto su mensaje puede exponerse tal cual al cliente.
func EsErrorDeDominio(err error) bool {
	var stock *ErrStockInsuficiente
	if errors.As(err, &stock) {
		return true
	}
	for _, e := range []error{
		ErrUsuarioRegistrado, ErrUsuarioNoExiste, ErrPasswordIncorrecto,
		ErrProductoNoExiste, ErrClienteRegistrado, ErrClienteNoExiste,
		ErrPedidoNoExiste, ErrNoAutenticado, ErrSinCredenciales,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
