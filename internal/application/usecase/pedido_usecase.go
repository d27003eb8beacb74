package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/domain"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
)

// PedidoUseCase flujo de cumplimiento de pedidos: valida el cliente, reserva
// stock articulo por articulo y persiste el pedido.
type PedidoUseCase struct {
	pedidoRepo   repository.PedidoRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(pedidoRepo repository.PedidoRepository, clienteRepo repository.ClienteRepository, productoRepo repository.ProductoRepository) *PedidoUseCase {
	return &PedidoUseCase{pedidoRepo: pedidoRepo, clienteRepo: clienteRepo, productoRepo: productoRepo}
}

// Crear valida cliente y stock y persiste el pedido con el actor como
// vendedor. Si un articulo excede la existencia falla la operacion completa
// con ErrStockInsuficiente y no se escribe ningun pedido; los descuentos de
// articulos anteriores en la misma llamada quedan persistidos (comportamiento
// vigente, ver DESIGN.md).
func (uc *PedidoUseCase) Crear(ctx context.Context, actor auth.Actor, in dto.PedidoInput) (*entity.Pedido, error) {
	cliente, err := uc.clienteRepo.ObtenerPorID(ctx, in.Cliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoExiste
	}
	if err := domain.VerificarPropietario(cliente.Vendedor, actor.ID); err != nil {
		return nil, err
	}

	articulos, err := uc.reservarArticulos(ctx, in.Pedido)
	if err != nil {
		return nil, err
	}

	estado := entity.EstadoPendiente
	if in.Estado != nil {
		estado = *in.Estado
	}
	pedido := &entity.Pedido{
		ID:       uuid.New().String(),
		Pedido:   articulos,
		Total:    in.Total,
		Cliente:  cliente.ID,
		Vendedor: actor.ID,
		Estado:   estado,
		Creado:   time.Now(),
	}
	if err := uc.pedidoRepo.Crear(ctx, pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// Actualizar modifica un pedido del actor. El stock solo se revalida y
// descuenta cuando el payload trae una lista de articulos de reemplazo.
func (uc *PedidoUseCase) Actualizar(ctx context.Context, actor auth.Actor, id string, in dto.PedidoActualizarInput) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrPedidoNoExiste
	}
	cliente, err := uc.clienteRepo.ObtenerPorID(ctx, in.Cliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrClienteNoExiste
	}
	if err := domain.VerificarPropietario(cliente.Vendedor, actor.ID); err != nil {
		return nil, err
	}

	cambios := entity.PedidoCambios{
		Total:   in.Total,
		Cliente: &in.Cliente,
		Estado:  in.Estado,
	}
	if in.Pedido != nil {
		articulos, err := uc.reservarArticulos(ctx, in.Pedido)
		if err != nil {
			return nil, err
		}
		cambios.Pedido = articulos
	}

	actualizado, err := uc.pedidoRepo.Actualizar(ctx, id, cambios)
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, domain.ErrPedidoNoExiste
	}
	return actualizado, nil
}

// Eliminar borra un pedido del actor.
func (uc *PedidoUseCase) Eliminar(ctx context.Context, actor auth.Actor, id string) error {
	pedido, err := uc.pedidoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if pedido == nil {
		return domain.ErrPedidoNoExiste
	}
	if err := domain.VerificarPropietario(pedido.Vendedor, actor.ID); err != nil {
		return err
	}
	return uc.pedidoRepo.Eliminar(ctx, id)
}

// Obtener devuelve un pedido por id. Solo el vendedor que lo creo puede
// verlo.
func (uc *PedidoUseCase) Obtener(ctx context.Context, actor auth.Actor, id string) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrPedidoNoExiste
	}
	if err := domain.VerificarPropietario(pedido.Vendedor, actor.ID); err != nil {
		return nil, err
	}
	return pedido, nil
}

// Listar devuelve todos los pedidos sin filtrar por vendedor.
func (uc *PedidoUseCase) Listar(ctx context.Context) ([]*entity.Pedido, error) {
	return uc.pedidoRepo.Listar(ctx)
}

// ListarDelVendedor devuelve los pedidos del actor.
func (uc *PedidoUseCase) ListarDelVendedor(ctx context.Context, actor auth.Actor) ([]*entity.Pedido, error) {
	return uc.pedidoRepo.ListarPorVendedor(ctx, actor.ID)
}

// ListarPorEstado devuelve los pedidos del actor con el estado dado.
func (uc *PedidoUseCase) ListarPorEstado(ctx context.Context, actor auth.Actor, estado string) ([]*entity.Pedido, error) {
	return uc.pedidoRepo.ListarPorVendedorYEstado(ctx, actor.ID, estado)
}

// reservarArticulos valida y descuenta stock articulo por articulo, en el
// orden recibido, persistiendo cada descuento de inmediato. Es la costura
// unica del chequeo-y-descuento: un futuro arreglo de la carrera de oversell
// (descuento condicionado a existencia >= cantidad en una sola operacion de
// persistencia) se inserta aqui sin tocar el resto del flujo.
func (uc *PedidoUseCase) reservarArticulos(ctx context.Context, articulos []dto.ArticuloInput) ([]entity.ArticuloPedido, error) {
	reservados := make([]entity.ArticuloPedido, 0, len(articulos))
	for _, articulo := range articulos {
		producto, err := uc.productoRepo.ObtenerPorID(ctx, articulo.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrProductoNoExiste
		}
		if articulo.Cantidad > producto.Existencia {
			return nil, &domain.ErrStockInsuficiente{Producto: producto.Nombre}
		}
		producto.Existencia -= articulo.Cantidad
		if _, err := uc.productoRepo.Actualizar(ctx, producto.ID, *producto); err != nil {
			return nil, err
		}
		reservados = append(reservados, entity.ArticuloPedido{
			ProductoID: producto.ID,
			Cantidad:   articulo.Cantidad,
			Nombre:     producto.Nombre,
			Precio:     producto.Precio,
		})
	}
	return reservados, nil
}
