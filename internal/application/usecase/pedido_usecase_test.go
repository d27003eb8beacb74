package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/application/usecase"
	"github.com/jhoicas/crm-graphql-api/internal/domain"
	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/infrastructure/memoria"
)

type pedidoFixture struct {
	pedidos   *usecase.PedidoUseCase
	productos *memoria.ProductoRepo
	repo      *memoria.PedidoRepo
	clienteID string
}

// nuevaFixture prepara un cliente del vendedor A y los productos indicados
// (nombre -> existencia).
func nuevaFixture(t *testing.T, existencias map[string]int) (*pedidoFixture, map[string]string) {
	t.Helper()
	clienteRepo := memoria.NewClienteRepository()
	productoRepo := memoria.NewProductoRepository()
	usuarioRepo := memoria.NewUsuarioRepository()
	pedidoRepo := memoria.NewPedidoRepository(clienteRepo, usuarioRepo)

	cliente := &entity.Cliente{
		Nombre:   "Carla",
		Apellido: "Gómez",
		Empresa:  "Acme",
		Email:    "carla@acme.com",
		Vendedor: vendedorA.ID,
		Creado:   time.Now(),
	}
	require.NoError(t, clienteRepo.Crear(context.Background(), cliente))

	ids := make(map[string]string, len(existencias))
	for nombre, existencia := range existencias {
		p := &entity.Producto{Nombre: nombre, Existencia: existencia, Precio: 100}
		require.NoError(t, productoRepo.Crear(context.Background(), p))
		ids[nombre] = p.ID
	}

	return &pedidoFixture{
		pedidos:   usecase.NewPedidoUseCase(pedidoRepo, clienteRepo, productoRepo),
		productos: productoRepo,
		repo:      pedidoRepo,
		clienteID: cliente.ID,
	}, ids
}

func (f *pedidoFixture) existencia(t *testing.T, id string) int {
	t.Helper()
	p, err := f.productos.ObtenerPorID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Existencia
}

func TestPedidoCrear_DescuentaStock(t *testing.T) {
	ctx := context.Background()
	f, ids := nuevaFixture(t, map[string]int{"Monitor": 10})

	pedido, err := f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 3}},
		Total:   300,
		Cliente: f.clienteID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoPendiente, pedido.Estado)
	assert.Equal(t, vendedorA.ID, pedido.Vendedor, "el vendedor del pedido es el actor")
	assert.Equal(t, 7, f.existencia(t, ids["Monitor"]))
	require.Len(t, pedido.Pedido, 1)
	assert.Equal(t, "Monitor", pedido.Pedido[0].Nombre)
	assert.Equal(t, 100.0, pedido.Pedido[0].Precio)
}

func TestPedidoCrear_StockInsuficiente(t *testing.T) {
	ctx := context.Background()
	f, ids := nuevaFixture(t, map[string]int{"Monitor": 10})

	_, err := f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 3}},
		Total:   300,
		Cliente: f.clienteID,
	})
	require.NoError(t, err)

	// un segundo pedido de 8 excede la existencia restante (7)
	_, err = f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 8}},
		Total:   800,
		Cliente: f.clienteID,
	})
	var stockErr *domain.ErrStockInsuficiente
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Monitor", stockErr.Producto)
	assert.Contains(t, err.Error(), "Monitor")

	assert.Equal(t, 7, f.existencia(t, ids["Monitor"]))

	pedidos, err := f.repo.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, pedidos, 1, "el pedido rechazado no debe persistirse")
}

func TestPedidoCrear_DescuentoParcialAntesDelFallo(t *testing.T) {
	ctx := context.Background()
	f, ids := nuevaFixture(t, map[string]int{"Monitor": 5, "Teclado": 4})

	_, err := f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido: []dto.ArticuloInput{
			{ProductoID: ids["Monitor"], Cantidad: 2},
			{ProductoID: ids["Teclado"], Cantidad: 10},
		},
		Total:   999,
		Cliente: f.clienteID,
	})
	var stockErr *domain.ErrStockInsuficiente
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Teclado", stockErr.Producto)

	// Comportamiento vigente (probablemente indeseable, conservado tal
	// cual): el descuento del primer articulo queda persistido aunque la
	// operacion completa falle y no se escriba ningun pedido.
	assert.Equal(t, 3, f.existencia(t, ids["Monitor"]))
	assert.Equal(t, 4, f.existencia(t, ids["Teclado"]))

	pedidos, err := f.repo.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, pedidos)
}

func TestPedidoCrear_ClienteNoExiste(t *testing.T) {
	f, _ := nuevaFixture(t, map[string]int{"Monitor": 10})
	_, err := f.pedidos.Crear(context.Background(), vendedorA, dto.PedidoInput{
		Cliente: "cliente-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrClienteNoExiste)
}

func TestPedidoCrear_ClienteDeOtroVendedor(t *testing.T) {
	f, ids := nuevaFixture(t, map[string]int{"Monitor": 10})
	_, err := f.pedidos.Crear(context.Background(), vendedorB, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 1}},
		Total:   100,
		Cliente: f.clienteID,
	})
	assert.ErrorIs(t, err, domain.ErrSinCredenciales)
	assert.Equal(t, 10, f.existencia(t, ids["Monitor"]), "el stock no se toca si la autorizacion falla")
}

func TestPedidoActualizar_SinArticulosNoTocaStock(t *testing.T) {
	ctx := context.Background()
	f, ids := nuevaFixture(t, map[string]int{"Monitor": 10})

	pedido, err := f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 3}},
		Total:   300,
		Cliente: f.clienteID,
	})
	require.NoError(t, err)

	estado := entity.EstadoCompletado
	actualizado, err := f.pedidos.Actualizar(ctx, vendedorA, pedido.ID, dto.PedidoActualizarInput{
		Cliente: f.clienteID,
		Estado:  &estado,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoCompletado, actualizado.Estado)
	assert.Len(t, actualizado.Pedido, 1, "los articulos se conservan")
	assert.Equal(t, 7, f.existencia(t, ids["Monitor"]), "sin lista de reemplazo el stock no se toca")
}

func TestPedidoActualizar_ConArticulosRevalidaStock(t *testing.T) {
	ctx := context.Background()
	f, ids := nuevaFixture(t, map[string]int{"Monitor": 10})

	pedido, err := f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 3}},
		Total:   300,
		Cliente: f.clienteID,
	})
	require.NoError(t, err)

	// la lista de reemplazo vuelve a descontar sobre la existencia restante
	actualizado, err := f.pedidos.Actualizar(ctx, vendedorA, pedido.ID, dto.PedidoActualizarInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 2}},
		Cliente: f.clienteID,
	})
	require.NoError(t, err)

	require.Len(t, actualizado.Pedido, 1)
	assert.Equal(t, 2, actualizado.Pedido[0].Cantidad)
	assert.Equal(t, 5, f.existencia(t, ids["Monitor"]))
}

func TestPedidoObtenerYEliminar_ReglaDePropietario(t *testing.T) {
	ctx := context.Background()
	f, ids := nuevaFixture(t, map[string]int{"Monitor": 10})

	pedido, err := f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 1}},
		Total:   100,
		Cliente: f.clienteID,
	})
	require.NoError(t, err)

	_, err = f.pedidos.Obtener(ctx, vendedorB, pedido.ID)
	assert.ErrorIs(t, err, domain.ErrSinCredenciales)
	err = f.pedidos.Eliminar(ctx, vendedorB, pedido.ID)
	assert.ErrorIs(t, err, domain.ErrSinCredenciales)

	obtenido, err := f.pedidos.Obtener(ctx, vendedorA, pedido.ID)
	require.NoError(t, err)
	assert.Equal(t, pedido.ID, obtenido.ID)

	require.NoError(t, f.pedidos.Eliminar(ctx, vendedorA, pedido.ID))
	err = f.pedidos.Eliminar(ctx, vendedorA, pedido.ID)
	assert.ErrorIs(t, err, domain.ErrPedidoNoExiste)
}

func TestPedidoListarPorEstado(t *testing.T) {
	ctx := context.Background()
	f, ids := nuevaFixture(t, map[string]int{"Monitor": 10})

	estado := entity.EstadoCompletado
	_, err := f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 1}},
		Total:   100,
		Cliente: f.clienteID,
		Estado:  &estado,
	})
	require.NoError(t, err)
	_, err = f.pedidos.Crear(ctx, vendedorA, dto.PedidoInput{
		Pedido:  []dto.ArticuloInput{{ProductoID: ids["Monitor"], Cantidad: 1}},
		Total:   100,
		Cliente: f.clienteID,
	})
	require.NoError(t, err)

	completados, err := f.pedidos.ListarPorEstado(ctx, vendedorA, entity.EstadoCompletado)
	require.NoError(t, err)
	assert.Len(t, completados, 1)

	pendientes, err := f.pedidos.ListarPorEstado(ctx, vendedorA, entity.EstadoPendiente)
	require.NoError(t, err)
	assert.Len(t, pendientes, 1)

	deOtro, err := f.pedidos.ListarPorEstado(ctx, vendedorB, entity.EstadoCompletado)
	require.NoError(t, err)
	assert.Empty(t, deOtro)
}
