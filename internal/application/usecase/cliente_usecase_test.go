package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/application/usecase"
	"github.com/jhoicas/crm-graphql-api/internal/domain"
	"github.com/jhoicas/crm-graphql-api/internal/infrastructure/memoria"
)

var (
	vendedorA = auth.Actor{ID: "vendedor-a", Nombre: "Ana"}
	vendedorB = auth.Actor{ID: "vendedor-b", Nombre: "Bruno"}
)

func clienteDePrueba(t *testing.T, uc *usecase.ClienteUseCase, actor auth.Actor, email string) string {
	t.Helper()
	cliente, err := uc.Crear(context.Background(), actor, dto.ClienteInput{
		Nombre:   "Carla",
		Apellido: "Gómez",
		Empresa:  "Acme",
		Email:    email,
	})
	require.NoError(t, err)
	return cliente.ID
}

func TestClienteCrear_AsignaVendedor(t *testing.T) {
	uc := usecase.NewClienteUseCase(memoria.NewClienteRepository())
	cliente, err := uc.Crear(context.Background(), vendedorA, dto.ClienteInput{
		Nombre:   "Carla",
		Apellido: "Gómez",
		Empresa:  "Acme",
		Email:    "carla@acme.com",
	})
	require.NoError(t, err)
	assert.Equal(t, vendedorA.ID, cliente.Vendedor)
}

func TestClienteCrear_EmailDuplicado(t *testing.T) {
	uc := usecase.NewClienteUseCase(memoria.NewClienteRepository())
	clienteDePrueba(t, uc, vendedorA, "carla@acme.com")

	_, err := uc.Crear(context.Background(), vendedorB, dto.ClienteInput{
		Nombre:   "Otra",
		Apellido: "Persona",
		Empresa:  "Beta",
		Email:    "carla@acme.com",
	})
	assert.ErrorIs(t, err, domain.ErrClienteRegistrado)
}

// Regla de propietario: el vendedor B no puede ver, editar ni borrar un
// cliente del vendedor A; el vendedor A puede las tres cosas.
func TestClienteRegla_DePropietario(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewClienteUseCase(memoria.NewClienteRepository())
	id := clienteDePrueba(t, uc, vendedorA, "carla@acme.com")

	cambios := dto.ClienteInput{Nombre: "Carla", Apellido: "Gómez", Empresa: "Acme SA", Email: "carla@acme.com"}

	_, err := uc.Obtener(ctx, vendedorB, id)
	assert.ErrorIs(t, err, domain.ErrSinCredenciales)
	_, err = uc.Actualizar(ctx, vendedorB, id, cambios)
	assert.ErrorIs(t, err, domain.ErrSinCredenciales)
	err = uc.Eliminar(ctx, vendedorB, id)
	assert.ErrorIs(t, err, domain.ErrSinCredenciales)

	cliente, err := uc.Obtener(ctx, vendedorA, id)
	require.NoError(t, err)
	assert.Equal(t, "Carla", cliente.Nombre)

	actualizado, err := uc.Actualizar(ctx, vendedorA, id, cambios)
	require.NoError(t, err)
	assert.Equal(t, "Acme SA", actualizado.Empresa)
	assert.Equal(t, vendedorA.ID, actualizado.Vendedor, "el vendedor no se reasigna al actualizar")

	require.NoError(t, uc.Eliminar(ctx, vendedorA, id))

	// un segundo borrado del mismo id ya no encuentra al cliente
	err = uc.Eliminar(ctx, vendedorA, id)
	assert.ErrorIs(t, err, domain.ErrClienteNoExiste)
}

func TestClienteListar_GlobalYPorVendedor(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewClienteUseCase(memoria.NewClienteRepository())
	clienteDePrueba(t, uc, vendedorA, "a1@acme.com")
	clienteDePrueba(t, uc, vendedorA, "a2@acme.com")
	clienteDePrueba(t, uc, vendedorB, "b1@beta.com")

	// el listado global no filtra por vendedor (alcance vigente)
	todos, err := uc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, todos, 3)

	deA, err := uc.ListarDelVendedor(ctx, vendedorA)
	require.NoError(t, err)
	assert.Len(t, deA, 2)

	deB, err := uc.ListarDelVendedor(ctx, vendedorB)
	require.NoError(t, err)
	assert.Len(t, deB, 1)
}
