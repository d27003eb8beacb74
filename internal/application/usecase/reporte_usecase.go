package usecase

import (
	"context"

	"github.com/jhoicas/crm-graphql-api/internal/domain/entity"
	"github.com/jhoicas/crm-graphql-api/internal/domain/repository"
)

// ReporteUseCase reportes de solo lectura sobre pedidos completados. Son
// pasarelas sin autenticacion hacia las agregaciones del repositorio.
type ReporteUseCase struct {
	pedidoRepo repository.PedidoRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(pedidoRepo repository.PedidoRepository) *ReporteUseCase {
	return &ReporteUseCase{pedidoRepo: pedidoRepo}
}

// MejoresClientes devuelve los clientes con mayor total en pedidos
// COMPLETADO, en orden descendente.
func (uc *ReporteUseCase) MejoresClientes(ctx context.Context) ([]*entity.TopCliente, error) {
	return uc.pedidoRepo.MejoresClientes(ctx)
}

// MejoresVendedores devuelve a lo sumo 3 vendedores por total en pedidos
// COMPLETADO. El recorte a 3 ocurre antes del ordenamiento.
func (uc *ReporteUseCase) MejoresVendedores(ctx context.Context) ([]*entity.TopVendedor, error) {
	return uc.pedidoRepo.MejoresVendedores(ctx)
}
