package auth

import "context"

// Actor es la identidad autenticada asociada a una petición. Su ausencia es
// un estado válido (contexto anónimo), nunca un error en esta capa.
type Actor struct {
	ID       string
	Nombre   string
	Apellido string
}

type contextKey struct{}

// ContextoConActor devuelve un contexto que lleva al actor autenticado.
func ContextoConActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

// ActorDelContexto devuelve el actor del contexto y si está presente.
func ActorDelContexto(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(contextKey{}).(Actor)
	return actor, ok
}
