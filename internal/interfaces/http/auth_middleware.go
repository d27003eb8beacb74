package http

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
)

// AuthMiddleware lee el header Authorization, verifica el token y, si es
// válido, deja al actor en el contexto de la petición antes de entregarla al
// siguiente handler. Vive en la cadena net/http y no en la de fiber: el
// adaptor reconstruye el *http.Request desde fasthttp y el contexto de
// usuario de fiber no sobrevive ese puente. Un header ausente o un token
// inválido dejan el contexto anónimo: las operaciones que exigen identidad
// fallan después, en la fachada, con No autenticado.
func AuthMiddleware(authUC *auth.UseCase, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extraerToken(r.Header.Get(fiber.HeaderAuthorization))
		if actor, ok := authUC.Verificar(token); ok {
			r = r.WithContext(auth.ContextoConActor(r.Context(), actor))
		}
		next.ServeHTTP(w, r)
	})
}

// extraerToken acepta el token crudo o con prefijo "Bearer ".
func extraerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
