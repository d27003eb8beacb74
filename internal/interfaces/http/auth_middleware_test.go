package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
	"github.com/jhoicas/crm-graphql-api/internal/application/dto"
	"github.com/jhoicas/crm-graphql-api/internal/application/usecase"
	"github.com/jhoicas/crm-graphql-api/internal/infrastructure/memoria"
	"github.com/jhoicas/crm-graphql-api/internal/interfaces/graphql"
	apphttp "github.com/jhoicas/crm-graphql-api/internal/interfaces/http"
	"github.com/jhoicas/crm-graphql-api/pkg/logger"
)

func nuevoAuthUC(t *testing.T) (*auth.UseCase, string) {
	t.Helper()
	uc := auth.NewUseCase(memoria.NewUsuarioRepository(), auth.JWTConfig{
		Secret:   "middleware-test-secret",
		ExpHoras: 24,
	})
	_, err := uc.Registrar(context.Background(), dto.UsuarioInput{
		Nombre:   "Ana",
		Apellido: "Ruiz",
		Email:    "ana@crm.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	token, err := uc.Autenticar(context.Background(), dto.AutenticarInput{
		Email:    "ana@crm.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	return uc, token
}

// sonda devuelve el id del actor del contexto de la petición, o "anonimo".
var sonda = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if actor, ok := auth.ActorDelContexto(r.Context()); ok {
		_, _ = io.WriteString(w, actor.ID)
		return
	}
	_, _ = io.WriteString(w, "anonimo")
})

func TestAuthMiddleware(t *testing.T) {
	uc, token := nuevoAuthUC(t)
	handler := apphttp.AuthMiddleware(uc, sonda)

	casos := []struct {
		nombre string
		header string
		espera string
	}{
		{"token crudo", token, "actor"},
		{"con prefijo Bearer", "Bearer " + token, "actor"},
		{"prefijo en minusculas", "bearer " + token, "actor"},
		{"sin header", "", "anonimo"},
		{"token basura", "no.es.un.jwt", "anonimo"},
		{"token manipulado", token + "x", "anonimo"},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/quien", nil)
			if caso.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, caso.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			// el middleware nunca corta la petición
			assert.Equal(t, http.StatusOK, rec.Code)

			if caso.espera == "anonimo" {
				assert.Equal(t, "anonimo", rec.Body.String())
			} else {
				assert.NotEmpty(t, rec.Body.String())
				assert.NotEqual(t, "anonimo", rec.Body.String())
			}
		})
	}
}

// Prueba de extremo a extremo del transporte: el router completo atendiendo
// una consulta GraphQL con el actor resuelto desde el header.
func TestRouter_GraphQLConToken(t *testing.T) {
	clienteRepo := memoria.NewClienteRepository()
	productoRepo := memoria.NewProductoRepository()
	usuarioRepo := memoria.NewUsuarioRepository()
	pedidoRepo := memoria.NewPedidoRepository(clienteRepo, usuarioRepo)

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{Secret: "router-test-secret", ExpHoras: 24})

	resolver := graphql.NewResolver(graphql.Deps{
		Log:         logger.New(logger.Config{Env: "test", Level: "error"}),
		Auth:        authUC,
		Productos:   usecase.NewProductoUseCase(productoRepo),
		Clientes:    usecase.NewClienteUseCase(clienteRepo),
		Pedidos:     usecase.NewPedidoUseCase(pedidoRepo, clienteRepo, productoRepo),
		Reportes:    usecase.NewReporteUseCase(pedidoRepo),
		ClienteRepo: clienteRepo,
	})

	app := fiber.New()
	require.NoError(t, apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:   authUC,
		Resolver: resolver,
		AppName:  "crm-test",
	}))

	usuario, err := authUC.Registrar(context.Background(), dto.UsuarioInput{
		Nombre:   "Ana",
		Apellido: "Ruiz",
		Email:    "ana@crm.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	token, err := authUC.Autenticar(context.Background(), dto.AutenticarInput{
		Email:    "ana@crm.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	graphqlPost := func(t *testing.T, authorization string) *http.Response {
		t.Helper()
		cuerpo, err := json.Marshal(fiber.Map{"query": `{ obtenerUsuario { id nombre } }`})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(cuerpo))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		if authorization != "" {
			req.Header.Set(fiber.HeaderAuthorization, authorization)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("con token", func(t *testing.T) {
		resp := graphqlPost(t, "Bearer "+token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var salida struct {
			Data struct {
				ObtenerUsuario *struct {
					ID     string `json:"id"`
					Nombre string `json:"nombre"`
				} `json:"obtenerUsuario"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&salida))
		require.NotNil(t, salida.Data.ObtenerUsuario)
		assert.Equal(t, usuario.ID, salida.Data.ObtenerUsuario.ID)
		assert.Equal(t, "Ana", salida.Data.ObtenerUsuario.Nombre)
	})

	t.Run("sin token resuelve null", func(t *testing.T) {
		resp := graphqlPost(t, "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		cuerpo, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":{"obtenerUsuario":null}}`, string(cuerpo))
	})

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
