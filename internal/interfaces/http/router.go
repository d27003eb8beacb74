package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
	gql "github.com/jhoicas/crm-graphql-api/internal/interfaces/graphql"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC   *auth.UseCase
	Resolver *gql.Resolver
	AppName  string
}

// Router registra las rutas: el endpoint GraphQL (con el middleware que
// resuelve el actor del token) y el health check.
func Router(app *fiber.App, deps RouterDeps) error {
	schema, err := graphqlgo.ParseSchema(gql.Schema, deps.Resolver)
	if err != nil {
		return err
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	app.Post("/graphql", adaptor.HTTPHandler(
		AuthMiddleware(deps.AuthUC, &relay.Handler{Schema: schema}),
	))

	return nil
}
