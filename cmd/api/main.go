package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/crm-graphql-api/internal/application/auth"
	"github.com/jhoicas/crm-graphql-api/internal/application/usecase"
	"github.com/jhoicas/crm-graphql-api/internal/infrastructure/mongodb"
	gql "github.com/jhoicas/crm-graphql-api/internal/interfaces/graphql"
	httpRouter "github.com/jhoicas/crm-graphql-api/internal/interfaces/http"
	"github.com/jhoicas/crm-graphql-api/pkg/config"
	"github.com/jhoicas/crm-graphql-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := mongodb.Conectar(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()
	if err := mongodb.CrearIndices(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("índices de MongoDB")
	}

	usuarioRepo := mongodb.NewUsuarioRepository(db)
	productoRepo := mongodb.NewProductoRepository(db)
	clienteRepo := mongodb.NewClienteRepository(db)
	pedidoRepo := mongodb.NewPedidoRepository(db)

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHoras: cfg.JWT.ExpHoras,
	})
	productoUC := usecase.NewProductoUseCase(productoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo, clienteRepo, productoRepo)
	reporteUC := usecase.NewReporteUseCase(pedidoRepo)

	resolver := gql.NewResolver(gql.Deps{
		Log:         log,
		Auth:        authUC,
		Productos:   productoUC,
		Clientes:    clienteUC,
		Pedidos:     pedidoUC,
		Reportes:    reporteUC,
		ClienteRepo: clienteRepo,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if err := httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		Resolver: resolver,
		AppName:  cfg.App.Name,
	}); err != nil {
		log.Fatal().Err(err).Msg("schema GraphQL")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
