package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/FOLISOLOMON/invoice/internal/config"
	"github.com/FOLISOLOMON/invoice/internal/interaction"
	"github.com/FOLISOLOMON/invoice/internal/restapi/middleware"
	v1health "github.com/FOLISOLOMON/invoice/internal/restapi/v1/health"
	v1invoices "github.com/FOLISOLOMON/invoice/internal/restapi/v1/invoices"
	v1paystack "github.com/FOLISOLOMON/invoice/internal/restapi/v1/paystack"
)

func NewServer(ctx context.Context, conf *config.ServerConfig, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.BaseAddress, conf.Port),
		Handler:      router,
		ReadTimeout:  time.Second * time.Duration(conf.ReadTimeout),
		WriteTimeout: time.Second * time.Duration(conf.WriteTimeout),
		IdleTimeout:  time.Second * time.Duration(conf.IdleTimeout),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
}

func CreateRouter(i interaction.Interactor, conf *config.Application) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestIdMiddleware())
	router.Use(middleware.LogRequestIdMiddleware())
	router.Use(middleware.CorsHeadersMiddleware(conf.Security.Cors))

	setupV1Routes(router, i, conf)

	return router
}

func setupV1Routes(router chi.Router, i interaction.Interactor, conf *config.Application) {
	v1health.Create(router)

	router.Route("/api/v1", func(r chi.Router) {
		// webhook and status endpoints must stay reachable for the
		// gateway and the payer without a token
		v1paystack.Create(r, i, conf)

		if conf.Security.Fixed.Api != "" {
			r.Group(func(g chi.Router) {
				g.Use(middleware.TokenHandlerMiddleware(conf.Security.Fixed.Api))
				v1invoices.Create(g, i)
			})
		} else {
			v1invoices.Create(r, i)
		}
	})
}
