package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"

	"github.com/FOLISOLOMON/invoice/internal/common"
	"github.com/FOLISOLOMON/invoice/internal/config"
	"github.com/FOLISOLOMON/invoice/internal/interaction"
	"github.com/FOLISOLOMON/invoice/internal/logging"
	"github.com/FOLISOLOMON/invoice/internal/mailing"
	"github.com/FOLISOLOMON/invoice/internal/render"
	"github.com/FOLISOLOMON/invoice/internal/repository/downstreams/paystack"
	"github.com/FOLISOLOMON/invoice/internal/repository/statusstore"
	"github.com/FOLISOLOMON/invoice/internal/server"
)

func main() {
	configFilePath := flag.String("config", "config.yaml", "path to the yaml configuration file")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configFilePath)
	if err != nil {
		log.Fatalf("could not load configuration from %s: %v", *configFilePath, err)
	}

	if err := config.Validate(conf, log.Printf); err != nil {
		log.Fatal(err)
	}

	logging.SetGlobalSeverity(conf.Logging.Severity)
	auzerolog.SetupJsonLogging(common.ApplicationName)
	logger := logging.NewLogger()

	gateway, err := paystack.New(conf.Paystack.BaseUrl, conf.Paystack.SecretKey, conf.Paystack.AmountLimitMinorUnits)
	if err != nil {
		logger.Fatal("could not create payment gateway client. [error]: %v", err)
	}

	transport, err := mailing.NewResendTransport(conf.Mail.ApiKey, conf.Mail.FromAddress)
	if err != nil {
		logger.Fatal("could not create mail transport. [error]: %v", err)
	}
	sender := mailing.NewSender(transport, conf.Mail.MaxAttempts)

	renderer := render.NewPDFRenderer(conf.Brands, conf.Service.AssetDirectory)
	store := statusstore.NewInMemoryStore()

	interactor, err := interaction.NewServiceInteractor(store, gateway, renderer, sender, conf)
	if err != nil {
		logger.Fatal("could not create service interactor. [error]: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := server.CreateRouter(interactor, conf)
	srv := server.NewServer(ctx, &conf.Server, router)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
		logger.Info("stopping service now")

		tCtx, tcancel := context.WithTimeout(context.Background(), time.Second*5)
		defer tcancel()

		if err := srv.Shutdown(tCtx); err != nil {
			logger.Fatal("couldn't shutdown server gracefully. [error]: %v", err)
		}
	}()

	logger.Info("starting %s on %s", common.ApplicationName, srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped unexpectedly. [error]: %v", err)
	}
}
