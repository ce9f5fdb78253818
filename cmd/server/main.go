package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/accounted4/go-accounted4"
	"github.com/accounted4/go-accounted4/internal/config"
	"github.com/accounted4/go-accounted4/internal/metrics"
	"github.com/accounted4/go-accounted4/providers"
	"github.com/accounted4/go-accounted4/session"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Error().Err(err).Msg("Error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("Recovered from panic: %v", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	configureLogging(c)
	displayAppname(c.GetAppName())

	a4, err := newAccounted4(c)
	if err != nil {
		return fmt.Errorf("newAccounted4 %w", err)
	}
	if err := metrics.Register(nil); err != nil {
		return fmt.Errorf("metrics.Register %w", err)
	}

	server := &http.Server{Addr: c.GetListenAddr(), Handler: newRouter(a4)}
	go listenAndServe(server)
	waitForStopSignal()
	returnError = shutdown(server)
	return returnError
}

func configureLogging(c config.Config) {
	if c.GetEnv() == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func newAccounted4(c config.Config) (*accounted4.Accounted4, error) {
	sessions := session.NewManager([]byte(c.GetSessionSecret()), newSessionRepo(c))

	providerOptions := make(map[string]providers.Options)
	for _, name := range c.GetEnabledProviders() {
		providerOptions[name] = c.GetProviderOptions(name)
	}

	return accounted4.New(accounted4.Config{
		Hostname:        c.GetHostname(),
		Port:            c.GetPublicPort(),
		UseHTTPS:        c.GetUseHTTPS(),
		DefaultProvider: c.GetDefaultProvider(),
		Providers:       providerOptions,
	}, sessions)
}

func newSessionRepo(c config.Config) session.Repo {
	if c.GetSessionBackend() == "redis" {
		return session.NewRedisRepo(c.GetRedisAddr(), c.GetRedisDB(), c.GetSessionTTL())
	}
	return session.NewInMemoryRepo()
}

func newRouter(a4 *accounted4.Accounted4) *http.ServeMux {
	mux := http.NewServeMux()
	a4.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /user/info", accounted4.ChainMiddleware(userInfoHandler, a4.Auth()))
	return mux
}

func userInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "logged in")
}

func listenAndServe(server *http.Server) error {
	log.Info().Msgf("Server listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
