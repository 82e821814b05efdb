package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/VladPetriv/money/internal/service"
	"github.com/VladPetriv/money/pkg/currency"
	"github.com/VladPetriv/money/pkg/database"
	"github.com/VladPetriv/money/pkg/errs"
	"github.com/VladPetriv/money/pkg/logger"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

type server struct {
	logger   *logger.Logger
	services service.Services
	database database.Database
	srvAddr  string
	srv      *fasthttp.Server
}

// Options represents options that required for creating new instance of rest server.
type Options struct {
	Logger   *logger.Logger
	Services service.Services
	// Database is optional, when set health check pings it.
	Database database.Database
	// ServerAddress represents an address on which we'll start a server.
	ServerAddress string
}

// New creates a new instance of rest server.
func New(opts Options) *server {
	s := &server{
		logger:   opts.Logger,
		services: opts.Services,
		database: opts.Database,
		srvAddr:  opts.ServerAddress,
	}

	s.srv = &fasthttp.Server{
		Name:    "currencies",
		Handler: s.Handler(),
	}

	return s
}

// Handler returns request handler with all routes registered.
func (s *server) Handler() fasthttp.RequestHandler {
	r := router.New()
	r.GET("/health", s.health)
	r.GET("/currencies", s.listCurrencies)
	r.GET("/currencies/{code}", s.getCurrency)
	r.GET("/currencies/{code}/format", s.formatAmount)

	return r.Handler
}

// ListenAndServe starts serving requests, it blocks until server is shut down.
func (s *server) ListenAndServe() error {
	s.logger.Info().Str("address", s.srvAddr).Msg("starting rest server")

	err := s.srv.ListenAndServe(s.srvAddr)
	if err != nil {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

// Shutdown gracefully stops the server.
func (s *server) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}

func (s *server) health(ctx *fasthttp.RequestCtx) {
	if s.database != nil {
		err := s.database.Ping(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("ping database")
			s.writeJSON(ctx, fasthttp.StatusServiceUnavailable, errs.New("database is unavailable"))
			return
		}
	}

	s.writeJSON(ctx, fasthttp.StatusOK, healthResponse{Status: "ok"})
}

func (s *server) listCurrencies(ctx *fasthttp.RequestCtx) {
	logger := s.logger.With().Str("name", "server.listCurrencies").Logger()

	filter, err := parseListCurrenciesFilter(ctx.QueryArgs())
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	logger.Debug().Any("filter", filter).Msg("got args")

	currencies, err := s.services.Currency.List(ctx, filter)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, listCurrenciesResponse{Currencies: currencies})
}

func (s *server) getCurrency(ctx *fasthttp.RequestCtx) {
	code, _ := ctx.UserValue("code").(string)

	c, err := s.services.Currency.Get(ctx, code)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, c)
}

func (s *server) formatAmount(ctx *fasthttp.RequestCtx) {
	code, _ := ctx.UserValue("code").(string)

	c, err := s.services.Currency.Get(ctx, code)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	amount, err := parseAmount(ctx.QueryArgs(), c)
	if err != nil {
		s.writeError(ctx, err)
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, formatAmountResponse{
		Currency:  c.String(),
		Amount:    amount.String(),
		Subunits:  amount.Subunits(c),
		Formatted: amount.Format(c),
	})
}

func (s *server) writeError(ctx *fasthttp.RequestCtx, err error) {
	if !errs.IsExpected(err) {
		s.logger.Error().Err(err).Str("path", string(ctx.Path())).Msg("handle request")
		s.writeJSON(ctx, fasthttp.StatusInternalServerError, errs.New("internal server error"))
		return
	}

	status := fasthttp.StatusBadRequest
	if errors.Is(err, currency.ErrUnknownCurrency) {
		status = fasthttp.StatusNotFound
	}

	s.writeJSON(ctx, status, errs.New(errs.Message(err)))
}

func (s *server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("marshal response body")
		ctx.Error(fasthttp.StatusMessage(fasthttp.StatusInternalServerError), fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}
