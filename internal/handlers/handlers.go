package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/fundslock/docs"
	authhandlers "github.com/GlebRadaev/fundslock/internal/handlers/auth"
	depositshandlers "github.com/GlebRadaev/fundslock/internal/handlers/deposits"
	vaulthandlers "github.com/GlebRadaev/fundslock/internal/handlers/vault"
	"github.com/GlebRadaev/fundslock/internal/service"
	"github.com/GlebRadaev/fundslock/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	DepositBatch(w http.ResponseWriter, r *http.Request)
	GetDeposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetOwnerDeposits(w http.ResponseWriter, r *http.Request)
	GetQuote(w http.ResponseWriter, r *http.Request)
	GetPayouts(w http.ResponseWriter, r *http.Request)
}

type VaultHandler interface {
	GetTiers(w http.ResponseWriter, r *http.Request)
	SetTiers(w http.ResponseWriter, r *http.Request)
	Fund(w http.ResponseWriter, r *http.Request)
	GetVault(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	DepositHandler DepositHandler
	VaultHandler   VaultHandler
	Tokens         auth.TokenValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		DepositHandler: depositshandlers.New(s.DepositService, s.WithdrawalService),
		VaultHandler:   vaulthandlers.New(s.VaultService),
		Tokens:         s.Tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.Tokens))
			r.Get("/user/payouts", h.DepositHandler.GetPayouts)
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.Deposit)
				r.Post("/batch", h.DepositHandler.DepositBatch)
				r.Get("/{id}", h.DepositHandler.GetDeposit)
				r.Post("/{id}/withdraw", h.DepositHandler.Withdraw)
			})
			r.Get("/owners/{owner}/deposits", h.DepositHandler.GetOwnerDeposits)
			r.Get("/interest/quote", h.DepositHandler.GetQuote)
			r.Route("/vault", func(r chi.Router) {
				r.Get("/", h.VaultHandler.GetVault)
				r.Get("/tiers", h.VaultHandler.GetTiers)
				r.Put("/tiers", h.VaultHandler.SetTiers)
				r.Post("/fund", h.VaultHandler.Fund)
			})
		})
	})

	return r
}
