package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paybooks/paybooks-backend-go/internal/handler/http/middleware"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	supplierHandler SupplierHandler,
	invoiceHandler InvoiceHandler,
	vatReturnHandler VATReturnHandler,
	businessHandler BusinessHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paybooks"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/preview", payrollHandler.PreviewEntry)
				r.Post("/run", payrollHandler.RunPayroll)

				r.Route("/entries", func(r chi.Router) {
					r.Get("/", payrollHandler.ListEntries)
					r.Post("/", payrollHandler.CreateEntry)
					r.Get("/{id}", payrollHandler.GetEntry)
					r.Delete("/{id}", payrollHandler.DeleteEntry)
					r.Get("/{id}/payslip", payrollHandler.DownloadPayslip)
				})
			})

			r.Route("/suppliers", func(r chi.Router) {
				r.Get("/", supplierHandler.ListSuppliers)
				r.Post("/", supplierHandler.CreateSupplier)
				r.Get("/{id}", supplierHandler.GetSupplier)
				r.Put("/{id}", supplierHandler.UpdateSupplier)
				r.Delete("/{id}", supplierHandler.DeleteSupplier)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Get("/", invoiceHandler.ListInvoices)
				r.Post("/", invoiceHandler.CreateInvoice)
				r.Get("/{id}", invoiceHandler.GetInvoice)
				r.Put("/{id}", invoiceHandler.UpdateInvoice)
				r.Patch("/{id}/status", invoiceHandler.UpdateInvoiceStatus)
				r.Delete("/{id}", invoiceHandler.DeleteInvoice)
			})

			r.Route("/vat-returns", func(r chi.Router) {
				r.Get("/", vatReturnHandler.ListReturns)
				r.Post("/", vatReturnHandler.ComputeReturn)
				r.Get("/{id}", vatReturnHandler.GetReturn)
				r.Post("/{id}/submit", vatReturnHandler.SubmitReturn)
				r.Delete("/{id}", vatReturnHandler.DeleteReturn)
			})

			r.Route("/business-profile", func(r chi.Router) {
				r.Get("/", businessHandler.GetProfile)
				r.Put("/", businessHandler.UpsertProfile)
			})

			r.Get("/dashboard", dashboardHandler.GetDashboard)
		})
	})
	return r
}
