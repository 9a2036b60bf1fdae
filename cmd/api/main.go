package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/paybooks/paybooks-backend-go/internal/config"
	appHTTP "github.com/paybooks/paybooks-backend-go/internal/handler/http"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/database"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/jwt"
	"github.com/paybooks/paybooks-backend-go/internal/pkg/oauth"
	"github.com/paybooks/paybooks-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/paybooks/paybooks-backend-go/internal/service/auth"
	businessService "github.com/paybooks/paybooks-backend-go/internal/service/business"
	dashboardService "github.com/paybooks/paybooks-backend-go/internal/service/dashboard"
	employeeService "github.com/paybooks/paybooks-backend-go/internal/service/employee"
	invoiceService "github.com/paybooks/paybooks-backend-go/internal/service/invoice"
	payrollService "github.com/paybooks/paybooks-backend-go/internal/service/payroll"
	supplierService "github.com/paybooks/paybooks-backend-go/internal/service/supplier"
	vatReturnService "github.com/paybooks/paybooks-backend-go/internal/service/vatreturn"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	businessRepo := postgresql.NewBusinessRepository(db)
	supplierRepo := postgresql.NewSupplierRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	vatReturnRepo := postgresql.NewVATReturnRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, businessRepo)
	supplierSvc := supplierService.NewSupplierService(supplierRepo)
	invoiceSvc := invoiceService.NewInvoiceService(invoiceRepo, supplierRepo)
	vatReturnSvc := vatReturnService.NewVATReturnService(vatReturnRepo)
	businessSvc := businessService.NewBusinessService(businessRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	supplierHandler := appHTTP.NewSupplierHandler(supplierSvc)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)
	vatReturnHandler := appHTTP.NewVATReturnHandler(vatReturnSvc)
	businessHandler := appHTTP.NewBusinessHandler(businessSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		payrollHandler,
		supplierHandler,
		invoiceHandler,
		vatReturnHandler,
		businessHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
