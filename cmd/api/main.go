package main

import (
	"fmt"
	"net/http"

	"github.com/ba-mirza/qr-attend-backend/internal/config"
	appHTTP "github.com/ba-mirza/qr-attend-backend/internal/handler/http"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/cron"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/jwt"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/oauth"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/sse"
	"github.com/ba-mirza/qr-attend-backend/internal/repository/postgresql"
	authService "github.com/ba-mirza/qr-attend-backend/internal/service/auth"
	checkLogService "github.com/ba-mirza/qr-attend-backend/internal/service/checklog"
	employeeService "github.com/ba-mirza/qr-attend-backend/internal/service/employee"
	officePointService "github.com/ba-mirza/qr-attend-backend/internal/service/officepoint"
	organizationService "github.com/ba-mirza/qr-attend-backend/internal/service/organization"
	registrationQRService "github.com/ba-mirza/qr-attend-backend/internal/service/registrationqr"
	scanService "github.com/ba-mirza/qr-attend-backend/internal/service/scan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	userRepo := postgresql.NewUserRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	officePointRepo := postgresql.NewOfficePointRepository(db)
	registrationQRRepo := postgresql.NewRegistrationQRRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	checkLogRepo := postgresql.NewCheckLogRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	authSvc := authService.NewAuthService(db, userRepo, organizationRepo, jwtService, jwtRepo)
	organizationSvc := organizationService.NewOrganizationService(db, organizationRepo, officePointRepo)
	officePointSvc := officePointService.NewOfficePointService(officePointRepo, organizationRepo)
	registrationQRSvc := registrationQRService.NewRegistrationQRService(registrationQRRepo, organizationRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, organizationRepo)
	checkLogSvc := checkLogService.NewCheckLogService(checkLogRepo, organizationRepo, hub)
	scanSvc := scanService.NewScanService(officePointRepo, organizationRepo, employeeRepo, registrationQRRepo, checkLogSvc)

	scheduler := cron.NewScheduler()
	checkLogJobs := cron.NewCheckLogJobs(checkLogRepo, checkLogSvc, db)
	checkLogJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, appHTTP.RouterHandlers{
		Auth:           appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Organization:   appHTTP.NewOrganizationHandler(organizationSvc),
		OfficePoint:    appHTTP.NewOfficePointHandler(officePointSvc),
		RegistrationQR: appHTTP.NewRegistrationQRHandler(registrationQRSvc),
		Employee:       appHTTP.NewEmployeeHandler(employeeSvc),
		CheckLog:       appHTTP.NewCheckLogHandler(checkLogSvc, jwtService, hub),
		Scan:           appHTTP.NewScanHandler(scanSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
