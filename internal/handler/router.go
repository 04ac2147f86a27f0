package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ahmadqo/school-management-system/docs" // generated docs
	appMiddleware "github.com/ahmadqo/school-management-system/internal/middleware"
	"github.com/ahmadqo/school-management-system/internal/model"
	"github.com/ahmadqo/school-management-system/internal/response"
)

type Router struct {
	authHandler      *AuthHandler
	studentHandler   *StudentHandler
	transportHandler *TransportHandler
	employeeHandler  *EmployeeHandler
	feeHandler       *FeeHandler
	adminHandler     *AdminHandler
	jwtSecret        string
}

func NewRouter(
	authHandler *AuthHandler,
	studentHandler *StudentHandler,
	transportHandler *TransportHandler,
	employeeHandler *EmployeeHandler,
	feeHandler *FeeHandler,
	adminHandler *AdminHandler,
	jwtSecret string,
) *Router {
	return &Router{
		authHandler:      authHandler,
		studentHandler:   studentHandler,
		transportHandler: transportHandler,
		employeeHandler:  employeeHandler,
		feeHandler:       feeHandler,
		adminHandler:     adminHandler,
		jwtSecret:        jwtSecret,
	}
}

func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "Server is running", map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {

		// Auth (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", ro.authHandler.Login)
			r.Post("/refresh", ro.authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(appMiddleware.Authenticate(ro.jwtSecret))
				r.Get("/me", ro.authHandler.Me)
				r.Post("/change-password", ro.authHandler.ChangePassword)
			})
		})

		// Student dashboard
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.Authenticate(ro.jwtSecret))
			r.Use(appMiddleware.RequireRole(model.RoleStudent))

			r.Get("/me/results", ro.studentHandler.MyResults)
			r.Get("/me/tuition-fee", ro.feeHandler.MyTuitionFee)
		})

		// Admin panel
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.Authenticate(ro.jwtSecret))
			r.Use(appMiddleware.RequireRole(model.RoleAdmin))

			r.Route("/students", func(r chi.Router) {
				r.Get("/", ro.studentHandler.GetAll)
				r.Post("/", ro.studentHandler.Create)
				r.Get("/search", ro.studentHandler.Search)
				r.Get("/{id}", ro.studentHandler.GetByID)
				r.Get("/{id}/report-cards", ro.feeHandler.ReportCards)
				r.Get("/{id}/payments", ro.feeHandler.Payments)
				r.Post("/{id}/no-dues", ro.feeHandler.GenerateNoDues)
				r.Get("/{id}/no-dues/pdf", ro.feeHandler.DownloadNoDuesPDF)
			})

			r.Post("/hostelers", ro.transportHandler.AddHosteler)
			r.Post("/bus-holders", ro.transportHandler.AddBusHolder)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", ro.employeeHandler.GetAll)
				r.Post("/", ro.employeeHandler.Create)
				r.Get("/{id}", ro.employeeHandler.GetByID)
				r.Get("/{id}/salary-slips", ro.employeeHandler.SalarySlips)
			})
			r.Post("/salary-slips", ro.employeeHandler.IssueSalarySlip)

			r.Post("/fees/payments", ro.feeHandler.RecordPayment)
			r.Post("/report-cards", ro.feeHandler.AddReportCard)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/backup", ro.adminHandler.Backup)
				r.Post("/restore", ro.adminHandler.Restore)
				r.Get("/logs", ro.adminHandler.Logs)
			})
		})
	})

	return r
}
