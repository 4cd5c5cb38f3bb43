package router

import (
	"crm/backend/foundation/web"
	"crm/backend/internal/auth"
	"crm/backend/internal/middleware"
	"crm/backend/internal/pkg/cache"
	"crm/backend/internal/pkg/repository/postgresql"
	"crm/backend/internal/service"

	"github.com/redis/go-redis/v9"

	"crm/backend/internal/repository/postgres/attendance"
	"crm/backend/internal/repository/postgres/employee"
	"crm/backend/internal/repository/postgres/user"

	attendance_controller "crm/backend/internal/controller/http/v1/attendance"
	auth_controller "crm/backend/internal/controller/http/v1/auth"
	employee_controller "crm/backend/internal/controller/http/v1/employee"
	"crm/backend/internal/controller/http/v1/file"
)

type Router struct {
	*web.App
	postgresDB     *postgresql.Database
	redisDB        *redis.Client
	port           string
	auth           *auth.Auth
	store          service.PhotoStore
	mediaDir       string
	allowedOrigins []string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	store service.PhotoStore,
	mediaDir string,
	allowedOrigins []string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		store,
		mediaDir,
		allowedOrigins,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORSMiddleware(r.allowedOrigins))

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	employeePostgres := employee.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)

	todayCache := cache.NewTodayCache(r.redisDB)

	// controller
	authController := auth_controller.NewController(userPostgres, r.auth)
	employeeController := employee_controller.NewController(employeePostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres, userPostgres, r.store, todayCache)

	fileC := file.NewController(r.mediaDir)

	// #auth
	r.Post("/auth/register", authController.Register)
	r.Post("/auth/login", authController.SignIn)

	r.GET("/media/*filepath", fileC.File)
	r.HEAD("/media/*filepath", fileC.File)

	// #employee
	r.Get("/employees", employeeController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/employees", employeeController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/employees/active", employeeController.GetActiveList, middleware.Authenticate(r.auth, auth.RoleEmployee, auth.RoleAdmin))
	r.Get("/employees/user/:userId", employeeController.GetByUserId, middleware.Authenticate(r.auth, auth.RoleEmployee, auth.RoleAdmin))
	r.Get("/employees/:id", employeeController.GetById, middleware.Authenticate(r.auth, auth.RoleEmployee, auth.RoleAdmin))
	r.Get("/employees/:id/qrcode", employeeController.QrCode, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/employees/:id", employeeController.Update, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/employees/:id/activate", employeeController.Activate, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/employees/:id/deactivate", employeeController.Deactivate, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/employees/:id", employeeController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Get("/attendances", attendanceController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/attendances", attendanceController.Create, middleware.Authenticate(r.auth, auth.RoleEmployee, auth.RoleAdmin))
	r.Get("/attendances/export", attendanceController.ExportExcel, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/attendances/export/pdf", attendanceController.ExportPDF, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/attendances/user/:userId", attendanceController.GetListByUser, middleware.Authenticate(r.auth, auth.RoleEmployee, auth.RoleAdmin))
	r.Get("/attendances/employee/:employeeId", attendanceController.GetListByEmployee, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/attendances/today/:employeeId", attendanceController.GetToday, middleware.Authenticate(r.auth, auth.RoleEmployee, auth.RoleAdmin))
	r.Get("/attendances/:id", attendanceController.GetById, middleware.Authenticate(r.auth, auth.RoleEmployee, auth.RoleAdmin))
	r.Put("/attendances/:id/checkout", attendanceController.CheckOut, middleware.Authenticate(r.auth, auth.RoleEmployee, auth.RoleAdmin))
	r.Put("/attendances/:id", attendanceController.Update, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/attendances/:id", attendanceController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
