package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"netondemand/cmd"
	_ "netondemand/docs"
	httpin "netondemand/internal/adapters/in/http"
	"netondemand/internal/adapters/out/postgres/changerepo"
	"netondemand/internal/adapters/out/postgres/instancerepo"
	"netondemand/internal/adapters/out/postgres/orderrepo"
	"netondemand/internal/adapters/out/postgres/servicerepo"
	"netondemand/internal/generated/servers"
	"netondemand/internal/jobs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	validateOpenAPIContract(configs.OpenAPIPath)

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		OpenAPIPath: goDotEnvVariable("OPENAPI_PATH"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// validateOpenAPIContract fails fast when the served contract no longer
// parses, so a broken contract is caught at startup rather than by a client.
func validateOpenAPIContract(path string) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		log.Fatalf("Error loading OpenAPI contract %s: %v", path, err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		log.Fatalf("OpenAPI contract %s is invalid: %v", path, err)
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&servicerepo.ServiceDTO{},
		&orderrepo.OrderDTO{},
		&instancerepo.InstanceDTO{},
		&changerepo.ChangeDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Order numbers are issued from a dedicated sequence rather than a
	// serial column, so repositories can reserve numbers ahead of insert.
	if err := gormDB.Exec("CREATE SEQUENCE IF NOT EXISTS order_number_seq").Error; err != nil {
		log.Fatalf("Error creating order number sequence: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	jobManager := jobs.NewJobManager(
		app.CreateProcessOrdersCommandHandler(),
		app.CreateApplyScheduledChangesCommandHandler(),
		slog.Default(),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRequestBandwidthChangeCommandHandler(),
		app.CreateScheduleBandwidthChangeCommandHandler(),
		app.CreateApplyBandwidthChangeCommandHandler(),
		app.CreateCancelBandwidthChangeCommandHandler(),
		app.CreateGetAvailableServicesQueryHandler(),
		app.CreateGetCompanyOrdersQueryHandler(),
		app.CreateGetOrderByNumberQueryHandler(),
		app.CreateGetCompanyInstancesQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
