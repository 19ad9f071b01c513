package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lumina-hotels/hris-backend-go/internal/config"
	appHTTP "github.com/lumina-hotels/hris-backend-go/internal/handler/http"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/database"
	"github.com/lumina-hotels/hris-backend-go/internal/repository/postgresql"
	dtrService "github.com/lumina-hotels/hris-backend-go/internal/service/dtr"
	employeeService "github.com/lumina-hotels/hris-backend-go/internal/service/employee"
	payrollService "github.com/lumina-hotels/hris-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	importSvc := dtrService.NewImportService(employeeRepo, timeRecordRepo, cfg.Import.BatchSize, logger)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, timeRecordRepo, payslipRepo, logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	dtrHandler := appHTTP.NewDTRHandler(importSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.CORSOrigins,
		dtrHandler,
		payrollHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
