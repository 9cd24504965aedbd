package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-admin/client"
	"hotel-admin/config"
	"hotel-admin/controllers"
	"hotel-admin/routes"
	"hotel-admin/store"
	"hotel-admin/wizard"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	api := client.New(cfg.BackendURL, cfg.HTTPTimeout)
	st := store.New(api)

	// Initial all-or-nothing load. A failure does not stop the server: the
	// data routes answer 503 with the retained error until a reload via
	// /api/state/reload succeeds.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.HTTPTimeout*2)
	if err := st.LoadAll(loadCtx); err != nil {
		log.Printf("❌ Initial data load failed: %v", err)
	} else {
		log.Println("✅ Initial data load completed")
	}
	cancelLoad()

	manager := wizard.NewManager(api, st)

	// Controllers
	authController := controllers.NewAuthController(cfg.AdminUsername, cfg.AdminPassword)
	stateController := controllers.NewStateController(st)
	customerController := controllers.NewEntityController(
		"customer", api.Customers, st.Customers, st.AddCustomer, st.UpdateCustomer, st.RemoveCustomer, st.RefreshCustomers)
	employeeController := controllers.NewEntityController(
		"employee", api.Employees, st.Employees, st.AddEmployee, st.UpdateEmployee, st.RemoveEmployee, st.RefreshEmployees)
	roomController := controllers.NewEntityController(
		"room", api.Rooms, st.Rooms, st.AddRoom, st.UpdateRoom, st.RemoveRoom, st.RefreshRooms)
	serviceController := controllers.NewEntityController(
		"service", api.Services, st.Services, st.AddService, st.UpdateService, st.RemoveService, st.RefreshServices)
	reservationController := controllers.NewReservationController(api, st)
	wizardController := controllers.NewWizardController(manager, st)

	router := routes.SetupRouter(
		authController,
		stateController,
		customerController,
		employeeController,
		roomController,
		serviceController,
		reservationController,
		wizardController,
		st,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s (backend: %s)", addr, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
