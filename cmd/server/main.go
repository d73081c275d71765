// cmd/server/main.go
package main

import (
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/carpetland/crm-backend/internal/auth"
	"github.com/carpetland/crm-backend/internal/config"
	"github.com/carpetland/crm-backend/internal/controller"
	"github.com/carpetland/crm-backend/internal/db"
	"github.com/carpetland/crm-backend/internal/logging"
	"github.com/carpetland/crm-backend/internal/queue"
	"github.com/carpetland/crm-backend/internal/repository"
	"github.com/carpetland/crm-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}
	logging.Setup()

	cfg := config.Load()

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	customerRepo := &repository.CustomerRepository{DB: conn}
	productRepo := &repository.ProductRepository{DB: conn}
	enquiryRepo := &repository.EnquiryRepository{DB: conn}
	quoteRepo := &repository.QuoteRepository{DB: conn}
	jobRepo := &repository.JobRepository{DB: conn}
	profileRepo := &repository.ProfileRepository{DB: conn}

	// With a broker configured, the standalone worker consumes enquiry
	// events; otherwise an in-process subscriber handles them.
	var events queue.Publisher
	if cfg.AMQPURL != "" {
		publisher, err := queue.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("failed to connect to AMQP broker: %v", err)
		}
		defer publisher.Close()
		events = publisher
	} else {
		q := queue.NewInMemoryQueue()
		ackWorker := service.NewAckWorker(enquiryRepo, customerRepo, mockSend)
		queue.StartEnquiryAckSubscriber(q, ackWorker.Process)
		events = q
	}

	importService := &service.ImportService{
		CustomerRepo: customerRepo,
		ProductRepo:  productRepo,
	}
	enquiryService := &service.EnquiryService{
		CustomerRepo: customerRepo,
		EnquiryRepo:  enquiryRepo,
		Events:       events,
	}
	dashboardService := &service.DashboardService{
		QuoteRepo:   quoteRepo,
		JobRepo:     jobRepo,
		ProductRepo: productRepo,
	}
	authService := &service.AuthService{ProfileRepo: profileRepo}

	sessions := &auth.Sessions{Secret: cfg.SessionKey}

	enquiryController := &controller.EnquiryController{EnquiryService: enquiryService}
	importController := &controller.ImportController{ImportService: importService}
	dashboardController := &controller.DashboardController{DashboardService: dashboardService}
	authController := &controller.AuthController{AuthService: authService, Sessions: sessions}

	r := chi.NewRouter()

	// Public routes
	r.Post("/enquiries", enquiryController.CreateEnquiry)
	r.Post("/auth/signup", authController.SignUp)
	r.Post("/auth/signin", authController.SignIn)
	r.Post("/auth/signout", authController.SignOut)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireAuth)
		r.Get("/auth/me", authController.Me)
		r.Post("/import", importController.ImportFile)
		r.Get("/dashboard/quotes/recent", dashboardController.RecentQuotes)
		r.Get("/dashboard/jobs/upcoming", dashboardController.UpcomingJobs)
		r.Get("/dashboard/inventory/low-stock", dashboardController.LowStock)
		r.Get("/dashboard/quotes/follow-ups", dashboardController.FollowUps)
		r.Post("/quotes/{id}/follow-up", dashboardController.MarkFollowedUp)
	})

	log.Infof("server running on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// mockSend stands in for a real mail or SMS integration.
func mockSend(msg string) bool {
	return rand.Float64() < 0.9
}
