package main

import (
	"encoding/json"
	"math/rand"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/carpetland/crm-backend/internal/config"
	"github.com/carpetland/crm-backend/internal/db"
	"github.com/carpetland/crm-backend/internal/logging"
	"github.com/carpetland/crm-backend/internal/queue"
	"github.com/carpetland/crm-backend/internal/repository"
	"github.com/carpetland/crm-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}
	logging.Setup()

	cfg := config.Load()
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is not set; the worker needs a broker to consume from")
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	enquiryRepo := &repository.EnquiryRepository{DB: conn}
	customerRepo := &repository.CustomerRepository{DB: conn}
	worker := service.NewAckWorker(enquiryRepo, customerRepo, mockSend)

	broker, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer broker.Close()

	ch, err := broker.Channel()
	if err != nil {
		log.Fatalf("failed to open a channel: %v", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.TopicEnquiryIntake,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatalf("failed to register consumer: %v", err)
	}

	log.Info("worker running, waiting for enquiry events")

	for d := range msgs {
		var event queue.EnquiryEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			log.WithError(err).Warn("invalid job body, dropping")
			d.Ack(false)
			continue
		}

		if err := worker.Process(event.EnquiryID); err != nil {
			log.WithError(err).WithField("enquiry_id", event.EnquiryID).Warn("failed to process enquiry event")
			// One redelivery, then drop: the enquiry stays unacknowledged
			// in the store where it can be found.
			if !d.Redelivered {
				d.Nack(false, true)
				continue
			}
			log.WithField("enquiry_id", event.EnquiryID).Error("dropping enquiry event after redelivery")
		}

		d.Ack(false)
	}
}

// mockSend stands in for a real mail or SMS integration.
func mockSend(msg string) bool {
	return rand.Float64() < 0.9
}
