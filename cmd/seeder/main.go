package main

import (
	"context"
	"flag"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/drivers/database"
	"therapyconnect-service/internal/app/drivers/logger"
	"therapyconnect-service/internal/app/services/core/bookings"
	"therapyconnect-service/internal/app/services/core/therapists"
	"therapyconnect-service/internal/pkg/constvars"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	ownerWallet := flag.String("owner", "", "wallet address that owns the demo bookings, empty for shared records")
	skipBookings := flag.Bool("skip-bookings", false, "only seed the therapist directory")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	if *ownerWallet == "" {
		*ownerWallet = internalConfig.App.DemoWalletAddress
	}

	db := database.NewMongoDB(driverConfig)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer db.Client().Disconnect(context.Background())

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	therapistCollection := db.Collection(constvars.MongoCollectionTherapists)
	for _, therapist := range therapists.SeedTherapists() {
		if err := upsert(ctx, therapistCollection, therapist.ID, therapist); err != nil {
			log.Fatalf("Failed to seed therapist %s: %v", therapist.ID, err)
		}
		log.WithFields(logrus.Fields{
			"collection": constvars.MongoCollectionTherapists,
			"id":         therapist.ID,
		}).Info("Seeded therapist")
	}

	if *skipBookings {
		log.Info("Skipping demo bookings")
		return
	}

	bookingCollection := db.Collection(constvars.MongoCollectionBookings)
	for _, booking := range bookings.SeedBookings(*ownerWallet) {
		if err := upsert(ctx, bookingCollection, booking.ID, booking); err != nil {
			log.Fatalf("Failed to seed booking %s: %v", booking.ID, err)
		}
		log.WithFields(logrus.Fields{
			"collection": constvars.MongoCollectionBookings,
			"id":         booking.ID,
			"owner":      booking.ClientWallet,
		}).Info("Seeded booking")
	}

	log.Info("Seeding finished")
}

func upsert(ctx context.Context, collection *mongo.Collection, id string, document interface{}) error {
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, document, options.Replace().SetUpsert(true))
	return err
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionBookings).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_wallet", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionTherapists).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
	})
	return err
}
