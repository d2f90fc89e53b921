package bookings

import (
	"context"
	"errors"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Database) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBookings),
	}
}

func (repo *BookingMongoRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoFind(err, constvars.MongoCollectionBookings)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	err = cursor.All(ctx, &bookings)
	if err != nil {
		return nil, exceptions.ErrMongoDecode(err, constvars.MongoCollectionBookings)
	}
	return bookings, nil
}

func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := repo.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFind(err, constvars.MongoCollectionBookings)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) Create(ctx context.Context, booking models.Booking) error {
	_, err := repo.Collection.InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return exceptions.ErrDuplicateID
	}
	if err != nil {
		return exceptions.ErrMongoInsert(err, constvars.MongoCollectionBookings)
	}
	return nil
}

func (repo *BookingMongoRepository) Update(ctx context.Context, booking models.Booking) error {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": booking.ID}, booking)
	if err != nil {
		return exceptions.ErrMongoUpdate(err, constvars.MongoCollectionBookings)
	}
	return nil
}
