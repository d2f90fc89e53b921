package therapists

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

type TherapistMongoRepository struct {
	Collection *mongo.Collection
}

func NewTherapistMongoRepository(db *mongo.Database) contracts.TherapistRepository {
	return &TherapistMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionTherapists),
	}
}

func (repo *TherapistMongoRepository) FindAll(ctx context.Context) ([]models.Therapist, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoFind(err, constvars.MongoCollectionTherapists)
	}
	defer cursor.Close(ctx)

	therapists := []models.Therapist{}
	err = cursor.All(ctx, &therapists)
	if err != nil {
		return nil, exceptions.ErrMongoDecode(err, constvars.MongoCollectionTherapists)
	}
	return therapists, nil
}

func (repo *TherapistMongoRepository) FindByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	var therapist models.Therapist
	err := repo.Collection.FindOne(ctx, bson.M{"_id": therapistID}).Decode(&therapist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFind(err, constvars.MongoCollectionTherapists)
	}
	return &therapist, nil
}

func (repo *TherapistMongoRepository) Create(ctx context.Context, therapist models.Therapist) error {
	_, err := repo.Collection.InsertOne(ctx, therapist)
	if err != nil {
		return exceptions.ErrMongoInsert(err, constvars.MongoCollectionTherapists)
	}
	return nil
}

func (repo *TherapistMongoRepository) UpdateImageURL(ctx context.Context, therapistID, imageURL string) error {
	_, err := repo.Collection.UpdateOne(ctx,
		bson.M{"_id": therapistID},
		bson.M{"$set": bson.M{"image_url": imageURL}},
	)
	if err != nil {
		return exceptions.ErrMongoUpdate(err, constvars.MongoCollectionTherapists)
	}
	return nil
}
