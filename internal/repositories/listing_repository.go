package repositories

import (
	"context"
	"regexp"
	"time"

	"github.com/anonto42/medishare/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listingsCollection = "listings"

// ListingRepository defines the interface for the donated medicine catalog.
// Every lookup is keyed by medicine name, which is not unique.
type ListingRepository interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	FindByName(ctx context.Context, name string) (*models.Listing, error)
	SearchNames(ctx context.Context, query string) ([]string, error)
	FindByAddress(ctx context.Context, address string) ([]models.Listing, error)
	FindByDonor(ctx context.Context, donorID uint) ([]models.Listing, error)
	GetAllListings(ctx context.Context) ([]models.Listing, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// MongoListingRepository implements ListingRepository for MongoDB
type MongoListingRepository struct {
	collection *mongo.Collection
}

// NewMongoListingRepository creates a new MongoListingRepository
func NewMongoListingRepository(db *mongo.Database) *MongoListingRepository {
	return &MongoListingRepository{collection: db.Collection(listingsCollection)}
}

// EnsureIndexes creates the lookup indexes used by name and address queries.
func (r *MongoListingRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "medicinename", Value: 1}}},
		{Keys: bson.D{{Key: "address", Value: 1}}},
		{Keys: bson.D{{Key: "donor_id", Value: 1}}},
	})
	return err
}

// insertion order; ObjectIDs are monotonic per process
var byInsertion = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

func (r *MongoListingRepository) CreateListing(ctx context.Context, listing *models.Listing) error {
	listing.ID = primitive.NewObjectID()
	listing.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, listing)
	return translate(err)
}

// FindByName returns the earliest listing with exactly this name.
func (r *MongoListingRepository) FindByName(ctx context.Context, name string) (*models.Listing, error) {
	var listing models.Listing
	opts := options.FindOne().SetSort(byInsertion)
	if err := r.collection.FindOne(ctx, bson.M{"medicinename": name}, opts).Decode(&listing); err != nil {
		return nil, translate(err)
	}
	return &listing, nil
}

// SearchNames matches query as a literal, case-insensitive substring.
func (r *MongoListingRepository) SearchNames(ctx context.Context, query string) ([]string, error) {
	filter := bson.M{"medicinename": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	opts := options.Find().
		SetSort(byInsertion).
		SetProjection(bson.M{"medicinename": 1})

	listings, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(listings))
	for _, l := range listings {
		names = append(names, l.MedicineName)
	}
	return names, nil
}

func (r *MongoListingRepository) FindByAddress(ctx context.Context, address string) ([]models.Listing, error) {
	return r.find(ctx, bson.M{"address": address}, options.Find().SetSort(byInsertion))
}

func (r *MongoListingRepository) FindByDonor(ctx context.Context, donorID uint) ([]models.Listing, error) {
	return r.find(ctx, bson.M{"donor_id": donorID}, options.Find().SetSort(byInsertion))
}

func (r *MongoListingRepository) GetAllListings(ctx context.Context) ([]models.Listing, error) {
	return r.find(ctx, bson.D{}, options.Find().SetSort(byInsertion))
}

// DeleteByName removes every listing with this name and reports how many went.
func (r *MongoListingRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"medicinename": name})
	if err != nil {
		return 0, translate(err)
	}
	return res.DeletedCount, nil
}

func (r *MongoListingRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Listing, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err = cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}
