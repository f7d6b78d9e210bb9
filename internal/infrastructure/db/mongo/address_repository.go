package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/contactdesk/contacts-api/internal/core/domain"
)

const collectionAddresses = "addresses"

type AddressRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{db: db, col: db.Collection(collectionAddresses)}
}

func (r *AddressRepository) Create(ctx context.Context, address *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionAddresses)
	if err != nil {
		return err
	}
	address.ID = id

	if _, err := r.col.InsertOne(ctx, address); err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// FindByID retrieves an address by primary key scoped to its contact. An
// address under a different contact is indistinguishable from a missing one.
func (r *AddressRepository) FindByID(ctx context.Context, contactID, addressID int64) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var address domain.Address
	err := r.col.FindOne(ctx, bson.M{"_id": addressID, "contact_id": contactID}).Decode(&address)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return &address, nil
}

func (r *AddressRepository) Update(ctx context.Context, address *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": address.ID, "contact_id": address.ContactID},
		bson.M{"$set": bson.M{
			"street":      address.Street,
			"city":        address.City,
			"province":    address.Province,
			"country":     address.Country,
			"postal_code": address.PostalCode,
			"updated_at":  address.UpdatedAt,
		}})
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, contactID, addressID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": addressID, "contact_id": contactID})
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) ListByContact(ctx context.Context, contactID int64) ([]*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"contact_id": contactID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cursor.Close(ctx)

	addresses := make([]*domain.Address, 0)
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}
	return addresses, nil
}

// DeleteByContact removes every address of the contact. Used by the
// contact-delete cascade; deleting zero rows is not an error.
func (r *AddressRepository) DeleteByContact(ctx context.Context, contactID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"contact_id": contactID}); err != nil {
		return fmt.Errorf("delete addresses by contact: %w", err)
	}
	return nil
}

// EnsureIndexes creates the index backing the per-contact scoped lookups.
func (r *AddressRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "contact_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
