package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/contactdesk/contacts-api/internal/core/domain"
	"github.com/contactdesk/contacts-api/internal/core/ports"
)

const collectionContacts = "contacts"

type ContactRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{db: db, col: db.Collection(collectionContacts)}
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionContacts)
	if err != nil {
		return err
	}
	contact.ID = id

	if _, err := r.col.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// FindByID retrieves a contact by primary key scoped to its owner. The
// user_id predicate is part of the query itself, so a contact under another
// user produces the same ErrContactNotFound as a missing one.
func (r *ContactRepository) FindByID(ctx context.Context, userID, contactID int64) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var contact domain.Contact
	err := r.col.FindOne(ctx, bson.M{"_id": contactID, "user_id": userID}).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return &contact, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": contact.ID, "user_id": contact.UserID},
		bson.M{"$set": bson.M{
			"first_name": contact.FirstName,
			"last_name":  contact.LastName,
			"email":      contact.Email,
			"phone":      contact.Phone,
			"updated_at": contact.UpdatedAt,
		}})
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, userID, contactID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": contactID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// Search returns one page of contacts matching the filter, ordered by
// ascending _id, plus the total match count across all pages.
func (r *ContactRepository) Search(ctx context.Context, filter ports.SearchContactsFilter) ([]*domain.Contact, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildSearchQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Page-1) * int64(filter.Size)).
		SetLimit(int64(filter.Size))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := make([]*domain.Contact, 0, filter.Size)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, fmt.Errorf("decode contacts: %w", err)
	}

	return contacts, total, nil
}

// buildSearchQuery translates the filter into a Mongo query document. The
// user_id scope is unconditional; each present substring filter conjoins an
// additional case-insensitive condition, and absent filters contribute
// nothing. Filter text is regex-quoted so user input matches literally.
func buildSearchQuery(filter ports.SearchContactsFilter) bson.M {
	query := bson.M{"user_id": filter.UserID}

	if filter.Name != "" {
		pattern := containsPattern(filter.Name)
		query["$or"] = bson.A{
			bson.M{"first_name": pattern},
			bson.M{"last_name": pattern},
		}
	}
	if filter.Email != "" {
		query["email"] = containsPattern(filter.Email)
	}
	if filter.Phone != "" {
		query["phone"] = containsPattern(filter.Phone)
	}

	return query
}

func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// EnsureIndexes creates the index backing every scoped lookup and search.
func (r *ContactRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
