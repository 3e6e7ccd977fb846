package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type ComboRepository struct {
	col *mongo.Collection
}

func NewComboRepository(db *mongo.Database) *ComboRepository {
	return &ComboRepository{col: db.Collection(collectionCombos)}
}

func (r *ComboRepository) Create(ctx context.Context, c *domain.Combo) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert combo: %w", err)
	}
	c.ID = insertedHex(res)
	return nil
}

func (r *ComboRepository) FindByID(ctx context.Context, id string) (*domain.Combo, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrComboNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Combo
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComboNotFound
		}
		return nil, fmt.Errorf("find combo: %w", err)
	}
	return &c, nil
}

func (r *ComboRepository) List(ctx context.Context, filter ports.ComboFilter) ([]*domain.Combo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, buildComboFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list combos: %w", err)
	}
	combos := make([]*domain.Combo, 0)
	if err := cur.All(ctx, &combos); err != nil {
		return nil, fmt.Errorf("list combos: %w", err)
	}
	return combos, nil
}

func (r *ComboRepository) Update(ctx context.Context, id string, upd ports.ComboUpdate) (*domain.Combo, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrComboNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var c domain.Combo
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": comboSetDocument(upd)}, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComboNotFound
		}
		return nil, fmt.Errorf("update combo: %w", err)
	}
	return &c, nil
}

func (r *ComboRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrComboNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete combo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrComboNotFound
	}
	return nil
}

func comboSetDocument(upd ports.ComboUpdate) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Items != nil {
		set["items"] = upd.Items
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.OriginalPrice != nil {
		set["originalPrice"] = *upd.OriginalPrice
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.StartDate != nil {
		set["startDate"] = upd.StartDate.UTC()
	}
	if upd.EndDate != nil {
		set["endDate"] = upd.EndDate.UTC()
	}
	return set
}
