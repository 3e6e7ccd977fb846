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

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

// Create inserts a new order and sets its ID.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	o.ID = insertedHex(res)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

// List returns the orders matching filter, newest first.
func (r *OrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cur, err := r.col.Find(ctx, buildOrderFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]*domain.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Update applies upd in a single FindOneAndUpdate. With a non-empty expected
// status the filter also matches on status, which makes the write a
// compare-and-set against concurrent transitions.
func (r *OrderRepository) Update(ctx context.Context, id string, expected domain.OrderStatus, upd ports.OrderUpdate) (*domain.Order, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	if expected != "" {
		filter["status"] = string(expected)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var o domain.Order
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": orderSetDocument(upd)}, opts).Decode(&o)
	if err == nil {
		return &o, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if expected == "" {
		return nil, domain.ErrOrderNotFound
	}

	// Distinguish "gone" from "status moved underneath us".
	n, cerr := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if cerr != nil {
		return nil, fmt.Errorf("update order: %w", cerr)
	}
	if n == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return nil, domain.ErrOrderConflict
}

func orderSetDocument(upd ports.OrderUpdate) bson.M {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.UserID != nil {
		set["userId"] = *upd.UserID
	}
	if upd.Status != nil {
		set["status"] = string(*upd.Status)
	}
	if upd.DeliveryAddress != nil {
		set["deliveryAddress"] = upd.DeliveryAddress
	}
	if upd.Items != nil {
		set["items"] = upd.Items
	}
	if upd.PaymentMethod != nil {
		set["paymentMethod"] = *upd.PaymentMethod
	}
	if upd.TotalAmount != nil {
		set["totalAmount"] = *upd.TotalAmount
	}
	if upd.Note != nil {
		set["note"] = *upd.Note
	}
	if upd.OrderDate != nil {
		set["orderDate"] = upd.OrderDate.UTC()
	}
	return set
}
