package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

// containsFold matches s anywhere in the field, case-insensitively. s is
// matched literally.
func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// buildOrderFilter translates an OrderFilter into a MongoDB query document.
func buildOrderFilter(f ports.OrderFilter) bson.M {
	q := bson.M{}

	if f.UserID != "" {
		q["userId"] = f.UserID
	}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.StatusNot != "" {
		q["status"] = bson.M{"$ne": string(f.StatusNot)}
	}
	if f.City != "" {
		q["deliveryAddress.city"] = f.City
	}
	if f.District != "" {
		q["deliveryAddress.district"] = f.District
	}
	if f.Ward != "" {
		q["deliveryAddress.ward"] = f.Ward
	}
	if f.PaymentMethod != "" {
		q["paymentMethod"] = f.PaymentMethod
	}

	if !f.DateFrom.IsZero() || !f.DateTo.IsZero() {
		window := bson.M{}
		if !f.DateFrom.IsZero() {
			window["$gte"] = f.DateFrom
		}
		if !f.DateTo.IsZero() {
			window["$lte"] = f.DateTo
		}
		q["orderDate"] = window
	}

	if f.Keyword != "" {
		or := bson.A{
			bson.M{"deliveryAddress.fullName": containsFold(f.Keyword)},
			bson.M{"deliveryAddress.phone": containsFold(f.Keyword)},
			bson.M{"items.productName": containsFold(f.Keyword)},
		}
		if oid, ok := objectID(f.Keyword); ok {
			or = append(bson.A{bson.M{"_id": oid}}, or...)
		}
		q["$or"] = or
	}

	return q
}

// buildItemFilter translates an ItemFilter into a MongoDB query document.
func buildItemFilter(f ports.ItemFilter) bson.M {
	q := bson.M{}
	if !f.IncludeInactive {
		q["isActive"] = true
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Search != "" {
		q["name"] = containsFold(f.Search)
	}
	return q
}

func buildComboFilter(f ports.ComboFilter) bson.M {
	q := bson.M{}
	if f.Active != nil {
		q["isActive"] = *f.Active
	}
	return q
}
