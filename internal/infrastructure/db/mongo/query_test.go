package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

func TestBuildOrderFilter_Empty(t *testing.T) {
	assert.Empty(t, buildOrderFilter(ports.OrderFilter{}))
}

func TestBuildOrderFilter_Conjunction(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	q := buildOrderFilter(ports.OrderFilter{
		UserID:        "u1",
		Status:        domain.StatusPending,
		City:          "Hanoi",
		District:      "Ba Dinh",
		Ward:          "Kim Ma",
		PaymentMethod: "cash",
		DateFrom:      from,
		DateTo:        to,
	})

	assert.Equal(t, "u1", q["userId"])
	assert.Equal(t, "Pending", q["status"])
	assert.Equal(t, "Hanoi", q["deliveryAddress.city"])
	assert.Equal(t, "Ba Dinh", q["deliveryAddress.district"])
	assert.Equal(t, "Kim Ma", q["deliveryAddress.ward"])
	assert.Equal(t, "cash", q["paymentMethod"])
	assert.Equal(t, bson.M{"$gte": from, "$lte": to}, q["orderDate"])
	assert.NotContains(t, q, "$or")
}

func TestBuildOrderFilter_StatusNotWins(t *testing.T) {
	q := buildOrderFilter(ports.OrderFilter{Status: domain.StatusPending, StatusNot: domain.StatusCancelled})
	assert.Equal(t, bson.M{"$ne": "Cancelled"}, q["status"])
}

func TestBuildOrderFilter_OpenEndedWindow(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	q := buildOrderFilter(ports.OrderFilter{DateFrom: from})
	assert.Equal(t, bson.M{"$gte": from}, q["orderDate"])
}

func TestBuildOrderFilter_KeywordText(t *testing.T) {
	q := buildOrderFilter(ports.OrderFilter{Keyword: "Trà (sữa)"})

	or, ok := q["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3, "a non-ObjectID keyword must not match on _id")

	want := primitive.Regex{Pattern: `Trà \(sữa\)`, Options: "i"}
	assert.Equal(t, bson.M{"deliveryAddress.fullName": want}, or[0])
	assert.Equal(t, bson.M{"deliveryAddress.phone": want}, or[1])
	assert.Equal(t, bson.M{"items.productName": want}, or[2])
}

func TestBuildOrderFilter_KeywordObjectID(t *testing.T) {
	hex := "665f1c2e9b1d4a0012345678"
	q := buildOrderFilter(ports.OrderFilter{Keyword: hex})

	or := q["$or"].(bson.A)
	require.Len(t, or, 4)
	oid, _ := primitive.ObjectIDFromHex(hex)
	assert.Equal(t, bson.M{"_id": oid}, or[0])
}

func TestBuildItemFilter(t *testing.T) {
	assert.Equal(t, bson.M{"isActive": true}, buildItemFilter(ports.ItemFilter{}))
	assert.Equal(t, bson.M{}, buildItemFilter(ports.ItemFilter{IncludeInactive: true}))

	q := buildItemFilter(ports.ItemFilter{Category: "tea", Search: "c++"})
	assert.Equal(t, "tea", q["category"])
	assert.Equal(t, primitive.Regex{Pattern: `c\+\+`, Options: "i"}, q["name"])
}

func TestBuildComboFilter(t *testing.T) {
	assert.Empty(t, buildComboFilter(ports.ComboFilter{}))
	off := false
	assert.Equal(t, bson.M{"isActive": false}, buildComboFilter(ports.ComboFilter{Active: &off}))
}
