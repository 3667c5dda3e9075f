package services

import (
	"context"
	"testing"

	"recyclehub-server/internal/db"
	"recyclehub-server/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestProductServiceCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns the generated id", func(mt *mtest.T) {
		svc := NewProductService(mt.DB, zerolog.Nop())

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		result, err := svc.CreateProduct(context.Background(), models.Product{
			SellerEmail: "a@x.com",
			Category:    "plastic",
			Name:        "Water drum",
			Price:       15,
		})
		require.NoError(mt, err)
		assert.NotNil(mt, result.InsertedID)
		assert.IsType(mt, primitive.ObjectID{}, result.InsertedID)
	})
}

func TestProductServiceListAdvertised(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns only flagged products", func(mt *mtest.T) {
		svc := NewProductService(mt.DB, zerolog.Nop())

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "sellerEmail", Value: "a@x.com"},
			{Key: "category", Value: "plastic"},
			{Key: "name", Value: "Water drum"},
			{Key: "isAdvertised", Value: true},
		}))

		products, err := svc.ListAdvertised(context.Background())
		require.NoError(mt, err)
		require.Len(mt, products, 1)
		assert.True(mt, products[0].IsAdvertised)
	})

	mt.Run("empty store yields an empty slice, not nil", func(mt *mtest.T) {
		svc := NewProductService(mt.DB, zerolog.Nop())

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS(mt), mtest.FirstBatch))

		products, err := svc.ListAdvertised(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, products)
		assert.Empty(mt, products)
	})
}

func TestProductServiceListBySeller(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("dangling seller reference reads back empty", func(mt *mtest.T) {
		svc := NewProductService(mt.DB, zerolog.Nop())

		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS(mt), mtest.FirstBatch))

		products, err := svc.ListBySeller(context.Background(), "ghost@x.com")
		require.NoError(mt, err)
		assert.Empty(mt, products)
	})
}

func TestProductServiceMarkAdvertised(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sets the flag on the matched document", func(mt *mtest.T) {
		svc := NewProductService(mt.DB, zerolog.Nop())

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		result, err := svc.MarkAdvertised(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), result.MatchedCount)
		assert.Equal(mt, int64(1), result.ModifiedCount)
	})
}

func TestBookingServiceRoundTrip(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create returns the generated id", func(mt *mtest.T) {
		svc := NewBookingService(mt.DB, zerolog.Nop())

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		result, err := svc.CreateBooking(context.Background(), models.Booking{
			BuyerEmail:  "b@x.com",
			ProductName: "Water drum",
			Price:       15,
		})
		require.NoError(mt, err)
		assert.NotNil(mt, result.InsertedID)
	})

	mt.Run("list by buyer decodes the batch", func(mt *mtest.T) {
		svc := NewBookingService(mt.DB, zerolog.Nop())

		ns := mt.DB.Name() + "." + db.BookingsCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "buyerEmail", Value: "b@x.com"},
			{Key: "productName", Value: "Water drum"},
		}))

		bookings, err := svc.ListByBuyer(context.Background(), "b@x.com")
		require.NoError(mt, err)
		require.Len(mt, bookings, 1)
		assert.Equal(mt, "b@x.com", bookings[0].BuyerEmail)
	})
}

func TestCategoryServiceList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("full scan of the catalog", func(mt *mtest.T) {
		svc := NewCategoryService(mt.DB, zerolog.Nop())

		ns := mt.DB.Name() + "." + db.CategoriesCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "plastic"}},
			bson.D{{Key: "name", Value: "paper"}},
		))

		categories, err := svc.ListCategories(context.Background())
		require.NoError(mt, err)
		require.Len(mt, categories, 2)
		assert.Equal(mt, "plastic", categories[0].Name)
	})
}

func productsNS(mt *mtest.T) string {
	return mt.DB.Name() + "." + db.ProductsCollection
}
