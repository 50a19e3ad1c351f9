package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"bakery-storefront/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.CartItem{},
		&model.Session{},
		&model.LastTransaction{},
	))

	return db
}

func TestCartUpsertMergesQuantity(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.CartItem{
		ProductID: 1,
		Name:      "croissant",
		UnitPrice: decimal.RequireFromString("2.50"),
		Quantity:  2,
	}))
	require.NoError(t, repo.Upsert(ctx, &model.CartItem{
		ProductID: 1,
		Name:      "croissant",
		UnitPrice: decimal.RequireFromString("2.75"),
		Quantity:  3,
	}))

	items, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("2.75")),
		"the merged line keeps the latest unit price")
}

func TestCartUpdateQuantity(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.CartItem{
		ProductID: 1,
		UnitPrice: decimal.RequireFromString("2.50"),
		Quantity:  2,
	}))

	require.NoError(t, repo.UpdateQuantity(ctx, 1, 7))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestCartUpdateQuantityMissingProduct(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))

	err := repo.UpdateQuantity(context.Background(), 99, 1)

	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCartRemoveAndClear(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))
	ctx := context.Background()

	for productID := int64(1); productID <= 3; productID++ {
		require.NoError(t, repo.Upsert(ctx, &model.CartItem{
			ProductID: productID,
			UnitPrice: decimal.RequireFromString("1.00"),
			Quantity:  1,
		}))
	}

	require.NoError(t, repo.Remove(ctx, 2))
	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, repo.Clear(ctx))
	items, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSessionRoundTrip(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	session, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, session, "no session stored yet")

	require.NoError(t, repo.Set(ctx, &model.Session{
		Token:  "tok-123",
		UserID: 7,
		Login:  "sophy",
		Email:  "sophy@example.com",
	}))

	session, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "tok-123", session.Token)

	// A second login overwrites the single stored session.
	require.NoError(t, repo.Set(ctx, &model.Session{
		Token:  "tok-456",
		UserID: 8,
	}))
	session, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-456", session.Token)

	require.NoError(t, repo.Clear(ctx))
	session, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLastTransactionReplaced(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	record, err := repo.GetLast(ctx)
	require.NoError(t, err)
	assert.Nil(t, record)

	require.NoError(t, repo.SaveLast(ctx, &model.LastTransaction{
		TransactionID: 41,
		Date:          time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC),
		Value:         decimal.RequireFromString("10.00"),
		Status:        1,
		MethodType:    "PSE",
	}))
	require.NoError(t, repo.SaveLast(ctx, &model.LastTransaction{
		TransactionID: 42,
		Date:          time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Value:         decimal.RequireFromString("5.95"),
		Status:        1,
		MethodType:    "TARJETA",
	}))

	record, err = repo.GetLast(ctx)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, int64(42), record.TransactionID)
	assert.Equal(t, "TARJETA", record.MethodType)
}
