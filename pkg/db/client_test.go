package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BVKSH0/baked-bounty-backend/pkg/config"
)

type sampleRow struct {
	ID   int
	Name string
}

func openTestClient(t *testing.T) *Client {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&sampleRow{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return &Client{conn: conn}
}

func TestNewSelectsSQLiteDialector(t *testing.T) {
	cfg := config.DBConfig{DSN: "file::memory:", Driver: config.DBDriverSQLite}
	client, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if client.DB().Dialector.Name() != "sqlite" {
		t.Fatalf("dialector = %q, want sqlite", client.DB().Dialector.Name())
	}
}

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}

func TestWithTxCommitsAndRollsBack(t *testing.T) {
	client := openTestClient(t)
	ctx := context.Background()

	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&sampleRow{Name: "committed"}).Error
	}); err != nil {
		t.Fatalf("WithTx commit: %v", err)
	}

	var count int64
	if err := client.DB().Model(&sampleRow{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	err := client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&sampleRow{Name: "rolled"}).Error; err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected WithTx to surface the error")
	}
	if err := client.DB().Model(&sampleRow{}).Count(&count).Error; err != nil {
		t.Fatalf("count after rollback: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d after rollback, want 1", count)
	}
}

func TestPing(t *testing.T) {
	client := openTestClient(t)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
