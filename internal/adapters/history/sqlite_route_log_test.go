package history

import (
	"context"
	"database/sql"
	"grid-route-client/internal/domain"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteRouteLogRecordAndRecent(t *testing.T) {
	db := openTestDB(t)
	log := NewSqliteRouteLog(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	records := []domain.RouteQuery{
		{Source: 1, Target: 2, Found: true, Distance: 153.4, Vertices: 3, QueriedAt: base},
		{Source: 2, Target: 9, Found: false, QueriedAt: base.Add(time.Minute)},
		{Source: 4, Target: 5, Found: true, Distance: 12, Vertices: 2, QueriedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range records {
		if err := log.Record(ctx, r); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := log.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(got))
	}

	assertQuery(t, got[0], records[2])
	assertQuery(t, got[1], records[1])
}

func assertQuery(t *testing.T, got, want domain.RouteQuery) {
	t.Helper()
	if !got.QueriedAt.Equal(want.QueriedAt) {
		t.Errorf("QueriedAt = %v, want %v", got.QueriedAt, want.QueriedAt)
	}
	got.QueriedAt, want.QueriedAt = time.Time{}, time.Time{}
	if got != want {
		t.Errorf("query = %+v, want %+v", got, want)
	}
}

func TestSqliteRouteLogNilDB(t *testing.T) {
	log := &SqliteRouteLog{}
	if err := log.Record(context.Background(), domain.RouteQuery{}); err == nil {
		t.Fatal("expected error for nil DB")
	}
	if _, err := log.Recent(context.Background(), 1); err == nil {
		t.Fatal("expected error for nil DB")
	}
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := InitSchema(db); err != nil {
		t.Fatalf("second init: %v", err)
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultRecentLimit},
		{-3, DefaultRecentLimit},
		{10, 10},
		{MaxRecentLimit + 1, MaxRecentLimit},
	}
	for _, tt := range tests {
		if got := clampLimit(tt.in); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
