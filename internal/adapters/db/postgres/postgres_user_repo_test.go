package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	customErrors "github.com/yaskovbs/My-Second-Project/internal/domain/user/errors"
	"github.com/yaskovbs/My-Second-Project/internal/domain/user/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPostgresUserRepo_CRUD(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Email: "a@x.com", Username: "alice01", PasswordHash: "h", CreatedAt: time.Now()}
	id, err := repo.CreateUser(ctx, user)
	if err != nil || id != user.ID {
		t.Fatalf("create %v", err)
	}
	got, err := repo.GetUserByEmail(ctx, user.Email)
	if err != nil || got.ID != user.ID {
		t.Fatalf("get by email %v", err)
	}
	got2, err := repo.GetUserByID(ctx, user.ID)
	if err != nil || got2.Email != user.Email {
		t.Fatalf("get by id %v", err)
	}

	got2.Username = "alice02"
	if err := repo.UpdateUser(ctx, got2); err != nil {
		t.Fatalf("update %v", err)
	}
	updated, err := repo.GetUserByID(ctx, user.ID)
	if err != nil || updated.Username != "alice02" {
		t.Fatalf("updated read back: %v %s", err, updated.Username)
	}

	if err := repo.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete %v", err)
	}
	if _, err := repo.GetUserByID(ctx, user.ID); !customErrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostgresUserRepo_DuplicateEmail(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	first := model.User{ID: uuid.New(), Email: "a@x.com", Username: "alice01", PasswordHash: "h"}
	if _, err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("create %v", err)
	}

	second := model.User{ID: uuid.New(), Email: "a@x.com", Username: "bob01", PasswordHash: "h"}
	if _, err := repo.CreateUser(ctx, second); !customErrors.IsAlreadyExists(err) {
		t.Fatalf("expected already exists, got %v", err)
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 {
		t.Fatalf("exactly one record must exist, got %d", len(users))
	}
}

func TestPostgresUserRepo_DuplicateUsername(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	if _, err := repo.CreateUser(ctx, model.User{ID: uuid.New(), Email: "a@x.com", Username: "alice01", PasswordHash: "h"}); err != nil {
		t.Fatalf("create %v", err)
	}
	if _, err := repo.CreateUser(ctx, model.User{ID: uuid.New(), Email: "b@x.com", Username: "alice01", PasswordHash: "h"}); !customErrors.IsAlreadyExists(err) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestPostgresUserRepo_ListOrder(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"first01", "second01", "third01"} {
		u := model.User{
			ID:           uuid.New(),
			Email:        name + "@x.com",
			Username:     name,
			PasswordHash: "h",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.CreateUser(ctx, u); err != nil {
			t.Fatalf("create %v", err)
		}
	}

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 3 || users[0].Username != "first01" || users[2].Username != "third01" {
		t.Fatalf("unexpected order: %+v", users)
	}
}

func TestPostgresUserRepo_DeleteMissing(t *testing.T) {
	repo := NewPostgresUserRepo(setupDB(t))
	if err := repo.DeleteUser(context.Background(), uuid.New()); !customErrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
