package post

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"blog-service/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(&db.DB{DB: mockDB}), mock, mockDB
}

func TestPostgresCreate(t *testing.T) {
	repo, mock, mockDB := newRepoWithMock(t)
	defer mockDB.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+posts\s*\(title,\s*body,\s*author_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now)
	mock.ExpectQuery(q).WithArgs("T", "B", "u-1").WillReturnRows(rows)

	p, err := repo.Create(context.Background(), &Post{Title: "T", Body: "B", AuthorID: "u-1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID != 7 || !p.CreatedAt.Equal(now) {
		t.Fatalf("unexpected post: %+v", p)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock, mockDB := newRepoWithMock(t)
	defer mockDB.Close()

	q := `(?s)SELECT\s+id,\s*title,\s*body,\s*author_id,\s*created_at\s+FROM\s+posts\s+WHERE\s+id`

	mock.ExpectQuery(q).WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPostgresUpdate_ScopedByAuthor(t *testing.T) {
	repo, mock, mockDB := newRepoWithMock(t)
	defer mockDB.Close()

	q := `(?s)^\s*UPDATE\s+posts\s+SET\s+title\s*=\s*\$1,\s*body\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s+AND\s+author_id\s*=\s*\$4\s*$`

	mock.ExpectExec(q).
		WithArgs("T2", "B2", int64(7), "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), 7, "u-1", "T2", "B2"); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestPostgresUpdate_NoRowTouched(t *testing.T) {
	repo, mock, mockDB := newRepoWithMock(t)
	defer mockDB.Close()

	q := `(?s)UPDATE\s+posts\s+SET\s+title`

	mock.ExpectExec(q).
		WithArgs("T2", "B2", int64(7), "u-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 7, "u-2", "T2", "B2")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPostgresDelete(t *testing.T) {
	repo, mock, mockDB := newRepoWithMock(t)
	defer mockDB.Close()

	q := `(?s)^\s*DELETE\s+FROM\s+posts\s+WHERE\s+id\s*=\s*\$1\s+AND\s+author_id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).WithArgs(int64(7), "u-1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7, "u-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(q).WithArgs(int64(7), "u-1").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 7, "u-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound on second delete, got %v", err)
	}
}

func TestPostgresList(t *testing.T) {
	repo, mock, mockDB := newRepoWithMock(t)
	defer mockDB.Close()

	mock.ExpectQuery(`(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))

	listQ := `(?s)SELECT\s+id,\s*title,\s*body,\s*author_id,\s*created_at\s+FROM\s+posts\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s+DESC\s+LIMIT\s+\$1\s+OFFSET\s+\$2`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "body", "author_id", "created_at"}).
		AddRow(int64(13), "newest", "b", "u-1", now).
		AddRow(int64(12), "older", "b", "u-2", now.Add(-time.Minute))
	mock.ExpectQuery(listQ).WithArgs(6, 0).WillReturnRows(rows)

	posts, total, err := repo.List(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 13 || len(posts) != 2 || posts[0].ID != 13 {
		t.Fatalf("unexpected result: total=%d posts=%+v", total, posts)
	}
}

func TestPostgresList_HugePageSendsSaturatedOffset(t *testing.T) {
	repo, mock, mockDB := newRepoWithMock(t)
	defer mockDB.Close()

	mock.ExpectQuery(`(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+posts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(13))

	listQ := `(?s)SELECT\s+id,\s*title,\s*body,\s*author_id,\s*created_at\s+FROM\s+posts\s+ORDER\s+BY`

	// the offset must stay positive no matter how big the page is
	mock.ExpectQuery(listQ).
		WithArgs(6, math.MaxInt).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "author_id", "created_at"}))

	posts, total, err := repo.List(context.Background(), math.MaxInt-1, 6)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 13 || len(posts) != 0 {
		t.Fatalf("unexpected result: total=%d posts=%+v", total, posts)
	}
}

func TestPostgresListByAuthor(t *testing.T) {
	repo, mock, mockDB := newRepoWithMock(t)
	defer mockDB.Close()

	mock.ExpectQuery(`(?s)SELECT\s+COUNT\(\*\)\s+FROM\s+posts\s+WHERE\s+author_id\s*=\s*\$1`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	listQ := `(?s)SELECT\s+id,\s*title,\s*body,\s*author_id,\s*created_at\s+FROM\s+posts\s+WHERE\s+author_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s+DESC\s+LIMIT\s+\$2\s+OFFSET\s+\$3`

	rows := sqlmock.NewRows([]string{"id", "title", "body", "author_id", "created_at"}).
		AddRow(int64(3), "mine", "b", "u-1", time.Now())
	mock.ExpectQuery(listQ).WithArgs("u-1", 6, 0).WillReturnRows(rows)

	posts, total, err := repo.ListByAuthor(context.Background(), "u-1", 1, 6)
	if err != nil {
		t.Fatalf("ListByAuthor error: %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].AuthorID != "u-1" {
		t.Fatalf("unexpected result: total=%d posts=%+v", total, posts)
	}
}
