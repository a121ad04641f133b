package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"healthai/pkg"
)

func TestSaveConsultation(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	session := uuid.NewString()
	created := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO consultations")).
		WithArgs(sqlmock.AnyArg(), session, "chat", "Is sleep important?", "answer").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	c := &pkg.Consultation{SessionID: session, Mode: "chat", Input: "Is sleep important?", Response: "answer"}
	if err := NewRepository(conn).SaveConsultation(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(c.ID); err != nil {
		t.Errorf("ID not assigned: %q", c.ID)
	}
	if !c.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v", c.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSaveConsultationRejectsBadSession(t *testing.T) {
	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	err = NewRepository(conn).SaveConsultation(context.Background(), &pkg.Consultation{SessionID: "nope"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestListConsultations(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	session := uuid.NewString()
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "session_id", "mode", "input", "response", "created_at"}).
		AddRow("a", session, "treatment_plan", "Condition: asthma", "plan", now).
		AddRow("b", session, "chat", "hello", "hi", now.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta("FROM consultations")).
		WithArgs(session, 10).
		WillReturnRows(rows)

	list, err := NewRepository(conn).ListConsultations(context.Background(), session, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].Mode != "chat" {
		t.Errorf("got %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListConsultationsInvalidSession(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	list, err := NewRepository(conn).ListConsultations(context.Background(), "not-a-uuid", 10)
	if err != nil || list != nil {
		t.Fatalf("got %v, %v", list, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestMigrate(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS consultations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := Migrate(context.Background(), conn); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
