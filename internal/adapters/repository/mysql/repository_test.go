package mysql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/kairos/internal/core/domain"
)

func TestEventRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO events \(title, time_slots, unique_link\) VALUES \(\?, \?, \?\)`).
		WithArgs("Team Dinner", `["Fri 7pm","Sat 6pm"]`, "V1StGXR8_Z").
		WillReturnResult(sqlmock.NewResult(5, 1))

	event := &domain.Event{Title: "Team Dinner", TimeSlots: []string{"Fri 7pm", "Sat 6pm"}, UniqueLink: "V1StGXR8_Z"}
	require.NoError(t, NewEventRepository(db).Save(context.Background(), event))
	assert.Equal(t, int64(5), event.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Save_Errors(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO events`).WillReturnError(sql.ErrConnDone)

		err = NewEventRepository(db).Save(context.Background(), &domain.Event{Title: "x", TimeSlots: []string{"a"}, UniqueLink: "l"})
		require.ErrorIs(t, err, sql.ErrConnDone)
	})

	t.Run("last insert id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`INSERT INTO events`).
			WillReturnResult(sqlmock.NewErrorResult(errors.New("no id")))

		err = NewEventRepository(db).Save(context.Background(), &domain.Event{Title: "x", TimeSlots: []string{"a"}, UniqueLink: "l"})
		require.ErrorContains(t, err, "failed to read event id")
	})
}

func TestEventRepository_GetByUniqueLink(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, time_slots, unique_link FROM events WHERE unique_link = \?`).
			WithArgs("V1StGXR8_Z").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "time_slots", "unique_link"}).
				AddRow(int64(5), "Team Dinner", `["Fri 7pm","Sat 6pm"]`, "V1StGXR8_Z"))

		got, err := NewEventRepository(db).GetByUniqueLink(context.Background(), "V1StGXR8_Z")
		require.NoError(t, err)
		assert.Equal(t, &domain.Event{ID: 5, Title: "Team Dinner", TimeSlots: []string{"Fri 7pm", "Sat 6pm"}, UniqueLink: "V1StGXR8_Z"}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, time_slots, unique_link FROM events`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "time_slots", "unique_link"}))

		got, err := NewEventRepository(db).GetByUniqueLink(context.Background(), "missing")
		require.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Nil(t, got)
	})
}

func TestVoteRepository_SaveVote(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO votes \(event_id, participant_name, selected_slots\) VALUES \(\?, \?, \?\)`).
		WithArgs(int64(5), "Alice", `["Mon","Tue"]`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO votes`).
		WithArgs(int64(5), "Alice", `["Mon","Tue"]`).
		WillReturnResult(sqlmock.NewResult(2, 1))

	repo := NewVoteRepository(db)
	first := &domain.Vote{EventID: 5, ParticipantName: "Alice", SelectedSlots: []string{"Mon", "Tue"}}
	second := &domain.Vote{EventID: 5, ParticipantName: "Alice", SelectedSlots: []string{"Mon", "Tue"}}
	require.NoError(t, repo.SaveVote(context.Background(), first))
	require.NoError(t, repo.SaveVote(context.Background(), second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS events`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS votes`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DROP TABLE IF EXISTS votes`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DROP TABLE IF EXISTS events`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Rollback(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
