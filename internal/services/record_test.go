package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jylee2/record-api/internal/models"
	"github.com/jylee2/record-api/internal/services"
	"github.com/stretchr/testify/assert"
)

type recordServiceMocks struct {
	guard  *services.MockAuthenticator
	reader *services.MockRecordReader
	writer *services.MockRecordWriter
	cache  *services.MockRecordCache
	kafka  *services.MockKafkaWriter
}

func newRecordService(ctrl *gomock.Controller) (*services.RecordService, recordServiceMocks) {
	m := recordServiceMocks{
		guard:  services.NewMockAuthenticator(ctrl),
		reader: services.NewMockRecordReader(ctrl),
		writer: services.NewMockRecordWriter(ctrl),
		cache:  services.NewMockRecordCache(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
	svc := services.NewRecordService(m.guard, m.reader, m.writer, m.cache, m.kafka)
	return svc, m
}

func TestRecordService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRecordService(ctrl)

	ownerID := uuid.New()
	recordID := uuid.New()

	t.Run("insecure url rejected before any write", func(t *testing.T) {
		m.guard.EXPECT().
			Authenticate(gomock.Any(), "tok").
			Return(ownerID, nil)

		record, err := svc.Create(context.Background(), "tok", "desc", "http://insecure", "alice")
		assert.ErrorIs(t, err, services.ErrInsecureURL)
		assert.Nil(t, record)
	})

	t.Run("missing token", func(t *testing.T) {
		m.guard.EXPECT().
			Authenticate(gomock.Any(), "").
			Return(uuid.Nil, services.ErrMissingToken)

		record, err := svc.Create(context.Background(), "", "desc", "https://ok", "alice")
		assert.ErrorIs(t, err, services.ErrMissingToken)
		assert.Nil(t, record)
	})

	t.Run("successful create is active and publishes", func(t *testing.T) {
		saved := &models.RecordDB{
			RecordID: recordID,
			URL:      "https://ok",
			Status:   models.StatusActive,
			UserID:   ownerID,
			Username: "alice",
		}

		m.guard.EXPECT().
			Authenticate(gomock.Any(), "tok").
			Return(ownerID, nil)
		m.writer.EXPECT().
			Save(gomock.Any(), "desc", "https://ok", models.StatusActive, ownerID, "alice").
			Return(saved, nil)
		m.kafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		record, err := svc.Create(context.Background(), "tok", "desc", "https://ok", "alice")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusActive, record.Status)
		assert.Equal(t, ownerID, record.UserID)
		assert.Equal(t, recordID, record.RecordID)
	})
}

func TestRecordService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRecordService(ctrl)

	ownerID := uuid.New()
	strangerID := uuid.New()
	recordID := uuid.New()

	stored := &models.RecordDB{
		RecordID: recordID,
		URL:      "https://old",
		Status:   models.StatusActive,
		UserID:   ownerID,
		Username: "alice",
	}

	t.Run("invalid record id", func(t *testing.T) {
		m.guard.EXPECT().
			Authenticate(gomock.Any(), "tok").
			Return(ownerID, nil)

		record, err := svc.Update(context.Background(), "tok", "not-a-uuid", "d", "https://ok", ownerID.String())
		assert.ErrorIs(t, err, services.ErrInvalidRecordID)
		assert.Nil(t, record)
	})

	t.Run("record not found", func(t *testing.T) {
		m.guard.EXPECT().
			Authenticate(gomock.Any(), "tok").
			Return(ownerID, nil)
		m.reader.EXPECT().
			GetByID(gomock.Any(), recordID).
			Return(nil, nil)

		record, err := svc.Update(context.Background(), "tok", recordID.String(), "d", "https://ok", ownerID.String())
		assert.ErrorIs(t, err, services.ErrRecordNotFound)
		assert.Nil(t, record)
	})

	t.Run("not the owner, no write happens", func(t *testing.T) {
		m.guard.EXPECT().
			Authenticate(gomock.Any(), "tok").
			Return(strangerID, nil)
		m.reader.EXPECT().
			GetByID(gomock.Any(), recordID).
			Return(stored, nil)

		record, err := svc.Update(context.Background(), "tok", recordID.String(), "d", "https://ok", strangerID.String())
		assert.ErrorIs(t, err, services.ErrNotRecordOwner)
		assert.Nil(t, record)
	})

	t.Run("claimed owner mismatch", func(t *testing.T) {
		m.guard.EXPECT().
			Authenticate(gomock.Any(), "tok").
			Return(ownerID, nil)
		m.reader.EXPECT().
			GetByID(gomock.Any(), recordID).
			Return(stored, nil)

		record, err := svc.Update(context.Background(), "tok", recordID.String(), "d", "https://ok", strangerID.String())
		assert.ErrorIs(t, err, services.ErrNotRecordOwner)
		assert.Nil(t, record)
	})

	t.Run("insecure url rejected before the record is looked up", func(t *testing.T) {
		// No GetByID expectation: the url check must run first, so an
		// insecure url from a non-owner still reports the url error.
		m.guard.EXPECT().
			Authenticate(gomock.Any(), "tok").
			Return(strangerID, nil)

		record, err := svc.Update(context.Background(), "tok", recordID.String(), "d", "ftp://nope", strangerID.String())
		assert.ErrorIs(t, err, services.ErrInsecureURL)
		assert.Nil(t, record)
	})

	t.Run("successful update", func(t *testing.T) {
		updated := &models.RecordDB{
			RecordID: recordID,
			URL:      "https://new",
			Status:   models.StatusActive,
			UserID:   ownerID,
			Username: "alice",
		}

		m.guard.EXPECT().
			Authenticate(gomock.Any(), "tok").
			Return(ownerID, nil)
		m.reader.EXPECT().
			GetByID(gomock.Any(), recordID).
			Return(stored, nil)
		m.writer.EXPECT().
			Update(gomock.Any(), recordID, "new desc", "https://new").
			Return(updated, nil)
		m.cache.EXPECT().
			Invalidate(gomock.Any(), recordID).
			Return(nil)
		m.kafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		record, err := svc.Update(context.Background(), "tok", recordID.String(), "new desc", "https://new", ownerID.String())
		assert.NoError(t, err)
		assert.Equal(t, "https://new", record.URL)
	})
}

func TestRecordService_SetStatus_ToggleIsIdempotentOverTwoCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRecordService(ctrl)

	ownerID := uuid.New()
	recordID := uuid.New()

	active := &models.RecordDB{RecordID: recordID, Status: models.StatusActive, UserID: ownerID}
	deleted := &models.RecordDB{RecordID: recordID, Status: models.StatusDeleted, UserID: ownerID}

	// First call: active -> deleted.
	m.guard.EXPECT().Authenticate(gomock.Any(), "tok").Return(ownerID, nil)
	m.reader.EXPECT().GetByID(gomock.Any(), recordID).Return(active, nil)
	m.writer.EXPECT().SetStatus(gomock.Any(), recordID, models.StatusDeleted).Return(deleted, nil)
	m.cache.EXPECT().Invalidate(gomock.Any(), recordID).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	record, err := svc.SetStatus(context.Background(), "tok", recordID.String(), ownerID.String())
	assert.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, record.Status)

	// Second call: deleted -> active again.
	m.guard.EXPECT().Authenticate(gomock.Any(), "tok").Return(ownerID, nil)
	m.reader.EXPECT().GetByID(gomock.Any(), recordID).Return(deleted, nil)
	m.writer.EXPECT().SetStatus(gomock.Any(), recordID, models.StatusActive).Return(active, nil)
	m.cache.EXPECT().Invalidate(gomock.Any(), recordID).Return(nil)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	record, err = svc.SetStatus(context.Background(), "tok", recordID.String(), ownerID.String())
	assert.NoError(t, err)
	assert.Equal(t, models.StatusActive, record.Status)
}

func TestRecordService_SetStatus_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRecordService(ctrl)

	ownerID := uuid.New()
	strangerID := uuid.New()
	recordID := uuid.New()

	stored := &models.RecordDB{RecordID: recordID, Status: models.StatusActive, UserID: ownerID}

	m.guard.EXPECT().Authenticate(gomock.Any(), "tok").Return(strangerID, nil)
	m.reader.EXPECT().GetByID(gomock.Any(), recordID).Return(stored, nil)

	record, err := svc.SetStatus(context.Background(), "tok", recordID.String(), strangerID.String())
	assert.ErrorIs(t, err, services.ErrNotRecordOwner)
	assert.Nil(t, record)
}

func TestRecordService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRecordService(ctrl)

	recordID := uuid.New()
	stored := &models.RecordDB{RecordID: recordID, Status: models.StatusActive, URL: "https://ok"}

	t.Run("invalid id", func(t *testing.T) {
		record, err := svc.Get(context.Background(), "nope")
		assert.ErrorIs(t, err, services.ErrInvalidRecordID)
		assert.Nil(t, record)
	})

	t.Run("cache miss falls back to storage and fills cache", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), recordID).
			Return(nil, errors.New("not found in cache"))
		m.reader.EXPECT().
			GetActiveByID(gomock.Any(), recordID).
			Return(stored, nil)
		m.cache.EXPECT().
			Set(gomock.Any(), stored).
			Return(nil)

		record, err := svc.Get(context.Background(), recordID.String())
		assert.NoError(t, err)
		assert.Equal(t, stored, record)
	})

	t.Run("cache hit skips storage", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), recordID).
			Return(stored, nil)

		record, err := svc.Get(context.Background(), recordID.String())
		assert.NoError(t, err)
		assert.Equal(t, stored, record)
	})

	t.Run("not found", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), recordID).
			Return(nil, errors.New("not found in cache"))
		m.reader.EXPECT().
			GetActiveByID(gomock.Any(), recordID).
			Return(nil, nil)

		record, err := svc.Get(context.Background(), recordID.String())
		assert.ErrorIs(t, err, services.ErrRecordNotFound)
		assert.Nil(t, record)
	})
}

func TestRecordService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRecordService(ctrl)

	records := []models.RecordDB{
		{RecordID: uuid.New(), Status: models.StatusActive},
		{RecordID: uuid.New(), Status: models.StatusActive},
	}

	m.reader.EXPECT().ListActive(gomock.Any()).Return(records, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRecordService_NilKafkaWriterSkipsPublishing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := services.NewMockAuthenticator(ctrl)
	reader := services.NewMockRecordReader(ctrl)
	writer := services.NewMockRecordWriter(ctrl)

	// Declared as the interface type and left unset, the same way the
	// wiring builds it when no Kafka address is configured. A nil
	// concrete pointer assigned to the interface would defeat the nil
	// check inside the service.
	var kafkaWriter services.KafkaWriter
	var cacheRepo services.RecordCache

	svc := services.NewRecordService(guard, reader, writer, cacheRepo, kafkaWriter)

	ownerID := uuid.New()
	recordID := uuid.New()
	saved := &models.RecordDB{RecordID: recordID, Status: models.StatusActive, UserID: ownerID}
	deleted := &models.RecordDB{RecordID: recordID, Status: models.StatusDeleted, UserID: ownerID}

	guard.EXPECT().Authenticate(gomock.Any(), "tok").Return(ownerID, nil)
	writer.EXPECT().
		Save(gomock.Any(), "d", "https://ok", models.StatusActive, ownerID, "alice").
		Return(saved, nil)

	record, err := svc.Create(context.Background(), "tok", "d", "https://ok", "alice")
	assert.NoError(t, err)
	assert.Equal(t, saved, record)

	// Every mutation path must survive the disabled publisher and cache.
	guard.EXPECT().Authenticate(gomock.Any(), "tok").Return(ownerID, nil)
	reader.EXPECT().GetByID(gomock.Any(), recordID).Return(saved, nil)
	writer.EXPECT().SetStatus(gomock.Any(), recordID, models.StatusDeleted).Return(deleted, nil)

	record, err = svc.SetStatus(context.Background(), "tok", recordID.String(), ownerID.String())
	assert.NoError(t, err)
	assert.Equal(t, deleted, record)
}
