package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jylee2/record-api/internal/logger"
	"github.com/jylee2/record-api/internal/middlewares"
	"github.com/jylee2/record-api/internal/models"
	"github.com/segmentio/kafka-go"
)

const secureSchemePrefix = "https://"

// RecordReader defines read operations for records.
type RecordReader interface {
	GetByID(ctx context.Context, recordID uuid.UUID) (*models.RecordDB, error)
	GetActiveByID(ctx context.Context, recordID uuid.UUID) (*models.RecordDB, error)
	ListActive(ctx context.Context) ([]models.RecordDB, error)
}

// RecordWriter defines write operations for records.
type RecordWriter interface {
	Save(ctx context.Context, description, url, status string, userID uuid.UUID, username string) (*models.RecordDB, error)
	Update(ctx context.Context, recordID uuid.UUID, description, url string) (*models.RecordDB, error)
	SetStatus(ctx context.Context, recordID uuid.UUID, status string) (*models.RecordDB, error)
}

// RecordCache caches single records for the public read path.
type RecordCache interface {
	Get(ctx context.Context, recordID uuid.UUID) (*models.RecordDB, error)
	Set(ctx context.Context, record *models.RecordDB) error
	Invalidate(ctx context.Context, recordID uuid.UUID) error
}

// Authenticator resolves a bearer token to a user identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RecordService performs record mutations with ownership enforcement,
// plus the public read paths.
type RecordService struct {
	guard       Authenticator
	readRepo    RecordReader
	writeRepo   RecordWriter
	cacheRepo   RecordCache
	kafkaWriter KafkaWriter
}

// NewRecordService creates a new RecordService.
func NewRecordService(
	guard Authenticator,
	readRepo RecordReader,
	writeRepo RecordWriter,
	cacheRepo RecordCache,
	kafkaWriter KafkaWriter,
) *RecordService {
	return &RecordService{
		guard:       guard,
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a record mutation event to Kafka.
func (s *RecordService) publishEvent(ctx context.Context, record *models.RecordDB, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "record_id", record.RecordID)
		return
	}

	event := models.RecordEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		RecordID:  record.RecordID.String(),
		UserID:    record.UserID.String(),
		Operation: operation,
		Status:    record.Status,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal record event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RecordID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish record event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("record event published", "event_id", event.EventID, "operation", operation)
	}
}

// Create authenticates the token, validates the url scheme, and inserts
// a new active record owned by the authenticated identity.
func (s *RecordService) Create(ctx context.Context, token, description, url, ownerUsername string) (*models.RecordDB, error) {
	userID, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(url, secureSchemePrefix) {
		return nil, ErrInsecureURL
	}

	record, err := s.writeRepo.Save(ctx, description, url, models.StatusActive, userID, ownerUsername)
	if err != nil {
		logger.Log.Errorw("failed to save record", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, record, models.OpCreateRecord)

	return record, nil
}

// authorizeMutation loads a record by id and enforces ownership: the
// stored owner must equal both the authenticated identity and the
// caller-supplied owner id. A single lookup by record id is enough;
// the stored owner field is the authority.
func (s *RecordService) authorizeMutation(ctx context.Context, userID uuid.UUID, recordID, claimedOwnerID string) (*models.RecordDB, error) {
	id, err := uuid.Parse(recordID)
	if err != nil {
		return nil, ErrInvalidRecordID
	}

	record, err := s.readRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load record", "recordID", id, "error", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if record.UserID != userID || record.UserID.String() != claimedOwnerID {
		return nil, ErrNotRecordOwner
	}

	return record, nil
}

// Update applies description/url changes to a record the caller owns.
// The url scheme is rejected before the record is looked up.
func (s *RecordService) Update(ctx context.Context, token, recordID, description, url, claimedOwnerID string) (*models.RecordDB, error) {
	userID, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(url, secureSchemePrefix) {
		return nil, ErrInsecureURL
	}

	record, err := s.authorizeMutation(ctx, userID, recordID, claimedOwnerID)
	if err != nil {
		return nil, err
	}

	updated, err := s.writeRepo.Update(ctx, record.RecordID, description, url)
	if err != nil {
		logger.Log.Errorw("failed to update record", "recordID", record.RecordID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrRecordNotFound
	}

	if s.cacheRepo != nil {
		s.invalidateCache(ctx, updated.RecordID)
	}

	s.publishEvent(ctx, updated, models.OpUpdateRecord)

	return updated, nil
}

// SetStatus toggles a record between active and deleted. Applying it
// twice restores the original status.
func (s *RecordService) SetStatus(ctx context.Context, token, recordID, claimedOwnerID string) (*models.RecordDB, error) {
	userID, err := s.guard.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	record, err := s.authorizeMutation(ctx, userID, recordID, claimedOwnerID)
	if err != nil {
		return nil, err
	}

	updated, err := s.writeRepo.SetStatus(ctx, record.RecordID, models.ToggleStatus(record.Status))
	if err != nil {
		logger.Log.Errorw("failed to set record status", "recordID", record.RecordID, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrRecordNotFound
	}

	if s.cacheRepo != nil {
		s.invalidateCache(ctx, updated.RecordID)
	}

	s.publishEvent(ctx, updated, models.OpToggleStatus)

	return updated, nil
}

// invalidateCache drops the cached record now and again after the
// request transaction commits. Between the first delete and the
// commit a concurrent public read can re-cache the pre-mutation row;
// the post-commit delete closes that window.
func (s *RecordService) invalidateCache(ctx context.Context, recordID uuid.UUID) {
	del := func() {
		if err := s.cacheRepo.Invalidate(ctx, recordID); err != nil {
			logger.Log.Errorw("failed to invalidate record cache", "recordID", recordID, "error", err)
		}
	}
	del()
	middlewares.RunAfterCommit(ctx, del)
}

// List returns all active records, newest first. Public read path.
func (s *RecordService) List(ctx context.Context) ([]models.RecordDB, error) {
	records, err := s.readRepo.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list records", "error", err)
		return nil, err
	}
	return records, nil
}

// Get returns a single active record. Public read path, cache-aside.
func (s *RecordService) Get(ctx context.Context, recordID string) (*models.RecordDB, error) {
	id, err := uuid.Parse(recordID)
	if err != nil {
		return nil, ErrInvalidRecordID
	}

	if s.cacheRepo != nil {
		if cached, err := s.cacheRepo.Get(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	record, err := s.readRepo.GetActiveByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get record", "recordID", id, "error", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Set(ctx, record); err != nil {
			logger.Log.Errorw("failed to cache record", "recordID", id, "error", err)
		}
	}

	return record, nil
}
