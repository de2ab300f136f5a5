package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agendados/internal/domain"
	"agendados/internal/port"
	"agendados/internal/schedule"
	"agendados/internal/service"
	"agendados/mocks"
)

func newExportService(repo *mocks.MockClientRepo, storage *mocks.MockObjectStorage) service.ExportService {
	return service.NewExportService(repo, storage, schedule.FixedClock{T: saturdayNoon}, service.ExportSettings{
		Bucket:        "exports",
		PresignExpiry: time.Hour,
		Location:      pet,
	})
}

func exportRecords() []domain.ClientRecord {
	return []domain.ClientRecord{{
		ID:          uuid.New(),
		Name:        "ANA TORRES",
		Phone:       "987654321",
		ScheduledAt: time.Date(2026, 10, 19, 16, 0, 0, 0, pet),
		AlarmActive: true,
	}}
}

func TestExportService_Export_CSV(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newExportService(repo, new(mocks.MockObjectStorage))
	agentID := uuid.New()
	repo.On("ListAll", mock.Anything, agentID).Return(exportRecords(), nil)

	file, err := svc.Export(context.Background(), agentID, domain.ExportCSV)

	require.NoError(t, err)
	assert.Equal(t, "clientes_20261017_1200.csv", file.Name)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(file.Data), "ANA TORRES,987654321")
}

func TestExportService_Export_UnsupportedFormat(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newExportService(repo, new(mocks.MockObjectStorage))
	agentID := uuid.New()
	repo.On("ListAll", mock.Anything, agentID).Return(exportRecords(), nil)

	_, err := svc.Export(context.Background(), agentID, domain.ExportFormat("pdf"))
	assert.ErrorIs(t, err, domain.ErrExportFailed)
}

func TestExportService_Archive(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newExportService(repo, storage)
	agentID := uuid.New()
	key := "exports/" + agentID.String() + "/clientes_20261017_1200.xlsx"

	repo.On("ListAll", mock.Anything, agentID).Return(exportRecords(), nil)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "exports" && in.Key == key && in.Size > 0 &&
			strings.Contains(in.ContentType, "spreadsheetml")
	})).Return(&port.UploadOutput{Location: "s3://exports/" + key}, nil)
	storage.On("PresignGet", mock.Anything, "exports", key, time.Hour).Return("https://signed.example/x", nil)

	res, err := svc.Archive(context.Background(), agentID)

	require.NoError(t, err)
	assert.Equal(t, key, res.Key)
	assert.Equal(t, "https://signed.example/x", res.URL)
	assert.True(t, res.ExpiresAt.Equal(saturdayNoon.Add(time.Hour)))
	storage.AssertExpectations(t)
}

func TestExportService_Archive_PresignFailureRemovesObject(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newExportService(repo, storage)
	agentID := uuid.New()

	repo.On("ListAll", mock.Anything, agentID).Return(exportRecords(), nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).Return(&port.UploadOutput{}, nil)
	storage.On("PresignGet", mock.Anything, "exports", mock.Anything, time.Hour).Return("", errors.New("denied"))
	storage.On("Delete", mock.Anything, "exports", mock.Anything).Return(nil)

	_, err := svc.Archive(context.Background(), agentID)

	assert.ErrorIs(t, err, domain.ErrExportFailed)
	storage.AssertCalled(t, "Delete", mock.Anything, "exports", mock.Anything)
}

func TestExportService_Archive_UploadFailure(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newExportService(repo, storage)
	agentID := uuid.New()

	repo.On("ListAll", mock.Anything, agentID).Return(exportRecords(), nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket missing"))

	_, err := svc.Archive(context.Background(), agentID)

	assert.ErrorIs(t, err, domain.ErrExportFailed)
	storage.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
