package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"agendados/internal/domain"
	"agendados/internal/export"
	"agendados/internal/port"
	"agendados/internal/schedule"
)

// ExportFile is a rendered export ready to be served.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ArchiveResult points at an uploaded export.
type ArchiveResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExportSettings configures where archives are stored.
type ExportSettings struct {
	Bucket        string
	PresignExpiry time.Duration
	Location      *time.Location
}

// ExportService renders an agent's clients as spreadsheets.
type ExportService interface {
	Export(ctx context.Context, agentID uuid.UUID, format domain.ExportFormat) (*ExportFile, error)
	Archive(ctx context.Context, agentID uuid.UUID) (*ArchiveResult, error)
}

type exportService struct {
	clientRepo port.ClientRepository
	storage    port.ObjectStorage
	clock      schedule.Clock
	settings   ExportSettings
}

// NewExportService creates a new ExportService implementation.
func NewExportService(clientRepo port.ClientRepository, storage port.ObjectStorage, clock schedule.Clock, settings ExportSettings) ExportService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &exportService{clientRepo: clientRepo, storage: storage, clock: clock, settings: settings}
}

func (s *exportService) Export(ctx context.Context, agentID uuid.UUID, format domain.ExportFormat) (*ExportFile, error) {
	recs, err := s.clientRepo.ListAll(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("export.Export: %w", err)
	}

	var buf bytes.Buffer
	switch format {
	case domain.ExportCSV:
		err = export.WriteCSV(&buf, recs, s.settings.Location)
	case domain.ExportXLSX:
		err = export.WriteXLSX(&buf, recs, s.settings.Location)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrExportFailed, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return &ExportFile{
		Name:        export.FileName(format, s.clock.Now().In(s.settings.Location)),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}, nil
}

// Archive uploads the xlsx export and returns a temporary download link.
func (s *exportService) Archive(ctx context.Context, agentID uuid.UUID) (*ArchiveResult, error) {
	file, err := s.Export(ctx, agentID, domain.ExportXLSX)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s", agentID, file.Name)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.settings.Bucket,
		Key:         key,
		Body:        bytes.NewReader(file.Data),
		ContentType: file.ContentType,
		Size:        int64(len(file.Data)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	url, err := s.storage.PresignGet(ctx, s.settings.Bucket, key, s.settings.PresignExpiry)
	if err != nil {
		if delErr := s.storage.Delete(ctx, s.settings.Bucket, key); delErr != nil {
			slog.WarnContext(ctx, "failed to clean up export archive", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	return &ArchiveResult{
		Key:       key,
		URL:       url,
		ExpiresAt: s.clock.Now().Add(s.settings.PresignExpiry),
	}, nil
}
