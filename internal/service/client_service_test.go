package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agendados/internal/domain"
	"agendados/internal/service"
	"agendados/mocks"
)

func newClientService(repo *mocks.MockClientRepo) service.ClientService {
	return service.NewClientService(repo, newScheduleService(noHolidays()))
}

func TestClientService_NewDraft(t *testing.T) {
	svc := newClientService(new(mocks.MockClientRepo))

	draft, err := svc.NewDraft(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", draft.ScheduledDate)
	assert.Equal(t, 10, draft.Hour)
	assert.Equal(t, 30, draft.Minute)
	assert.True(t, draft.IsAM)
}

func TestClientService_Save_Success(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)
	agentID := uuid.New()

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(rec *domain.ClientRecord) bool {
		return rec.AgentID == agentID &&
			rec.Name == "ANA TORRES" &&
			rec.Phone == "987654321" &&
			rec.PersonalLoanAmount == "3000" &&
			rec.AlarmActive &&
			rec.ScheduledAt.Equal(time.Date(2026, 10, 19, 16, 0, 0, 0, pet))
	})).Return(nil)

	rec, err := svc.Save(context.Background(), agentID, domain.ClientDraft{
		Name:               " ana torres ",
		Phone:              "987-654-321",
		PersonalLoanAmount: "3000 ",
		ScheduledDate:      "2026-10-19",
		Hour:               4,
		IsAM:               false,
	})

	require.NoError(t, err)
	assert.Equal(t, "ANA TORRES", rec.Name)
	repo.AssertExpectations(t)
}

func TestClientService_Save_Validation(t *testing.T) {
	tests := []struct {
		name    string
		draft   domain.ClientDraft
		wantErr []error
	}{
		{"missing_name", domain.ClientDraft{Phone: "987654321"}, []error{domain.ErrMissingName}},
		{"short_phone", domain.ClientDraft{Name: "Ana", Phone: "98765"}, []error{domain.ErrInvalidPhone}},
		{"long_phone", domain.ClientDraft{Name: "Ana", Phone: "51 987 654 321"}, []error{domain.ErrInvalidPhone}},
		{"both", domain.ClientDraft{Name: "  ", Phone: ""}, []error{domain.ErrMissingName, domain.ErrInvalidPhone}},
		{"bad_schedule", domain.ClientDraft{Name: "Ana", Phone: "987654321", Hour: 0}, []error{domain.ErrInvalidSchedule}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.MockClientRepo)
			svc := newClientService(repo)

			_, err := svc.Save(context.Background(), uuid.New(), tc.draft)

			for _, want := range tc.wantErr {
				assert.ErrorIs(t, err, want)
			}
			repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestClientService_ListUpcoming_UsesCurrentTime(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)
	agentID := uuid.New()

	repo.On("ListUpcoming", mock.Anything, agentID, mock.MatchedBy(func(from time.Time) bool {
		return from.Equal(saturdayNoon)
	})).Return([]domain.ClientRecord{{Name: "ANA"}}, nil)

	recs, err := svc.ListUpcoming(context.Background(), agentID)

	require.NoError(t, err)
	assert.Len(t, recs, 1)
	repo.AssertExpectations(t)
}

func TestClientService_LookupByPhone(t *testing.T) {
	agentID := uuid.New()
	found := &domain.ClientRecord{ID: uuid.New(), Name: "ANA TORRES", Phone: "987654321"}

	tests := []struct {
		name   string
		spoken string
	}{
		{"digits", "987 654 321"},
		{"spoken_digits", "nueve ocho siete seis cinco cuatro tres dos uno"},
		{"broken_grouping", "98765/4321"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.MockClientRepo)
			svc := newClientService(repo)
			repo.On("GetByPhone", mock.Anything, agentID, "987654321").Return(found, nil)

			rec, err := svc.LookupByPhone(context.Background(), agentID, tc.spoken)

			require.NoError(t, err)
			assert.Equal(t, found.ID, rec.ID)
		})
	}
}

func TestClientService_LookupByPhone_NotFound(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)
	agentID := uuid.New()

	repo.On("GetByPhone", mock.Anything, agentID, "912345678").Return(nil, domain.ErrNotFound)

	_, err := svc.LookupByPhone(context.Background(), agentID, "912345678")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	_, err = svc.LookupByPhone(context.Background(), agentID, "no me acuerdo")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientService_SearchByName(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)
	agentID := uuid.New()

	repo.On("ListAll", mock.Anything, agentID).Return([]domain.ClientRecord{
		{Name: "PEDRO CASTILLO"},
		{Name: "MARIA LOPEZ"},
		{Name: "JOSÉ ÑAHUI"},
	}, nil)

	matches, err := svc.SearchByName(context.Background(), agentID, "María Lopes")

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "MARIA LOPEZ", matches[0].Client.Name)
	assert.GreaterOrEqual(t, matches[0].Score, service.NameMatchThreshold)

	matches, err = svc.SearchByName(context.Background(), agentID, "jose nahui")
	require.NoError(t, err)
	assert.Equal(t, "JOSÉ ÑAHUI", matches[0].Client.Name)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
}

func TestClientService_SearchByName_NoMatch(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)
	agentID := uuid.New()

	repo.On("ListAll", mock.Anything, agentID).Return([]domain.ClientRecord{{Name: "PEDRO CASTILLO"}}, nil)

	_, err := svc.SearchByName(context.Background(), agentID, "xyz")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	_, err = svc.SearchByName(context.Background(), agentID, "   ")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientService_DeleteMany(t *testing.T) {
	repo := new(mocks.MockClientRepo)
	svc := newClientService(repo)
	agentID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	repo.On("DeleteMany", mock.Anything, agentID, ids).Return(2, nil)

	n, err := svc.DeleteMany(context.Background(), agentID, ids)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
