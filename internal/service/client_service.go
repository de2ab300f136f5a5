package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/google/uuid"

	"agendados/internal/dictation"
	"agendados/internal/domain"
	"agendados/internal/port"
)

// NameMatchThreshold is the minimum Jaro-Winkler score for a name search hit.
const NameMatchThreshold = 0.85

var mobileDigits = regexp.MustCompile(`9\d{8}`)

// NameMatch is a client found by a spoken name, best matches first.
type NameMatch struct {
	Client domain.ClientRecord `json:"client"`
	Score  float64             `json:"score"`
}

// ClientService manages an agent's saved clients.
type ClientService interface {
	NewDraft(ctx context.Context) (domain.ClientDraft, error)
	Save(ctx context.Context, agentID uuid.UUID, draft domain.ClientDraft) (*domain.ClientRecord, error)
	GetByID(ctx context.Context, agentID, id uuid.UUID) (*domain.ClientRecord, error)
	List(ctx context.Context, agentID uuid.UUID, offset, limit int) ([]domain.ClientRecord, int, error)
	ListUpcoming(ctx context.Context, agentID uuid.UUID) ([]domain.ClientRecord, error)
	SetAlarm(ctx context.Context, agentID, id uuid.UUID, active bool) error
	DeleteMany(ctx context.Context, agentID uuid.UUID, ids []uuid.UUID) (int, error)
	LookupByPhone(ctx context.Context, agentID uuid.UUID, spoken string) (*domain.ClientRecord, error)
	SearchByName(ctx context.Context, agentID uuid.UUID, spoken string) ([]NameMatch, error)
}

type clientService struct {
	clientRepo  port.ClientRepository
	scheduleSvc ScheduleService
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clientRepo port.ClientRepository, scheduleSvc ScheduleService) ClientService {
	return &clientService{clientRepo: clientRepo, scheduleSvc: scheduleSvc}
}

func (s *clientService) NewDraft(ctx context.Context) (domain.ClientDraft, error) {
	def, err := s.scheduleSvc.DefaultDate(ctx)
	if err != nil {
		return domain.ClientDraft{}, err
	}
	return domain.NewClientDraft(def), nil
}

// Save validates the draft and stores it. A client already saved with the
// same phone is overwritten. Saving always re-arms the alarm.
func (s *clientService) Save(ctx context.Context, agentID uuid.UUID, draft domain.ClientDraft) (*domain.ClientRecord, error) {
	name := strings.ToUpper(strings.TrimSpace(draft.Name))
	phone := digitsOnly(draft.Phone)

	var errs []error
	if name == "" {
		errs = append(errs, domain.ErrMissingName)
	}
	if len(phone) != 9 {
		errs = append(errs, domain.ErrInvalidPhone)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	at, err := s.scheduleSvc.ScheduledAt(draft.ScheduledDate, draft.Hour, draft.Minute, draft.IsAM)
	if err != nil {
		return nil, err
	}

	rec := &domain.ClientRecord{
		AgentID:            agentID,
		Name:               name,
		Phone:              phone,
		PersonalLoanAmount: strings.TrimSpace(draft.PersonalLoanAmount),
		PersonalLoanRate:   strings.TrimSpace(draft.PersonalLoanRate),
		Debt:               strings.TrimSpace(draft.Debt),
		DebtPurchaseAmount: strings.TrimSpace(draft.DebtPurchaseAmount),
		DebtPurchaseRate:   strings.TrimSpace(draft.DebtPurchaseRate),
		Comment:            strings.TrimSpace(draft.Comment),
		ScheduledAt:        at,
		AlarmActive:        true,
	}
	if err := s.clientRepo.Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("client.Save: %w", err)
	}
	return rec, nil
}

func (s *clientService) GetByID(ctx context.Context, agentID, id uuid.UUID) (*domain.ClientRecord, error) {
	return s.clientRepo.GetByID(ctx, agentID, id)
}

func (s *clientService) List(ctx context.Context, agentID uuid.UUID, offset, limit int) ([]domain.ClientRecord, int, error) {
	return s.clientRepo.ListByAgent(ctx, agentID, offset, limit)
}

func (s *clientService) ListUpcoming(ctx context.Context, agentID uuid.UUID) ([]domain.ClientRecord, error) {
	return s.clientRepo.ListUpcoming(ctx, agentID, s.scheduleSvc.Now())
}

func (s *clientService) SetAlarm(ctx context.Context, agentID, id uuid.UUID, active bool) error {
	return s.clientRepo.SetAlarm(ctx, agentID, id, active)
}

func (s *clientService) DeleteMany(ctx context.Context, agentID uuid.UUID, ids []uuid.UUID) (int, error) {
	return s.clientRepo.DeleteMany(ctx, agentID, ids)
}

// LookupByPhone finds the client whose number was spoken. When the number
// is not dictated cleanly, any 9xxxxxxxx run in the digits of the input is
// tried instead.
func (s *clientService) LookupByPhone(ctx context.Context, agentID uuid.UUID, spoken string) (*domain.ClientRecord, error) {
	phone := dictation.ExtractPhoneDigits(spoken)
	if phone == "" {
		phone = mobileDigits.FindString(digitsOnly(spoken))
	}
	if phone == "" {
		return nil, domain.ErrClientNotFound
	}

	rec, err := s.clientRepo.GetByPhone(ctx, agentID, phone)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return rec, nil
}

// SearchByName returns the clients whose name sounds like spoken.
func (s *clientService) SearchByName(ctx context.Context, agentID uuid.UUID, spoken string) ([]NameMatch, error) {
	query := dictation.Normalize(strings.TrimSpace(spoken))
	if query == "" {
		return nil, domain.ErrClientNotFound
	}

	recs, err := s.clientRepo.ListAll(ctx, agentID)
	if err != nil {
		return nil, err
	}

	queryTokens := strings.Fields(query)
	var matches []NameMatch
	for i := range recs {
		name := dictation.Normalize(recs[i].Name)
		score := nameScore(queryTokens, strings.Fields(name), query, name)
		if score >= NameMatchThreshold {
			matches = append(matches, NameMatch{Client: recs[i], Score: score})
		}
	}
	if len(matches) == 0 {
		return nil, domain.ErrClientNotFound
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

// nameScore is the best Jaro-Winkler similarity over the whole strings,
// the strings without spaces, and every pair of tokens.
func nameScore(queryTokens, nameTokens []string, query, name string) float64 {
	score := matchr.JaroWinkler(query, name, false)

	if len(queryTokens) > 1 || len(nameTokens) > 1 {
		if s := matchr.JaroWinkler(strings.Join(queryTokens, ""), strings.Join(nameTokens, ""), false); s > score {
			score = s
		}
	}

	for _, qt := range queryTokens {
		for _, nt := range nameTokens {
			if s := matchr.JaroWinkler(qt, nt, false); s > score {
				score = s
			}
		}
	}
	return score
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
