package service

import (
	"context"
	"strings"

	"agendados/internal/dictation"
	"agendados/internal/domain"
	"agendados/internal/schedule"
)

// ApplyDictationInput is the DTO for merging a dictation into a draft.
type ApplyDictationInput struct {
	Text  string             `json:"text" binding:"required"`
	Draft domain.ClientDraft `json:"draft"`
}

// DictationOutcome carries what was understood and the updated draft.
type DictationOutcome struct {
	Result dictation.Result   `json:"result"`
	Draft  domain.ClientDraft `json:"draft"`
}

// DictationService turns free-form dictation into client form values.
type DictationService interface {
	Parse(text string) dictation.Result
	Apply(ctx context.Context, input ApplyDictationInput) (*DictationOutcome, error)
}

type dictationService struct {
	scheduleSvc ScheduleService
}

// NewDictationService creates a new DictationService implementation.
func NewDictationService(scheduleSvc ScheduleService) DictationService {
	return &dictationService{scheduleSvc: scheduleSvc}
}

func (s *dictationService) Parse(text string) dictation.Result {
	return dictation.Parse(text)
}

// Apply parses input.Text and overwrites only the draft fields the
// dictation mentioned. A dictated time also moves the date back to the
// default business day.
func (s *dictationService) Apply(ctx context.Context, input ApplyDictationInput) (*DictationOutcome, error) {
	res := dictation.Parse(input.Text)
	draft := input.Draft
	draft.DictationText = input.Text

	setIfPresent(&draft.Phone, res.Phone)
	setIfPresent(&draft.Name, strings.ToUpper(res.Name))
	setIfPresent(&draft.PersonalLoanAmount, res.PersonalLoanAmount)
	setIfPresent(&draft.PersonalLoanRate, res.PersonalLoanRate)
	setIfPresent(&draft.Debt, res.Debt)
	setIfPresent(&draft.DebtPurchaseAmount, res.DebtPurchaseAmount)
	setIfPresent(&draft.DebtPurchaseRate, res.DebtPurchaseRate)
	setIfPresent(&draft.Comment, res.Comment)

	if res.ScheduledTime != nil {
		def, err := s.scheduleSvc.DefaultDate(ctx)
		if err != nil {
			return nil, err
		}
		draft.ScheduledDate = def.Format(domain.DateLayout)
		draft.Hour, draft.Minute, draft.IsAM = schedule.From24Hour(*res.ScheduledTime)
	}

	return &DictationOutcome{Result: res, Draft: draft}, nil
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
