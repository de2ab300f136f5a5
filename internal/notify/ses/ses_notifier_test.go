package ses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendados/internal/domain"
)

type fakeClient struct {
	in  *sesv2.SendEmailInput
	err error
}

func (f *fakeClient) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{}, nil
}

func TestSendReminder(t *testing.T) {
	fc := &fakeClient{}
	n := newNotifier(fc, "recordatorios@agendados.pe", "Agendados", time.UTC)

	err := n.SendReminder(context.Background(),
		&domain.Agent{Email: "rosa@agendados.pe"},
		&domain.ClientRecord{Name: "ANA", Phone: "987654321", ScheduledAt: time.Now()})
	require.NoError(t, err)

	require.NotNil(t, fc.in)
	assert.Equal(t, "Agendados <recordatorios@agendados.pe>", *fc.in.FromEmailAddress)
	assert.Equal(t, []string{"rosa@agendados.pe"}, fc.in.Destination.ToAddresses)
	assert.Equal(t, "Llamar a ANA (987654321)", *fc.in.Content.Simple.Subject.Data)
}

func TestSendReminder_Error(t *testing.T) {
	n := newNotifier(&fakeClient{err: errors.New("throttled")}, "a@b.pe", "A", time.UTC)

	err := n.SendReminder(context.Background(), &domain.Agent{}, &domain.ClientRecord{})
	assert.ErrorContains(t, err, "throttled")
}
