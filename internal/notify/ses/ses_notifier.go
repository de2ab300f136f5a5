package ses

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"agendados/internal/domain"
	"agendados/internal/notify"
	"agendados/internal/port"
)

// emailClient is the subset of the SES v2 client used here.
type emailClient interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesNotifier struct {
	client      emailClient
	fromAddress string
	fromName    string
	loc         *time.Location
}

// NewSESNotifier creates a Notifier that emails reminders to the agent.
func NewSESNotifier(ctx context.Context, region, fromAddress, fromName string, loc *time.Location) (port.Notifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return newNotifier(sesv2.NewFromConfig(cfg), fromAddress, fromName, loc), nil
}

func newNotifier(client emailClient, fromAddress, fromName string, loc *time.Location) *sesNotifier {
	return &sesNotifier{client: client, fromAddress: fromAddress, fromName: fromName, loc: loc}
}

func (s *sesNotifier) SendReminder(ctx context.Context, agent *domain.Agent, client *domain.ClientRecord) error {
	msg := notify.BuildReminder(agent, client, s.loc)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{agent.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &msg.Subject},
				Body: &types.Body{
					Html: &types.Content{Data: &msg.HTML},
					Text: &types.Content{Data: &msg.Text},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}
