// Package notify builds callback reminders; its subpackages deliver them.
package notify

import (
	"fmt"
	"html"
	"time"

	"agendados/internal/domain"
)

// Message is a rendered reminder.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Amount picks the figure shown in a reminder: the personal loan amount,
// else the debt purchase amount, else the debt.
func Amount(c *domain.ClientRecord) string {
	for _, v := range []string{c.PersonalLoanAmount, c.DebtPurchaseAmount, c.Debt} {
		if v != "" {
			return v
		}
	}
	return ""
}

// BuildReminder renders the reminder for client, with times shown in loc.
func BuildReminder(agent *domain.Agent, client *domain.ClientRecord, loc *time.Location) Message {
	at := client.ScheduledAt.In(loc).Format("02/01/2006 15:04")
	amount := Amount(client)
	if amount == "" {
		amount = "-"
	}

	subject := fmt.Sprintf("Llamar a %s (%s)", client.Name, client.Phone)
	text := fmt.Sprintf("Hola %s,\n\nTienes una llamada programada:\n\nCliente: %s\nCelular: %s\nMonto: %s\nHora: %s\n",
		agent.FullName, client.Name, client.Phone, amount, at)
	if client.Comment != "" {
		text += fmt.Sprintf("Comentarios: %s\n", client.Comment)
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Llamada programada</h2>
  <p>Hola %s,</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Cliente</td><td><strong>%s</strong></td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Celular</td><td><a href="tel:+51%s">%s</a></td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Monto</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Hora</td><td>%s</td></tr>
  </table>
  <p style="color: #555;">%s</p>
</body>
</html>`,
		html.EscapeString(agent.FullName), html.EscapeString(client.Name),
		client.Phone, client.Phone, html.EscapeString(amount), at, html.EscapeString(client.Comment))

	return Message{Subject: subject, Text: text, HTML: body}
}
