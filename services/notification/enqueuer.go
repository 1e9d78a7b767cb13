package notification

import (
	"fmt"

	"salonix/models"
	"salonix/services/tasks"
	"salonix/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// MailEnqueuer queues booking lifecycle emails onto the mail queue. Delivery
// failures never surface to the booking flow; the worker retries on its own.
type MailEnqueuer struct {
	Client *asynq.Client
}

func (e *MailEnqueuer) BookingCreated(booking models.Booking) {
	e.enqueue(models.MailPayload{
		To:      booking.ClientEmail,
		Subject: "Programarea ta a fost confirmată",
		HTML:    renderCreatedMail(booking),
	})
}

func (e *MailEnqueuer) BookingCancelled(booking models.Booking) {
	e.enqueue(models.MailPayload{
		To:      booking.ClientEmail,
		Subject: "Programarea ta a fost anulată",
		HTML:    renderCancelledMail(booking),
	})
}

func (e *MailEnqueuer) enqueue(payload models.MailPayload) {
	if e.Client == nil || payload.To == "" {
		return
	}
	task, opts, err := tasks.NewMailTask(payload)
	if err != nil {
		utils.GetLogger().Warn("failed to build mail task", zap.Error(err))
		return
	}
	if _, err := e.Client.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue mail task",
			zap.String("to", payload.To), zap.Error(err))
	}
}

func renderCreatedMail(b models.Booking) string {
	return fmt.Sprintf(`<h2>Salut, %s!</h2>
<p>Programarea ta pentru <b>%s</b> a fost confirmată.</p>
<p>Data: <b>%s (%s)</b><br>Ora: <b>%s</b></p>
<p>Te așteptăm!</p>`,
		b.ClientName, b.Service,
		b.Date.Format("02.01.2006"), utils.DayNameFor(b.Date), b.TimeSlot)
}

func renderCancelledMail(b models.Booking) string {
	return fmt.Sprintf(`<h2>Salut, %s!</h2>
<p>Programarea ta pentru <b>%s</b> din data de <b>%s</b>, ora <b>%s</b>, a fost anulată.</p>
<p>Poți face oricând o nouă programare.</p>`,
		b.ClientName, b.Service, b.Date.Format("02.01.2006"), b.TimeSlot)
}
