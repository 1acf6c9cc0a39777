package services

import (
	"context"
	"fmt"

	"github.com/anonto42/medishare/backend/internal/models"
	"github.com/sirupsen/logrus"
)

// MatchingWorkflow turns "request an item" into a ledger write plus two
// notifications.
type MatchingWorkflow interface {
	RequestItem(ctx context.Context, medicineName string, requesterID uint, contact models.ContactInfo) (*models.RequestRecord, error)
}

type matchingWorkflow struct {
	ledger RequestLedger
	outbox NotificationOutbox
}

func NewMatchingWorkflow(ledger RequestLedger, outbox NotificationOutbox) MatchingWorkflow {
	return &matchingWorkflow{ledger: ledger, outbox: outbox}
}

func donorMessage(medicineName string) string {
	return fmt.Sprintf("You have a new request for the medicine: %s.", medicineName)
}

func requesterMessage(medicineName string) string {
	return fmt.Sprintf("Your request for the medicine: %s has been submitted.", medicineName)
}

// RequestItem fails only when the ledger rejects the request. Once the record
// is committed the notifications are best-effort: a failed append is logged
// and not rolled back, so a request can exist without its notifications.
func (w *matchingWorkflow) RequestItem(ctx context.Context, medicineName string, requesterID uint, contact models.ContactInfo) (*models.RequestRecord, error) {
	record, donorID, err := w.ledger.CreateRequest(ctx, medicineName, requesterID, contact)
	if err != nil {
		return nil, err
	}

	notices := []struct {
		recipient uint
		message   string
	}{
		{donorID, donorMessage(medicineName)},
		{requesterID, requesterMessage(medicineName)},
	}
	for _, n := range notices {
		if _, err := w.outbox.Append(ctx, n.recipient, n.message); err != nil {
			logrus.WithFields(logrus.Fields{
				"item_name":    medicineName,
				"request_id":   record.ID,
				"recipient_id": n.recipient,
			}).WithError(err).Warn("request committed but notification append failed")
		}
	}
	return record, nil
}
