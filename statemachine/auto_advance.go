package statemachine

import "quickbite-api/models"

// displaySequence is the four-step timeline the tracking view shows a
// customer. The simulation advances along it one step per tick; statuses
// outside the sequence (pending, cancelled, ...) are not simulated.
var displaySequence = []models.OrderStatus{
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// NextDisplayStatus returns the step after the given status on the
// tracking timeline. ok is false when the status is delivered (nothing
// left to simulate) or not on the timeline at all.
func NextDisplayStatus(status models.OrderStatus) (models.OrderStatus, bool) {
	for i, s := range displaySequence {
		if s == status && i+1 < len(displaySequence) {
			return displaySequence[i+1], true
		}
	}
	return "", false
}

// DisplaySequence returns the tracking timeline in order.
func DisplaySequence() []models.OrderStatus {
	return displaySequence
}
