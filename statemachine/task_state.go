package statemachine

import (
	"errors"

	"quickbite-api/models"
)

// taskNext is the strictly linear delivery-task progression.
var taskNext = map[models.TaskStatus]models.TaskStatus{
	models.TaskAssigned: models.TaskPickedUp,
	models.TaskPickedUp: models.TaskDelivered,
}

// CanTaskTransition validates a delivery-task move. The task machine is
// linear: assigned → picked_up → delivered, one step at a time.
func CanTaskTransition(from, to models.TaskStatus) error {
	if next, ok := taskNext[from]; ok && next == to {
		return nil
	}
	if from == models.TaskDelivered {
		return errors.New("invalid transition: task is already delivered (terminal state)")
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			". Tasks move assigned → picked_up → delivered, one step at a time",
	)
}

// OrderStatusForTask maps a task transition onto the order status it must
// drive: pickup puts the order out for delivery, completion delivers it.
// Task statuses with no cross-link (assigned) report ok=false.
func OrderStatusForTask(status models.TaskStatus) (models.OrderStatus, bool) {
	switch status {
	case models.TaskPickedUp:
		return models.StatusOutForDelivery, true
	case models.TaskDelivered:
		return models.StatusDelivered, true
	default:
		return "", false
	}
}
