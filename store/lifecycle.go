package store

import (
	"quickbite-api/models"
	"quickbite-api/statemachine"
)

// transitionOrder applies one validated order transition under the lock.
func (s *Store) transitionOrder(id string, to models.OrderStatus, actor string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	if err := statemachine.CanTransition(order.Status, to, actor); err != nil {
		return models.Order{}, &TransitionError{Current: order.Status, Reason: err}
	}
	if err := s.db.Model(&order).Update("status", to).Error; err != nil {
		return models.Order{}, err
	}
	order.Status = to
	return order, nil
}

// AcceptOrder is the restaurant taking an order into preparation. It
// works on live confirmed orders and on pre-seeded pending ones.
func (s *Store) AcceptOrder(id string) (models.Order, error) {
	return s.transitionOrder(id, models.StatusPreparing, statemachine.ActorRestaurant)
}

// RejectOrder cancels an order; only pending orders can be rejected.
func (s *Store) RejectOrder(id string) (models.Order, error) {
	return s.transitionOrder(id, models.StatusCancelled, statemachine.ActorRestaurant)
}

// transitionTask moves a delivery task one step and drives the correlated
// order along with it. A task whose order cannot be found still
// transitions: the order side is simply left stale (pre-seeded tasks
// reference orders that never existed, and that is not an error here).
func (s *Store) transitionTask(id string, to models.TaskStatus) (models.DeliveryTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var task models.DeliveryTask
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		return models.DeliveryTask{}, ErrTaskNotFound
	}
	if err := statemachine.CanTaskTransition(task.Status, to); err != nil {
		return models.DeliveryTask{}, &TaskTransitionError{Current: task.Status, Reason: err}
	}
	if err := s.db.Model(&task).Update("status", to).Error; err != nil {
		return models.DeliveryTask{}, err
	}
	task.Status = to

	if target, ok := statemachine.OrderStatusForTask(to); ok {
		s.driveOrder(task.OrderID, target)
	}
	return task, nil
}

// driveOrder pushes the correlated order toward the status a task
// transition implies. Orders already at or past the target stay put
// (transitions never move backward); a missing order is logged and
// ignored.
func (s *Store) driveOrder(orderID string, target models.OrderStatus) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		s.log.Warn("delivery task references unknown order",
			"order_id", orderID,
			"target_status", string(target),
		)
		return
	}
	if statemachine.Rank(order.Status) >= statemachine.Rank(target) {
		return
	}
	if err := statemachine.CanTransition(order.Status, target, statemachine.ActorDelivery); err != nil {
		s.log.Warn("order not driven by task transition",
			"order_id", orderID,
			"current_status", string(order.Status),
			"target_status", string(target),
		)
		return
	}
	s.db.Model(&order).Update("status", target)
}

// PickupTask is the delivery partner collecting the order from the
// restaurant; the correlated order goes out for delivery.
func (s *Store) PickupTask(id string) (models.DeliveryTask, error) {
	return s.transitionTask(id, models.TaskPickedUp)
}

// CompleteTask is the handover to the customer; the correlated order is
// delivered.
func (s *Store) CompleteTask(id string) (models.DeliveryTask, error) {
	return s.transitionTask(id, models.TaskDelivered)
}

// AutoAdvance moves a tracked order one step along the display timeline.
// done reports that there is nothing further to simulate, either because
// the order reached delivered or because its status is off the timeline.
func (s *Store) AutoAdvance(orderID string) (models.OrderStatus, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order models.Order
	if err := s.db.First(&order, "id = ?", orderID).Error; err != nil {
		return "", true, ErrOrderNotFound
	}
	next, ok := statemachine.NextDisplayStatus(order.Status)
	if !ok {
		return order.Status, true, nil
	}
	if err := statemachine.CanTransition(order.Status, next, statemachine.ActorSystem); err != nil {
		return order.Status, true, nil
	}
	if err := s.db.Model(&order).Update("status", next).Error; err != nil {
		return order.Status, true, err
	}
	return next, next == models.StatusDelivered, nil
}
