package statemachine

import (
	"errors"

	"quickbite-api/models"
)

// Actor names who may drive a transition.
const (
	ActorRestaurant = "restaurant"
	ActorDelivery   = "delivery"
	ActorSystem     = "system"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// validTransitions is the authoritative state machine definition.
// "ready" and "picked_up" exist in the status enum but no trigger
// reaches them; the demo's fulfillment path jumps straight from
// preparing to out_for_delivery when the delivery partner picks up.
var validTransitions = []Transition{
	// Restaurant accepts a pre-seeded pending order or a live confirmed one
	{From: models.StatusPending, To: models.StatusPreparing, Actor: ActorRestaurant},
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: ActorRestaurant},
	// Rejection is only reachable from pending
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorRestaurant},
	// Delivery pickup drives the order out for delivery
	{From: models.StatusConfirmed, To: models.StatusOutForDelivery, Actor: ActorDelivery},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: ActorDelivery},
	// Delivery completion
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: ActorDelivery},
	// Tracking simulation walks the display sequence one step at a time
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: ActorSystem},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: ActorSystem},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: ActorSystem},
}

// statusRank orders every status along the lifecycle; transitions must
// never decrease it.
var statusRank = map[models.OrderStatus]int{
	models.StatusPending:        0,
	models.StatusConfirmed:      1,
	models.StatusPreparing:      2,
	models.StatusReady:          3,
	models.StatusPickedUp:       4,
	models.StatusOutForDelivery: 5,
	models.StatusDelivered:      6,
	models.StatusCancelled:      7,
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// IsTerminal reports whether no trigger can leave the given status.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// Rank exposes the lifecycle position of a status; unknown statuses get -1.
func Rank(status models.OrderStatus) int {
	if r, ok := statusRank[status]; ok {
		return r
	}
	return -1
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
