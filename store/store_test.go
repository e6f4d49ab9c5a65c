package store

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"quickbite-api/config"
	"quickbite-api/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := config.OpenDB()
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	s := New(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	return s
}

func TestSeed(t *testing.T) {
	s := newTestStore(t)

	if got := len(s.Restaurants(RestaurantFilter{})); got != 6 {
		t.Errorf("restaurants = %d, want 6", got)
	}
	if got := len(s.Coupons()); got != 4 {
		t.Errorf("coupons = %d, want 4", got)
	}
	if got := len(s.Orders("")); got != 2 {
		t.Errorf("orders = %d, want 2", got)
	}
	if got := len(s.Tasks("")); got != 2 {
		t.Errorf("tasks = %d, want 2", got)
	}

	order, err := s.OrderByID("ORD001")
	if err != nil {
		t.Fatalf("OrderByID(ORD001) error = %v", err)
	}
	if order.Status != models.StatusPending {
		t.Errorf("ORD001 status = %s, want pending", order.Status)
	}
	if order.Total != order.Subtotal+order.DeliveryFee-order.Discount {
		t.Errorf("seed order breaks total identity: %+v", order)
	}
}

func TestCartMutations(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddItem("nope"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("AddItem(unknown) error = %v, want ErrItemNotFound", err)
	}

	view, err := s.AddItem("m1")
	if err != nil {
		t.Fatalf("AddItem(m1) error = %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 1 {
		t.Fatalf("cart after first add = %+v", view.Items)
	}

	// adding the same item again increments the existing line
	view, _ = s.AddItem("m1")
	if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
		t.Fatalf("cart after second add = %+v", view.Items)
	}
	if view.Pricing.Subtotal != 700 || view.Pricing.Total != 740 {
		t.Errorf("pricing = %+v, want subtotal 700 total 740", view.Pricing)
	}

	view, err = s.SetQuantity("m1", 3)
	if err != nil || view.Items[0].Quantity != 3 {
		t.Fatalf("SetQuantity(3) = %+v, err %v", view.Items, err)
	}

	// zero or negative quantity removes the line rather than keeping it
	view, err = s.SetQuantity("m1", 0)
	if err != nil || len(view.Items) != 0 {
		t.Fatalf("SetQuantity(0) left %+v, err %v", view.Items, err)
	}
	if view.Pricing.DeliveryFee != 0 {
		t.Errorf("empty cart still charged delivery fee: %+v", view.Pricing)
	}

	if _, err := s.RemoveItem("m1"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("RemoveItem(absent) error = %v, want ErrItemNotFound", err)
	}
}

func TestApplyCoupon(t *testing.T) {
	s := newTestStore(t)
	s.AddItem("m1")
	s.AddItem("m1") // subtotal 700

	if _, err := s.ApplyCoupon("NOSUCH"); !errors.Is(err, ErrInvalidCoupon) {
		t.Errorf("unknown code error = %v, want ErrInvalidCoupon", err)
	}

	// matching is case-insensitive
	coupon, err := s.ApplyCoupon("first50")
	if err != nil {
		t.Fatalf("ApplyCoupon(first50) error = %v", err)
	}
	if coupon.Code != "FIRST50" {
		t.Errorf("resolved code = %s, want FIRST50", coupon.Code)
	}
	view := s.Cart()
	if view.Pricing.Discount != 100 || view.Pricing.Total != 640 {
		t.Errorf("pricing with FIRST50 = %+v, want discount 100 total 640", view.Pricing)
	}

	// a second valid apply replaces, never stacks
	if _, err := s.ApplyCoupon("SAVE20"); err != nil {
		t.Fatalf("ApplyCoupon(SAVE20) error = %v", err)
	}
	view = s.Cart()
	if view.Coupon == nil || view.Coupon.Code != "SAVE20" {
		t.Fatalf("applied coupon = %+v, want SAVE20", view.Coupon)
	}
	if view.Pricing.Discount != 140 { // 700 * 20%
		t.Errorf("discount after replace = %d, want 140", view.Pricing.Discount)
	}

	s.RemoveCoupon()
	if view = s.Cart(); view.Coupon != nil || view.Pricing.Discount != 0 {
		t.Errorf("after RemoveCoupon: coupon %+v discount %d", view.Coupon, view.Pricing.Discount)
	}
	// removing again is harmless
	s.RemoveCoupon()
}

func TestApplyCouponBelowMinimum(t *testing.T) {
	s := newTestStore(t)
	s.AddItem("m4") // ₹60 naan

	_, err := s.ApplyCoupon("WELCOME100")
	var minErr *MinimumNotMetError
	if !errors.As(err, &minErr) {
		t.Fatalf("error = %v, want MinimumNotMetError", err)
	}
	if minErr.Min != 300 {
		t.Errorf("reported minimum = %d, want 300", minErr.Min)
	}
	if view := s.Cart(); view.Coupon != nil {
		t.Errorf("failed apply changed state: %+v", view.Coupon)
	}
}

func TestCheckout(t *testing.T) {
	s := newTestStore(t)
	s.AddItem("m1")
	s.AddItem("m1")
	s.ApplyCoupon("FIRST50")

	order, err := s.Checkout("42 Test Lane, Bangalore", "upi")
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if order.Status != models.StatusConfirmed {
		t.Errorf("new order status = %s, want confirmed", order.Status)
	}
	if order.Subtotal != 700 || order.Discount != 100 || order.Total != 640 {
		t.Errorf("order pricing = %d/%d/%d, want 700/100/640", order.Subtotal, order.Discount, order.Total)
	}
	if order.CouponCode != "FIRST50" {
		t.Errorf("coupon code = %q, want FIRST50", order.CouponCode)
	}
	if order.ID != "ORD004" { // ORD003 is reserved by TASK002's dangling reference
		t.Errorf("order id = %s, want ORD004", order.ID)
	}
	if len(order.Items) != 1 || order.Items[0].Name != "Butter Chicken" {
		t.Errorf("order items = %+v", order.Items)
	}

	// exactly one task, correlated, assigned, with snapshots
	tasks := s.Tasks("")
	if len(tasks) != 3 {
		t.Fatalf("tasks after checkout = %d, want 3", len(tasks))
	}
	var task models.DeliveryTask
	found := false
	for _, tk := range tasks {
		if tk.OrderID == order.ID {
			if found {
				t.Fatal("more than one task for the new order")
			}
			task, found = tk, true
		}
	}
	if !found {
		t.Fatal("no task created for the new order")
	}
	if task.Status != models.TaskAssigned {
		t.Errorf("task status = %s, want assigned", task.Status)
	}
	if task.RestaurantName != "Spice Route" || task.CustomerAddress != "42 Test Lane, Bangalore" {
		t.Errorf("task snapshot = %+v", task)
	}

	// cart and coupon are cleared unconditionally
	if view := s.Cart(); len(view.Items) != 0 || view.Coupon != nil {
		t.Errorf("cart not cleared after checkout: %+v", view)
	}
}

func TestCheckoutFailures(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Checkout("42 Test Lane", "upi"); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("empty cart error = %v, want ErrEmptyCart", err)
	}

	s.AddItem("m1")
	if _, err := s.Checkout("   ", "upi"); !errors.Is(err, ErrMissingAddress) {
		t.Errorf("blank address error = %v, want ErrMissingAddress", err)
	}

	// failed checkouts create nothing and keep the cart
	if got := len(s.Orders("")); got != 2 {
		t.Errorf("orders after failed checkouts = %d, want 2", got)
	}
	if view := s.Cart(); len(view.Items) != 1 {
		t.Errorf("cart lost after failed checkout: %+v", view.Items)
	}
}

func TestAcceptAndRejectOrder(t *testing.T) {
	s := newTestStore(t)

	order, err := s.AcceptOrder("ORD001") // pending seed order
	if err != nil {
		t.Fatalf("AcceptOrder(ORD001) error = %v", err)
	}
	if order.Status != models.StatusPreparing {
		t.Errorf("accepted status = %s, want preparing", order.Status)
	}

	// rejection only works from pending; ORD001 is now preparing
	_, err = s.RejectOrder("ORD001")
	var trErr *TransitionError
	if !errors.As(err, &trErr) {
		t.Fatalf("RejectOrder(preparing) error = %v, want TransitionError", err)
	}
	if trErr.Current != models.StatusPreparing {
		t.Errorf("TransitionError.Current = %s, want preparing", trErr.Current)
	}

	if _, err := s.AcceptOrder("ORD999"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("unknown order error = %v, want ErrOrderNotFound", err)
	}
}

func TestTaskPickupDrivesOrder(t *testing.T) {
	s := newTestStore(t)

	// TASK001 correlates with ORD002 (preparing)
	task, err := s.PickupTask("TASK001")
	if err != nil {
		t.Fatalf("PickupTask error = %v", err)
	}
	if task.Status != models.TaskPickedUp {
		t.Errorf("task status = %s, want picked_up", task.Status)
	}
	order, _ := s.OrderByID("ORD002")
	if order.Status != models.StatusOutForDelivery {
		t.Errorf("correlated order = %s, want out_for_delivery", order.Status)
	}

	task, err = s.CompleteTask("TASK001")
	if err != nil {
		t.Fatalf("CompleteTask error = %v", err)
	}
	if task.Status != models.TaskDelivered {
		t.Errorf("task status = %s, want delivered", task.Status)
	}
	order, _ = s.OrderByID("ORD002")
	if order.Status != models.StatusDelivered {
		t.Errorf("correlated order = %s, want delivered", order.Status)
	}

	// a delivered task is terminal
	if _, err := s.PickupTask("TASK001"); err == nil {
		t.Error("picking up a delivered task should fail")
	}
}

func TestTaskPickupFromConfirmedOrder(t *testing.T) {
	s := newTestStore(t)
	s.AddItem("m6")
	order, err := s.Checkout("12 Lake Road, Bangalore", "card")
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	var taskID string
	for _, tk := range s.Tasks("") {
		if tk.OrderID == order.ID {
			taskID = tk.ID
		}
	}
	if taskID == "" {
		t.Fatal("no task for new order")
	}

	// order is still confirmed; pickup must drive it straight out for delivery
	if _, err := s.PickupTask(taskID); err != nil {
		t.Fatalf("PickupTask error = %v", err)
	}
	got, _ := s.OrderByID(order.ID)
	if got.Status != models.StatusOutForDelivery {
		t.Errorf("order = %s, want out_for_delivery", got.Status)
	}
}

func TestStaleTaskCorrelation(t *testing.T) {
	s := newTestStore(t)

	// TASK002 references ORD003, which does not exist; the task must
	// still transition
	task, err := s.PickupTask("TASK002")
	if err != nil {
		t.Fatalf("PickupTask(stale) error = %v", err)
	}
	if task.Status != models.TaskPickedUp {
		t.Errorf("stale task status = %s, want picked_up", task.Status)
	}
	if _, err := s.OrderByID("ORD003"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("ORD003 should not exist, got err %v", err)
	}

	if _, err := s.CompleteTask("TASK002"); err != nil {
		t.Fatalf("CompleteTask(stale) error = %v", err)
	}
}

func TestTaskSkipRejected(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CompleteTask("TASK001") // still assigned
	var taskErr *TaskTransitionError
	if !errors.As(err, &taskErr) {
		t.Fatalf("error = %v, want TaskTransitionError", err)
	}
	if taskErr.Current != models.TaskAssigned {
		t.Errorf("TaskTransitionError.Current = %s, want assigned", taskErr.Current)
	}
}

func TestAutoAdvance(t *testing.T) {
	s := newTestStore(t)
	s.AddItem("m10")
	order, err := s.Checkout("9 Hill View, Bangalore", "cod")
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	want := []models.OrderStatus{
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}
	for i, w := range want {
		status, done, err := s.AutoAdvance(order.ID)
		if err != nil {
			t.Fatalf("AutoAdvance #%d error = %v", i, err)
		}
		if status != w {
			t.Fatalf("AutoAdvance #%d = %s, want %s", i, status, w)
		}
		if done != (w == models.StatusDelivered) {
			t.Fatalf("AutoAdvance #%d done = %v at %s", i, done, status)
		}
	}

	// delivered orders are done; nothing advances further
	status, done, err := s.AutoAdvance(order.ID)
	if err != nil || !done || status != models.StatusDelivered {
		t.Errorf("AutoAdvance(delivered) = %s done=%v err=%v", status, done, err)
	}

	// pending orders are off the tracking timeline
	status, done, err = s.AutoAdvance("ORD001")
	if err != nil || !done || status != models.StatusPending {
		t.Errorf("AutoAdvance(pending) = %s done=%v err=%v", status, done, err)
	}

	if _, _, err := s.AutoAdvance("ORD999"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("AutoAdvance(unknown) error = %v, want ErrOrderNotFound", err)
	}
}
