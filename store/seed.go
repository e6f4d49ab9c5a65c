package store

import (
	"time"

	"quickbite-api/models"
	"quickbite-api/pricing"
)

// Seed loads the demo catalog: six restaurants, their menus, the coupon
// book, one customer, two historical orders and two open delivery tasks.
// TASK002 deliberately references an order that does not exist — it
// exercises the stale-correlation path.
func (s *Store) Seed() error {
	user := models.User{
		ID: DemoUserID, Name: "Customer", Email: "customer@example.com",
		Role: models.RoleCustomer,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}

	restaurants := []models.Restaurant{
		{
			ID: "1", Name: "Spice Route", Cuisine: "Indian,North Indian,Biryani",
			Rating: 4.5, DeliveryTime: "25-30 min", PriceForTwo: 400, Distance: "2.5 km",
			Address: "789 Food Plaza, Koramangala, Bangalore",
			IsOpen:  true, Promoted: true, Offers: "50% off up to ₹100,Free delivery",
		},
		{
			ID: "2", Name: "Pizza Paradise", Cuisine: "Pizza,Italian,Fast Food",
			Rating: 4.3, DeliveryTime: "30-35 min", PriceForTwo: 600, Distance: "3.2 km",
			Address: "321 Pizza Street, Indiranagar, Bangalore",
			IsOpen:  true, Offers: "Buy 1 Get 1 Free",
		},
		{
			ID: "3", Name: "Burger Barn", Cuisine: "Burgers,American,Fast Food",
			Rating: 4.2, DeliveryTime: "20-25 min", PriceForTwo: 350, Distance: "1.8 km",
			Address: "55 Patty Lane, HSR Layout, Bangalore",
			IsOpen:  true, Promoted: true, Offers: "20% off",
		},
		{
			ID: "4", Name: "Wok Express", Cuisine: "Chinese,Asian,Noodles",
			Rating: 4.1, DeliveryTime: "35-40 min", PriceForTwo: 450, Distance: "4.5 km",
			Address: "12 Dragon Court, Whitefield, Bangalore", IsOpen: true,
		},
		{
			ID: "5", Name: "Green Bowl", Cuisine: "Healthy,Salads,Continental",
			Rating: 4.6, DeliveryTime: "25-30 min", PriceForTwo: 500, Distance: "2.1 km",
			Address: "7 Garden View, Jayanagar, Bangalore",
			IsOpen:  true, Offers: "Free delivery",
		},
		{
			ID: "6", Name: "Sweet Treats", Cuisine: "Desserts,Ice Cream,Bakery",
			Rating: 4.4, DeliveryTime: "15-20 min", PriceForTwo: 300, Distance: "1.2 km",
			Address: "90 Sugar Street, Koramangala, Bangalore", IsOpen: false,
		},
	}
	if err := s.db.Create(&restaurants).Error; err != nil {
		return err
	}

	items := []models.MenuItem{
		{ID: "m1", RestaurantID: "1", Name: "Butter Chicken", Description: "Creamy tomato-based curry with tender chicken pieces", Price: 350, Category: "Main Course", IsVeg: false, IsBestseller: true, Rating: 4.7},
		{ID: "m2", RestaurantID: "1", Name: "Paneer Tikka Masala", Description: "Grilled cottage cheese in rich spiced gravy", Price: 280, Category: "Main Course", IsVeg: true, IsBestseller: true, Rating: 4.5},
		{ID: "m3", RestaurantID: "1", Name: "Chicken Biryani", Description: "Aromatic basmati rice with marinated chicken and spices", Price: 320, Category: "Biryani", IsVeg: false, IsBestseller: true, Rating: 4.8},
		{ID: "m4", RestaurantID: "1", Name: "Garlic Naan", Description: "Soft flatbread topped with garlic and butter", Price: 60, Category: "Breads", IsVeg: true, Rating: 4.3},
		{ID: "m5", RestaurantID: "1", Name: "Dal Makhani", Description: "Slow-cooked black lentils in creamy tomato gravy", Price: 220, Category: "Main Course", IsVeg: true, Rating: 4.4},
		{ID: "m6", RestaurantID: "2", Name: "Margherita Pizza", Description: "Classic tomato sauce, mozzarella, and fresh basil", Price: 299, Category: "Pizza", IsVeg: true, IsBestseller: true, Rating: 4.5},
		{ID: "m7", RestaurantID: "2", Name: "Pepperoni Feast", Description: "Loaded with pepperoni and extra cheese", Price: 449, Category: "Pizza", IsVeg: false, IsBestseller: true, Rating: 4.6},
		{ID: "m8", RestaurantID: "2", Name: "BBQ Chicken Pizza", Description: "Grilled chicken with BBQ sauce and onions", Price: 399, Category: "Pizza", IsVeg: false, Rating: 4.4},
		{ID: "m9", RestaurantID: "2", Name: "Garlic Breadsticks", Description: "Crispy breadsticks with garlic butter and herbs", Price: 120, Category: "Sides", IsVeg: true, Rating: 4.2},
		{ID: "m10", RestaurantID: "3", Name: "Classic Beef Burger", Description: "Juicy beef patty with lettuce, tomato, and special sauce", Price: 249, Category: "Burgers", IsVeg: false, IsBestseller: true, Rating: 4.5},
		{ID: "m11", RestaurantID: "3", Name: "Veggie Delight Burger", Description: "Crispy veggie patty with fresh vegetables", Price: 199, Category: "Burgers", IsVeg: true, IsBestseller: true, Rating: 4.3},
		{ID: "m12", RestaurantID: "3", Name: "Chicken Crispy Burger", Description: "Crunchy fried chicken with mayo and coleslaw", Price: 229, Category: "Burgers", IsVeg: false, Rating: 4.4},
		{ID: "m13", RestaurantID: "3", Name: "French Fries", Description: "Crispy golden fries with seasoning", Price: 99, Category: "Sides", IsVeg: true, Rating: 4.2},
	}
	if err := s.db.Create(&items).Error; err != nil {
		return err
	}

	coupons := []models.Coupon{
		{ID: "c1", Code: "FIRST50", Description: "50% off on your first order", Discount: 50, DiscountType: models.DiscountPercentage, MinOrderValue: 200, MaxDiscount: 100},
		{ID: "c2", Code: "WELCOME100", Description: "Flat ₹100 off", Discount: 100, DiscountType: models.DiscountFixed, MinOrderValue: 300},
		{ID: "c3", Code: "FREEDEL", Description: "Free delivery on orders above ₹199", Discount: 40, DiscountType: models.DiscountFixed, MinOrderValue: 199},
		{ID: "c4", Code: "SAVE20", Description: "20% off up to ₹150", Discount: 20, DiscountType: models.DiscountPercentage, MinOrderValue: 400, MaxDiscount: 150},
	}
	if err := s.db.Create(&coupons).Error; err != nil {
		return err
	}

	now := time.Now()
	orders := []models.Order{
		{
			ID: "ORD001", UserID: DemoUserID, RestaurantID: "1",
			Items: []models.OrderItem{
				{MenuItemID: "m1", Name: "Butter Chicken", Price: 350, Quantity: 2},
				{MenuItemID: "m3", Name: "Chicken Biryani", Price: 320, Quantity: 1, IsVeg: false},
			},
			Subtotal: 1020, DeliveryFee: pricing.DeliveryFee, Discount: 0, Total: 1060,
			Status:          models.StatusPending,
			DeliveryAddress: "123 Main Street, Bangalore",
			PlacedAt:        now.Format("02/01/2006, 15:04:05"),
			EstimatedDeliveryTime: "30-35 min",
		},
		{
			ID: "ORD002", UserID: "user2", RestaurantID: "1",
			Items: []models.OrderItem{
				{MenuItemID: "m2", Name: "Paneer Tikka Masala", Price: 280, Quantity: 1, IsVeg: true},
			},
			Subtotal: 280, DeliveryFee: pricing.DeliveryFee, Discount: 0, Total: 320,
			Status:          models.StatusPreparing,
			DeliveryAddress: "456 Park Avenue, Bangalore",
			PlacedAt:        now.Add(-10 * time.Minute).Format("02/01/2006, 15:04:05"),
			EstimatedDeliveryTime: "25-30 min",
		},
	}
	if err := s.db.Create(&orders).Error; err != nil {
		return err
	}

	tasks := []models.DeliveryTask{
		{
			ID: "TASK001", OrderID: "ORD002",
			RestaurantName: "Spice Route", RestaurantAddress: "789 Food Plaza, Koramangala, Bangalore",
			CustomerName: "John Doe", CustomerAddress: "456 Park Avenue, HSR Layout, Bangalore",
			Status: models.TaskAssigned, EstimatedTime: "25 min",
		},
		{
			ID: "TASK002", OrderID: "ORD003",
			RestaurantName: "Pizza Paradise", RestaurantAddress: "321 Pizza Street, Indiranagar, Bangalore",
			CustomerName: "Jane Smith", CustomerAddress: "789 Lake View, Bellandur, Bangalore",
			Status: models.TaskAssigned, EstimatedTime: "30 min",
		},
	}
	return s.db.Create(&tasks).Error
}
