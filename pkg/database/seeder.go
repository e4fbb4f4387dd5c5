package database

import (
	"log"

	"ordering-app/config"
	"ordering-app/internal/models"
	"ordering-app/internal/utils"

	"gorm.io/gorm"
)

// Seed populates the initial catalog, accounts and promo codes on first boot.
// Safe to call on every start; existing rows are left alone.
func Seed() {
	seedCatalog()
	seedUsers()
	seedPromos()
}

func seedUsers() {
	password := config.AppConfig.Defaults.SeedPassword

	var owner models.User
	if err := DB.Where("email = ?", config.AppConfig.Defaults.OwnerEmail).First(&owner).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashedPassword, _ := utils.HashPassword(password)
			owner = models.User{
				Name:         "System Owner",
				Email:        config.AppConfig.Defaults.OwnerEmail,
				Phone:        "123-456-7890",
				PasswordHash: hashedPassword,
				Role:         models.RoleOwner,
			}
			if err := DB.Create(&owner).Error; err != nil {
				log.Printf("Failed to seed owner user: %v", err)
			} else {
				log.Println("Owner user seeded successfully.")
			}
		}
	}

	seedAccount := func(name, email, phone, role string, assignedRestaurantID *uint) {
		var user models.User
		if err := DB.Where("email = ?", email).First(&user).Error; err == gorm.ErrRecordNotFound {
			hashedPassword, _ := utils.HashPassword(password)
			user = models.User{
				Name:                 name,
				Email:                email,
				Phone:                phone,
				PasswordHash:         hashedPassword,
				Role:                 role,
				AssignedRestaurantID: assignedRestaurantID,
			}
			if err := DB.Create(&user).Error; err != nil {
				log.Printf("Failed to seed user %s: %v", email, err)
			}
		}
	}

	var burger models.Restaurant
	var assigned *uint
	if err := DB.Where("name = ?", "Burger Kingpin").First(&burger).Error; err == nil {
		assigned = &burger.ID
	}
	seedAccount("Admin Burger", "admin@burger.com", "987-654-3210", models.RoleAdmin, assigned)
	seedAccount("John Doe", "user@gmail.com", "555-555-5555", models.RoleUser, nil)
}

func seedCatalog() {
	restaurants := []models.Restaurant{
		{Name: "Burger Kingpin", Description: "The best flame-grilled burgers in town.", Image: "https://picsum.photos/800/600?random=1", DeliveryFee: 2.99, Rating: 4.5},
		{Name: "Sushi Master", Description: "Fresh japanese cuisine and rolls.", Image: "https://picsum.photos/800/600?random=2", DeliveryFee: 4.99, Rating: 4.8},
		{Name: "Pizza Palace", Description: "Authentic Italian stone-baked pizza.", Image: "https://picsum.photos/800/600?random=3", DeliveryFee: 1.99, Rating: 4.2},
	}
	for i := range restaurants {
		var existing models.Restaurant
		if err := DB.Where("name = ?", restaurants[i].Name).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := DB.Create(&restaurants[i]).Error; err != nil {
				log.Printf("Failed to seed restaurant %s: %v", restaurants[i].Name, err)
			}
		} else {
			restaurants[i] = existing
		}
	}

	menuItems := []models.MenuItem{
		{RestaurantID: restaurants[0].ID, Name: "Classic Cheese", Description: "Beef patty, cheddar, lettuce.", Price: 8.99, Category: "Burgers", Available: true},
		{RestaurantID: restaurants[0].ID, Name: "Bacon Deluxe", Description: "Double beef, bacon, bbq sauce.", Price: 12.99, Category: "Burgers", Available: true},
		{RestaurantID: restaurants[1].ID, Name: "Salmon Roll", Description: "Fresh salmon, avocado, rice.", Price: 6.50, Category: "Sushi", Available: true},
		{RestaurantID: restaurants[2].ID, Name: "Pepperoni", Description: "Mozzarella and spicy pepperoni.", Price: 14.00, Category: "Pizza", Available: true},
	}
	for _, item := range menuItems {
		var existing models.MenuItem
		if err := DB.Where("name = ? AND restaurant_id = ?", item.Name, item.RestaurantID).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := DB.Create(&item).Error; err != nil {
				log.Printf("Failed to seed menu item %s: %v", item.Name, err)
			}
		}
	}
}

func seedPromos() {
	promos := []models.DiscountCode{
		{Code: "WELCOME10", Percentage: 10, Active: true},
		{Code: "SAVE20", Percentage: 20, Active: true},
	}
	for _, promo := range promos {
		var existing models.DiscountCode
		if err := DB.Where("code = ?", promo.Code).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := DB.Create(&promo).Error; err != nil {
				log.Printf("Failed to seed promo code %s: %v", promo.Code, err)
			}
		}
	}
}
