package config

import (
	"log"
	"time"

	"gorm.io/gorm"

	"fleachain_backend/models"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func timestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed loads the fixed demo data set: three users, six listings, two orders,
// one review and a short conversation. The database is in-memory so there is
// nothing to check for; every start begins from scratch.
func Seed(db *gorm.DB) error {
	log.Println("🌱 Seeding demo marketplace data...")

	users := []models.User{
		{
			ID:            "user-1",
			Username:      "AliceBlockchain",
			WalletAddress: "0x1a2b3c4d5e6f7g8h9i0j",
			Avatar:        "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150",
			Reputation:    4.8,
			JoinedDate:    date("2024-01-15"),
		},
		{
			ID:            "user-2",
			Username:      "BobCrypto",
			WalletAddress: "0x0j9i8h7g6f5e4d3c2b1a",
			Avatar:        "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150",
			Reputation:    4.5,
			JoinedDate:    date("2024-02-20"),
		},
		{
			ID:            "user-3",
			Username:      "CharlieNFT",
			WalletAddress: "0x2b3c4d5e6f7g8h9i0j1a",
			Avatar:        "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150",
			Reputation:    4.9,
			JoinedDate:    date("2023-12-10"),
		},
	}

	products := []models.Product{
		{
			ID:          "product-1",
			Title:       "Vintage Mechanical Keyboard",
			Description: "Rare mechanical keyboard from the 90s, fully functional with Cherry MX Blue switches. Perfect for collectors and typing enthusiasts.",
			Price:       120,
			Currency:    "ICP",
			Images: []string{
				"https://images.pexels.com/photos/3937174/pexels-photo-3937174.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/1772123/pexels-photo-1772123.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Category:  "Electronics",
			Condition: models.ConditionGood,
			Location:  "San Francisco, CA",
			SellerID:  "user-1",
			CreatedAt: timestamp("2025-03-15T10:30:00Z"),
			Status:    models.ProductStatusActive,
		},
		{
			ID:          "product-2",
			Title:       "Digital Art Collection - Blockchain Series",
			Description: "Limited edition digital art collection inspired by blockchain technology. Includes 5 high-resolution images with certificate of authenticity.",
			Price:       250,
			Currency:    "ICP",
			Images: []string{
				"https://images.pexels.com/photos/2110951/pexels-photo-2110951.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/3328892/pexels-photo-3328892.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Category:  "Art",
			Condition: models.ConditionNew,
			Location:  "New York, NY",
			SellerID:  "user-2",
			CreatedAt: timestamp("2025-03-10T14:45:00Z"),
			Status:    models.ProductStatusActive,
		},
		{
			ID:          "product-3",
			Title:       "Mountain Bike - Trek 3500",
			Description: "Trek 3500 mountain bike, 3 years old but in excellent condition. Recently serviced with new brake pads and tuned gears.",
			Price:       400,
			Currency:    "ICP",
			Images: []string{
				"https://images.pexels.com/photos/100582/pexels-photo-100582.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/5234774/pexels-photo-5234774.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Category:  "Sports",
			Condition: models.ConditionGood,
			Location:  "Austin, TX",
			SellerID:  "user-3",
			CreatedAt: timestamp("2025-03-05T09:15:00Z"),
			Status:    models.ProductStatusActive,
		},
		{
			ID:          "product-4",
			Title:       "Handcrafted Leather Wallet",
			Description: "Handmade genuine leather wallet with multiple card slots and RFID protection. Crafted with premium quality full-grain leather.",
			Price:       75,
			Currency:    "ICP",
			Images: []string{
				"https://images.pexels.com/photos/2252338/pexels-photo-2252338.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/9429970/pexels-photo-9429970.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Category:  "Fashion",
			Condition: models.ConditionNew,
			Location:  "Portland, OR",
			SellerID:  "user-1",
			CreatedAt: timestamp("2025-03-02T16:20:00Z"),
			Status:    models.ProductStatusActive,
		},
		{
			ID:          "product-5",
			Title:       "Smart Home Hub - Latest Model",
			Description: "Latest model smart home hub with voice control. Compatible with all major smart home devices. Lightly used for 2 months.",
			Price:       180,
			Currency:    "ICP",
			Images: []string{
				"https://images.pexels.com/photos/4790255/pexels-photo-4790255.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/3938023/pexels-photo-3938023.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Category:  "Electronics",
			Condition: models.ConditionLikeNew,
			Location:  "Seattle, WA",
			SellerID:  "user-2",
			CreatedAt: timestamp("2025-02-28T11:10:00Z"),
			Status:    models.ProductStatusActive,
		},
		{
			ID:          "product-6",
			Title:       "Antique Wooden Bookshelf",
			Description: "Beautiful antique wooden bookshelf from the early 1900s. Solid oak construction with intricate carvings. Some minor wear consistent with age.",
			Price:       350,
			Currency:    "ICP",
			Images: []string{
				"https://images.pexels.com/photos/1090638/pexels-photo-1090638.jpeg?auto=compress&cs=tinysrgb&w=600",
				"https://images.pexels.com/photos/1957478/pexels-photo-1957478.jpeg?auto=compress&cs=tinysrgb&w=600",
			},
			Category:  "Furniture",
			Condition: models.ConditionGood,
			Location:  "Chicago, IL",
			SellerID:  "user-3",
			CreatedAt: timestamp("2025-02-25T13:30:00Z"),
			Status:    models.ProductStatusActive,
		},
	}

	orders := []models.Order{
		{
			ID:        "order-1",
			ProductID: "product-2",
			BuyerID:   "user-3",
			SellerID:  "user-2",
			Status:    models.OrderStatusCompleted,
			Amount:    250,
			Currency:  "ICP",
			CreatedAt: timestamp("2025-02-15T09:25:00Z"),
			UpdatedAt: timestamp("2025-02-18T14:30:00Z"),
		},
		{
			ID:        "order-2",
			ProductID: "product-4",
			BuyerID:   "user-2",
			SellerID:  "user-1",
			Status:    models.OrderStatusEscrow,
			Amount:    75,
			Currency:  "ICP",
			CreatedAt: timestamp("2025-03-16T10:15:00Z"),
			UpdatedAt: timestamp("2025-03-16T10:15:00Z"),
		},
	}

	reviews := []models.Review{
		{
			ID:         "review-1",
			OrderID:    "order-1",
			ReviewerID: "user-3",
			ReceiverID: "user-2",
			Rating:     5,
			Comment:    "Excellent seller! Item was exactly as described and shipping was quick.",
			CreatedAt:  timestamp("2025-02-20T11:45:00Z"),
		},
	}

	messages := []models.Message{
		{
			ID:         "msg-1",
			SenderID:   "user-2",
			ReceiverID: "user-1",
			Content:    "Hi, is the leather wallet still available?",
			Read:       true,
			CreatedAt:  timestamp("2025-03-15T15:30:00Z"),
		},
		{
			ID:         "msg-2",
			SenderID:   "user-1",
			ReceiverID: "user-2",
			Content:    "Yes, it's still available! Are you interested in purchasing?",
			Read:       true,
			CreatedAt:  timestamp("2025-03-15T16:05:00Z"),
		},
		{
			ID:         "msg-3",
			SenderID:   "user-2",
			ReceiverID: "user-1",
			Content:    "Great! I'd like to buy it. How do we proceed with the escrow?",
			Read:       false,
			CreatedAt:  timestamp("2025-03-15T16:10:00Z"),
		},
	}

	for _, batch := range []interface{}{&users, &products, &orders, &reviews, &messages} {
		if err := db.Create(batch).Error; err != nil {
			log.Printf("Failed to seed demo data: %v", err)
			return err
		}
	}

	log.Println("✅ Seeding complete.")
	return nil
}
