package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleachain_backend/models"
)

// Store is the single source of truth for one running session: the current
// user plus the product, order, review and message collections. Every state
// transition in the application goes through one of its methods. The backing
// database is an in-memory SQLite handle, so the whole graph is volatile and
// reseeded on restart.
type Store struct {
	db         *gorm.DB
	notifier   Notifier
	loginDelay time.Duration

	mu       sync.Mutex
	current  *models.User
	loginGen uint64
}

// New builds a Store on top of db. notifier may be nil.
func New(db *gorm.DB, notifier Notifier, loginDelay time.Duration) *Store {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Store{
		db:         db,
		notifier:   notifier,
		loginDelay: loginDelay,
	}
}

// DB exposes the underlying handle for migration and seeding.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// ListingInput carries the listing form fields. Seller, id, status and
// timestamps are assigned by the store.
type ListingInput struct {
	Title       string
	Description string
	Price       float64
	Currency    string
	Images      []string
	Category    string
	Condition   string
	Location    string
}

// CreateListing inserts a new active product owned by the current user.
func (s *Store) CreateListing(input ListingInput) (*models.Product, error) {
	user, ok := s.CurrentUser()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	currency := input.Currency
	if currency == "" {
		currency = "ICP"
	}

	product := models.Product{
		ID:          uuid.NewString(),
		SellerID:    user.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Currency:    currency,
		Images:      input.Images,
		Category:    input.Category,
		Condition:   input.Condition,
		Location:    input.Location,
		Status:      models.ProductStatusActive,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}

	s.notifier.Publish(Event{Type: EventProductCreated, EntityID: product.ID, Payload: product})
	return &product, nil
}

// PurchaseProduct opens an escrow order for an active product at its full
// price and moves the product to pending. Buying one's own listing is not
// blocked; the seller recorded on the order is simply the product's seller.
func (s *Store) PurchaseProduct(productID string) (*models.Order, error) {
	user, ok := s.CurrentUser()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if product.Status != models.ProductStatusActive {
			return ErrNotPurchasable
		}

		order = models.Order{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			BuyerID:   user.ID,
			SellerID:  product.SellerID,
			Status:    models.OrderStatusEscrow,
			Amount:    product.Price,
			Currency:  product.Currency,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Model(&models.Product{}).
			Where("id = ?", product.ID).
			Update("status", models.ProductStatusPending).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(Event{Type: EventOrderCreated, EntityID: order.ID, Payload: order})
	s.notifier.Publish(Event{Type: EventProductUpdated, EntityID: order.ProductID})
	return &order, nil
}

// CompleteTransaction marks an order completed and its product sold. The
// order's current status is not checked, so calling this twice re-stamps an
// already terminal order; the product transition is skipped when the product
// no longer exists.
func (s *Store) CompleteTransaction(orderID string) (*models.Order, error) {
	return s.settle(orderID, models.OrderStatusCompleted, models.ProductStatusSold)
}

// CancelTransaction marks an order cancelled and reverts its product to
// active, putting it back on the marketplace.
func (s *Store) CancelTransaction(orderID string) (*models.Order, error) {
	return s.settle(orderID, models.OrderStatusCancelled, models.ProductStatusActive)
}

func (s *Store) settle(orderID, orderStatus, productStatus string) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := tx.Model(&order).Update("status", orderStatus).Error; err != nil {
			return err
		}

		return tx.Model(&models.Product{}).
			Where("id = ?", order.ProductID).
			Update("status", productStatus).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(Event{Type: EventOrderUpdated, EntityID: order.ID, Payload: order})
	s.notifier.Publish(Event{Type: EventProductUpdated, EntityID: order.ProductID})
	return &order, nil
}

// ReviewInput carries the review form fields.
type ReviewInput struct {
	OrderID    string
	ReceiverID string
	Rating     int
	Comment    string
}

// CreateReview appends a review written by the current user. Nothing stops a
// buyer from reviewing the same order more than once.
func (s *Store) CreateReview(input ReviewInput) (*models.Review, error) {
	user, ok := s.CurrentUser()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	review := models.Review{
		ID:         uuid.NewString(),
		OrderID:    input.OrderID,
		ReviewerID: user.ID,
		ReceiverID: input.ReceiverID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	s.notifier.Publish(Event{Type: EventReviewCreated, EntityID: review.ID, Payload: review})
	return &review, nil
}

// SendMessage appends an unread message from the current user.
func (s *Store) SendMessage(receiverID, content string) (*models.Message, error) {
	user, ok := s.CurrentUser()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	message := models.Message{
		ID:         uuid.NewString(),
		SenderID:   user.ID,
		ReceiverID: receiverID,
		Content:    content,
		Read:       false,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	s.notifier.Publish(Event{
		Type:       EventMessageCreated,
		EntityID:   message.ID,
		ReceiverID: message.ReceiverID,
		Payload:    message,
	})
	return &message, nil
}

// ProductByID returns a product with its seller.
func (s *Store) ProductByID(id string) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Seller").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SellerByID returns a user together with their current listings. Listings
// are recomputed from the products table on every call rather than cached
// on the user record.
func (s *Store) SellerByID(id string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Listings").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserListings returns every product the user has put up, any status.
func (s *Store) UserListings(userID string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("seller_id = ?", userID).
		Order("created_at desc").
		Find(&products).Error
	return products, err
}

// UserMessages returns the union of messages sent and received by the user,
// oldest first.
func (s *Store) UserMessages(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at asc").
		Find(&messages).Error
	return messages, err
}

// UserOrders returns every order in which the user is buyer or seller.
func (s *Store) UserOrders(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Product").
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ReviewsForUser returns the reviews received by a user, newest first.
func (s *Store) ReviewsForUser(userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("receiver_id = ?", userID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

// MarketplaceFilter narrows the marketplace listing. Zero values leave a
// dimension unfiltered.
type MarketplaceFilter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// Marketplace returns the active products matching the filter, newest first.
func (s *Store) Marketplace(filter MarketplaceFilter) ([]models.Product, error) {
	query := s.db.Preload("Seller").
		Where("status = ?", models.ProductStatusActive)

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		like := "%" + q + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var products []models.Product
	err := query.Order("created_at desc").Find(&products).Error
	return products, err
}

// Categories returns the distinct categories currently present among
// products, for the marketplace filter dropdown.
func (s *Store) Categories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Product{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	return categories, err
}
