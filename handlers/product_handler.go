package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"fleachain_backend/models"
	"fleachain_backend/store"
)

type ProductHandler struct {
	Store *store.Store
}

func NewProductHandler(st *store.Store) *ProductHandler {
	return &ProductHandler{Store: st}
}

// CreateProductRequest
type CreateProductRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
}

// validate mirrors the listing form checks: every field required, price a
// positive number, at least one image. The price arrives as the raw form
// string so a non-numeric entry is reported as a price error, not as a
// malformed request body.
func (req *CreateProductRequest) validate() (float64, []models.ErrorDetail) {
	var fieldErrors []models.ErrorDetail

	if strings.TrimSpace(req.Title) == "" {
		fieldErrors = append(fieldErrors, models.FieldError("title", "Title is required"))
	}
	if strings.TrimSpace(req.Description) == "" {
		fieldErrors = append(fieldErrors, models.FieldError("description", "Description is required"))
	}

	var price float64
	if strings.TrimSpace(req.Price) == "" {
		fieldErrors = append(fieldErrors, models.FieldError("price", "Price is required"))
	} else {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(req.Price), 64)
		if err != nil || parsed <= 0 {
			fieldErrors = append(fieldErrors, models.FieldError("price", "Price must be a positive number"))
		} else {
			price = parsed
		}
	}

	if strings.TrimSpace(req.Category) == "" {
		fieldErrors = append(fieldErrors, models.FieldError("category", "Category is required"))
	}
	if req.Condition == "" {
		fieldErrors = append(fieldErrors, models.FieldError("condition", "Condition is required"))
	} else if !models.ValidCondition(req.Condition) {
		fieldErrors = append(fieldErrors, models.FieldError("condition", "Condition must be one of new, like-new, good, fair, poor"))
	}
	if strings.TrimSpace(req.Location) == "" {
		fieldErrors = append(fieldErrors, models.FieldError("location", "Location is required"))
	}
	if len(req.Images) == 0 {
		fieldErrors = append(fieldErrors, models.FieldError("images", "At least one image is required"))
	}

	return price, fieldErrors
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	price, fieldErrors := req.validate()
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Validation failed", models.ValidationErrors{Errors: fieldErrors}))
	}

	product, err := h.Store.CreateListing(store.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
		Currency:    req.Currency,
		Images:      req.Images,
		Category:    req.Category,
		Condition:   req.Condition,
		Location:    req.Location,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

// GetAllProducts - GET /api/products
//
// Marketplace listing: only active products, optionally narrowed by search
// query, category and price range.
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	filter := store.MarketplaceFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	products, err := h.Store.Marketplace(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{"data": products, "count": len(products)})
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.Store.ProductByID(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// GetMyProducts - GET /api/my-products
func (h *ProductHandler) GetMyProducts(c *fiber.Ctx) error {
	user, ok := h.Store.CurrentUser()
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	products, err := h.Store.UserListings(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}

	return c.JSON(fiber.Map{"data": products})
}

// GetCategories - GET /api/categories
func (h *ProductHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.Store.Categories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch categories"})
	}
	return c.JSON(fiber.Map{"data": categories})
}
