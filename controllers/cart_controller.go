package controllers

import (
	"net/http"

	"parts-store/middleware"
	"parts-store/models"
	"parts-store/services"

	"github.com/gin-gonic/gin"
)

// cartIDFrom returns the signed-in user's id on /me/cart routes and the
// :cartId path segment everywhere else.
func cartIDFrom(c *gin.Context) string {
	if userID := c.GetString(middleware.ContextUserID); userID != "" {
		return userID
	}
	return c.Param("cartId")
}

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// ListItems godoc
// @Summary List cart items
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /carts/{cartId}/items [get]
// @Router /me/cart [get]
func (ctrl *CartController) ListItems(c *gin.Context) {
	cart, err := ctrl.cartService.ListItems(c.Request.Context(), cartIDFrom(c))
	if err != nil {
		respondError(c, "Failed to retrieve cart", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    cart,
	})
}

// AddItem godoc
// @Summary Add product to cart
// @Description Adds count units of a product; an existing line for the product is incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param request body models.AddCartItemRequest true "Line item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /carts/{cartId}/items [post]
// @Router /me/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	item, err := ctrl.cartService.AddItem(c.Request.Context(), cartIDFrom(c), req.ProductID, req.Count)
	if err != nil {
		respondError(c, "Failed to add item to cart", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Added to cart successfully",
		Data:    item,
	})
}

// GetItem godoc
// @Summary Get cart item
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param itemId path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{cartId}/items/{itemId} [get]
// @Router /me/cart/items/{itemId} [get]
func (ctrl *CartController) GetItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	item, err := ctrl.cartService.GetItem(c.Request.Context(), cartIDFrom(c), itemID)
	if err != nil {
		respondError(c, "Failed to retrieve cart item", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item retrieved successfully",
		Data:    item,
	})
}

// GetItemProduct godoc
// @Summary Get cart item with its product
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param itemId path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /carts/{cartId}/items/{itemId}/product [get]
// @Router /me/cart/items/{itemId}/product [get]
func (ctrl *CartController) GetItemProduct(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	item, err := ctrl.cartService.ResolveItemProduct(c.Request.Context(), cartIDFrom(c), itemID)
	if err != nil {
		respondError(c, "Failed to resolve product", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item retrieved successfully",
		Data:    item,
	})
}

// UpdateItem godoc
// @Summary Change cart item quantity
// @Description Only count changes. Send the version you read to detect concurrent edits.
// @Tags Cart
// @Accept json
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param itemId path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "New count"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /carts/{cartId}/items/{itemId} [patch]
// @Router /me/cart/items/{itemId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err)
		return
	}

	item, err := ctrl.cartService.UpdateCount(c.Request.Context(), cartIDFrom(c), itemID, req.Count, req.Version)
	if err != nil {
		respondError(c, "Failed to update cart item", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart updated successfully",
		Data:    item,
	})
}

// RemoveItem godoc
// @Summary Remove cart item
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID"
// @Param itemId path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{cartId}/items/{itemId} [delete]
// @Router /me/cart/items/{itemId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	if err := ctrl.cartService.RemoveItem(c.Request.Context(), cartIDFrom(c), itemID); err != nil {
		respondError(c, "Failed to remove cart item", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item removed successfully",
	})
}

// ClearCart godoc
// @Summary Remove every line of a cart
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /carts/{cartId} [delete]
// @Router /me/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cartID := cartIDFrom(c)
	removed, err := ctrl.cartService.ClearCart(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, "Failed to clear cart", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart cleared successfully",
		Data:    models.ClearCartResponse{CartID: cartID, Removed: removed},
	})
}

// CountItems godoc
// @Summary Number of units in a cart
// @Tags Cart
// @Produce json
// @Param cartId path string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /carts/{cartId}/count [get]
// @Router /me/cart/count [get]
func (ctrl *CartController) CountItems(c *gin.Context) {
	cartID := cartIDFrom(c)
	count, err := ctrl.cartService.CountItems(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, "Failed to count cart items", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart count retrieved successfully",
		Data:    models.CartCountResponse{CartID: cartID, Count: count},
	})
}
