package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionStock-api/internal/application/dto"
	"github.com/jhoicas/GestionStock-api/internal/application/usecase"
	"github.com/jhoicas/GestionStock-api/internal/infrastructure/barcode"
)

// BarcodeHandler sirve la imagen Code 128 del código de un producto.
type BarcodeHandler struct {
	products *usecase.ProductUseCase
	renderer *barcode.Code128Renderer
}

// NewBarcodeHandler construye el handler.
func NewBarcodeHandler(products *usecase.ProductUseCase, renderer *barcode.Code128Renderer) *BarcodeHandler {
	return &BarcodeHandler{products: products, renderer: renderer}
}

// PNG godoc
// @Summary      Imagen Code 128 del producto
// @Tags         products
// @Produce      image/png
// @Param        id  path  string  true  "ID del producto"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/barcode.png [get]
func (h *BarcodeHandler) PNG(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	product, err := h.products.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	img, err := h.renderer.RenderPNG(product.Barcode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(img)
}
