package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/GestionStock-api/internal/application/dto"
	"github.com/jhoicas/GestionStock-api/internal/application/usecase"
)

// ExportHandler descargas del inventario: CSV y hoja de etiquetas PDF.
type ExportHandler struct {
	csvUC   *usecase.ExportUseCase
	labelUC *usecase.LabelUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(csvUC *usecase.ExportUseCase, labelUC *usecase.LabelUseCase) *ExportHandler {
	return &ExportHandler{csvUC: csvUC, labelUC: labelUC}
}

// CSV godoc
// @Summary      Exportar inventario en CSV
// @Tags         export
// @Produce      text/csv
// @Success      200
// @Router       /export [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	data, filename, err := h.csvUC.CSV()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(data)
}

// Labels godoc
// @Summary      Hoja de etiquetas con códigos de barras (PDF)
// @Tags         export
// @Produce      application/pdf
// @Success      200
// @Router       /export/labels.pdf [get]
func (h *ExportHandler) Labels(c *fiber.Ctx) error {
	data, err := h.labelUC.PDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename=etiquettes.pdf`)
	return c.Send(data)
}
