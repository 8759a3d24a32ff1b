package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/noctus-rates-api/internal/apperrors"
	"github.com/anyulbade/noctus-rates-api/internal/dto"
	"github.com/anyulbade/noctus-rates-api/internal/service"
	"github.com/anyulbade/noctus-rates-api/internal/tabular"
)

type ConversionHandler struct {
	svc *service.ConversionService
}

func NewConversionHandler(svc *service.ConversionService) *ConversionHandler {
	return &ConversionHandler{svc: svc}
}

func (h *ConversionHandler) Convert(c *gin.Context) {
	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(fmt.Errorf("%w: cantidad, origen and destino are required", apperrors.ErrValidation))
		return
	}

	amount, err := tabular.ParseDecimal(q.Cantidad)
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: cantidad %q is not a number", apperrors.ErrValidation, q.Cantidad))
		return
	}
	if !tabular.BoundedAmount(amount) {
		_ = c.Error(fmt.Errorf("%w: cantidad %q is out of range", apperrors.ErrValidation, q.Cantidad))
		return
	}

	res, err := h.svc.Convert(c.Request.Context(), service.ConversionRequest{
		Amount:      amount,
		Origin:      q.Origen,
		Destination: q.Destino,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ConversionResponse{
		Status: "success",
		ConversionSolicitada: fmt.Sprintf("%s %s a %s",
			res.Request.Amount.String(), res.Request.Origin, res.Request.Destination),
		MontoConvertido: res.Converted.InexactFloat64(),
		Detalle: dto.ConversionDetail{
			FactorGanancia:  res.Factor.Value.InexactFloat64(),
			ClaveFactor:     res.Factor.Row.String() + "/" + res.Factor.Column.String(),
			TasaOrigen:      res.OriginRate.InexactFloat64(),
			TasaDestino:     res.DestinationRate.InexactFloat64(),
			IDTasaActual:    res.RateID,
			TimestampActual: res.RateTimestamp,
		},
	})
}
