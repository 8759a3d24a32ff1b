package dto

type ConvertQuery struct {
	Cantidad string `form:"cantidad" binding:"required"`
	Origen   string `form:"origen" binding:"required"`
	Destino  string `form:"destino" binding:"required"`
}
