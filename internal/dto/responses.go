package dto

type ConversionResponse struct {
	Status               string           `json:"status"`
	ConversionSolicitada string           `json:"conversion_solicitada"`
	MontoConvertido      float64          `json:"monto_convertido"`
	Detalle              ConversionDetail `json:"detalle"`
}

type ConversionDetail struct {
	FactorGanancia  float64 `json:"factor_ganancia"`
	ClaveFactor     string  `json:"clave_factor"`
	TasaOrigen      float64 `json:"tasa_origen"`
	TasaDestino     float64 `json:"tasa_destino"`
	IDTasaActual    string  `json:"id_tasa_actual"`
	TimestampActual string  `json:"timestamp_actual"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Spreadsheet string `json:"spreadsheet"`
}
