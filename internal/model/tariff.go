package model

// TariffLine is a fixed flat-rate tariff drawn as a reference line against
// the variable market price.
type TariffLine struct {
	Name          string  `json:"name"`
	PriceCtPerKWh float64 `json:"price_ct_per_kwh"`
}

// DefaultTariffs are the three flat rates of this deployment.
func DefaultTariffs() []TariffLine {
	return []TariffLine{
		{Name: "Stromtarif 1 (Bestandskunden)", PriceCtPerKWh: 40.0},
		{Name: "Stromtarif 2 (Neukunden)", PriceCtPerKWh: 30.0},
		{Name: "Stromtarif 3 (Zieltarif)", PriceCtPerKWh: 12.5},
	}
}
