package domain

// Option axis values as they appear on the wire and in stored orders.
const (
	TemperatureHot  = "Hot"
	TemperatureCold = "Cold"

	SweetnessNone  = "No Sugar"
	SweetnessLess  = "Less Sugar"
	SweetnessNorm  = "Normal"
	SweetnessExtra = "Extra Sweet"

	MilkRegular = "Regular"
	MilkAlmond  = "Almond"
	MilkOat     = "Oat"
	MilkSoy     = "Soy"
)

// OptionSelection is the customization triple attached to an order line.
// Every axis carries a value once a line exists; DefaultOptions supplies the
// starting point.
type OptionSelection struct {
	Temperature string `bson:"temperature,omitempty" json:"temperature"`
	Sweetness   string `bson:"sweetness,omitempty" json:"sweetness"`
	Milk        string `bson:"milk,omitempty" json:"milk"`
}

func DefaultOptions() OptionSelection {
	return OptionSelection{
		Temperature: TemperatureHot,
		Sweetness:   SweetnessNorm,
		Milk:        MilkRegular,
	}
}
