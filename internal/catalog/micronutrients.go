package catalog

import "github.com/aravindcleaerr/DietWise/internal/model"

// FoodMicronutrients lists per-serving micronutrient content for foods
// where the data is significant, keyed by food id. Foods absent from the
// table contribute nothing to the daily totals.
var FoodMicronutrients = map[string]model.MicronutrientTotals{
	// Dairy: B12 and calcium
	"dairy_whole_milk":   {VitaminB12Mcg: 0.9, CalciumMg: 240},
	"dairy_toned_milk":   {VitaminB12Mcg: 0.8, CalciumMg: 240},
	"dairy_curd":         {VitaminB12Mcg: 0.4, CalciumMg: 120, IronMg: 0.2},
	"dairy_paneer":       {VitaminB12Mcg: 0.5, CalciumMg: 200, IronMg: 0.3},
	"dairy_buttermilk":   {VitaminB12Mcg: 0.2, CalciumMg: 60},
	"drink_turmeric_milk": {VitaminB12Mcg: 0.8, CalciumMg: 240},

	// Leafy greens: iron and calcium
	"sabzi_palak": {IronMg: 4.0, CalciumMg: 120, Omega3G: 0.1},
	"sabzi_methi": {IronMg: 5.0, CalciumMg: 130},

	// Legumes: iron
	"dal_moong":   {IronMg: 2.0, CalciumMg: 30},
	"dal_toor":    {IronMg: 2.5, CalciumMg: 40},
	"dal_masoor":  {IronMg: 3.0, CalciumMg: 25},
	"dal_chana":   {IronMg: 3.5, CalciumMg: 55},
	"dal_rajma":   {IronMg: 3.0, CalciumMg: 50},
	"dal_chole":   {IronMg: 3.5, CalciumMg: 55},
	"dal_sprouts": {IronMg: 2.5, CalciumMg: 30},
	"dal_sambhar": {IronMg: 2.0, CalciumMg: 35},

	// Nuts and seeds: omega-3 and iron
	"nuts_almonds":    {IronMg: 0.5, CalciumMg: 30},
	"nuts_walnuts":    {IronMg: 0.3, Omega3G: 0.9},
	"nuts_flaxseeds":  {IronMg: 0.6, Omega3G: 2.3, CalciumMg: 25},
	"nuts_chia_seeds": {IronMg: 0.9, Omega3G: 2.1, CalciumMg: 75},
	"nuts_peanuts":    {IronMg: 0.5},

	// Millets: iron and calcium
	"bread_ragi_roti":  {IronMg: 3.5, CalciumMg: 340},
	"bread_bajra_roti": {IronMg: 2.5, CalciumMg: 40},

	// Fruits
	"fruit_orange":      {CalciumMg: 40, IronMg: 0.2},
	"fruit_guava":       {IronMg: 0.3},
	"fruit_pomegranate": {IronMg: 0.5},

	// Soy
	"other_soy_chunks": {IronMg: 5.0, CalciumMg: 80},
	"other_tofu":       {IronMg: 2.5, CalciumMg: 250, Omega3G: 0.2},

	// Fortified breakfast foods
	"breakfast_oats_porridge": {IronMg: 2.5, CalciumMg: 200, VitaminB12Mcg: 0.5},
	"breakfast_cornflakes":    {IronMg: 3.0, VitaminB12Mcg: 0.8, CalciumMg: 200},
	"breakfast_muesli":        {IronMg: 2.5, VitaminB12Mcg: 0.5, CalciumMg: 200},
}

// MicronutrientsForFood returns the per-serving micronutrient content for
// a food id, if known.
func MicronutrientsForFood(foodID string) (model.MicronutrientTotals, bool) {
	m, ok := FoodMicronutrients[foodID]
	return m, ok
}
