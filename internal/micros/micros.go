// Package micros projects daily micronutrient totals for the nutrients
// an Indian vegetarian diet tends to run short on and raises advisory
// alerts for days that land well under the recommended intake.
package micros

import (
	"math"

	"github.com/aravindcleaerr/DietWise/internal/catalog"
	"github.com/aravindcleaerr/DietWise/internal/model"
)

// RecommendedDaily is the daily recommended intake for Indian vegetarian
// adults. Iron is set higher than the general figure to account for the
// lower absorption of plant iron.
var RecommendedDaily = model.MicronutrientTotals{
	VitaminB12Mcg: 2.4,
	IronMg:        17,
	CalciumMg:     1000,
	VitaminDIU:    600,
	Omega3G:       1.6,
}

// NutrientInfo carries display metadata for one tracked nutrient.
type NutrientInfo struct {
	Key   string
	Label string
	Unit  string
	Tip   string
}

// Nutrients lists the tracked nutrients in display order.
var Nutrients = []NutrientInfo{
	{Key: "vitamin_b12", Label: "Vitamin B12", Unit: "mcg", Tip: "Vegetarian diets often lack B12. Consider fortified foods or supplements."},
	{Key: "iron", Label: "Iron", Unit: "mg", Tip: "Plant iron is less absorbed. Pair with Vitamin C foods for better absorption."},
	{Key: "calcium", Label: "Calcium", Unit: "mg", Tip: "Essential for bones. Include dairy, ragi, sesame seeds, and leafy greens."},
	{Key: "vitamin_d", Label: "Vitamin D", Unit: "IU", Tip: "Get 15-20 min sunlight daily. Few vegetarian foods contain Vitamin D."},
	{Key: "omega3", Label: "Omega-3 (ALA)", Unit: "g", Tip: "Include flaxseeds, walnuts, and chia seeds daily for omega-3."},
}

// Alert flags one nutrient whose consumption for the day is under half
// the recommended intake.
type Alert struct {
	Nutrient NutrientInfo
	Percent  int
}

// DailyTotals sums the micronutrient content of every food logged in the
// day, scaled by servings. Per-serving values embedded in the logged food
// win over the catalog table; foods with neither contribute nothing.
func DailyTotals(log model.DailyLog) model.MicronutrientTotals {
	var t model.MicronutrientTotals
	for _, meal := range log.Meals {
		for _, food := range meal.Foods {
			m, ok := catalog.MicronutrientsForFood(food.FoodID)
			if food.Micronutrients != nil {
				m, ok = *food.Micronutrients, true
			}
			if !ok {
				continue
			}
			t.VitaminB12Mcg += m.VitaminB12Mcg * food.Servings
			t.IronMg += m.IronMg * food.Servings
			t.CalciumMg += m.CalciumMg * food.Servings
			t.VitaminDIU += m.VitaminDIU * food.Servings
			t.Omega3G += m.Omega3G * food.Servings
		}
	}
	t.VitaminB12Mcg = round1(t.VitaminB12Mcg)
	t.IronMg = round1(t.IronMg)
	t.CalciumMg = math.Round(t.CalciumMg)
	t.VitaminDIU = math.Round(t.VitaminDIU)
	t.Omega3G = round1(t.Omega3G)
	return t
}

// Percentages reports each nutrient's consumption as a whole percent of
// the recommended intake, in display order.
func Percentages(totals model.MicronutrientTotals) []int {
	consumed := values(totals)
	recommended := values(RecommendedDaily)
	out := make([]int, len(consumed))
	for i := range consumed {
		out[i] = int(math.Round(consumed[i] / recommended[i] * 100))
	}
	return out
}

// Alerts reports every nutrient sitting under 50% of the recommended
// intake, each with the advisory tip for closing the gap.
func Alerts(totals model.MicronutrientTotals) []Alert {
	var alerts []Alert
	for i, pct := range Percentages(totals) {
		if pct < 50 {
			alerts = append(alerts, Alert{Nutrient: Nutrients[i], Percent: pct})
		}
	}
	return alerts
}

func values(t model.MicronutrientTotals) [5]float64 {
	return [5]float64{t.VitaminB12Mcg, t.IronMg, t.CalciumMg, t.VitaminDIU, t.Omega3G}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
