// Package catalog embeds the static reference tables: the Indian
// vegetarian food database, the exercise library, and per-food
// micronutrient content. The ledger copies values out of these tables at
// log time; nothing here is ever mutated.
package catalog

import "github.com/aravindcleaerr/DietWise/internal/model"

// Food categories.
const (
	CategoryBread     = "bread"
	CategoryRice      = "rice"
	CategoryDal       = "dal"
	CategorySabzi     = "sabzi"
	CategoryBreakfast = "breakfast"
	CategoryDairy     = "dairy"
	CategoryFruit     = "fruit"
	CategoryNutsSeeds = "nuts_seeds"
	CategorySnack     = "snack"
	CategoryDrink     = "drink"
	CategoryOther     = "other"
)

// Foods is the built-in Indian vegetarian food table. Nutrition is per
// serving.
var Foods = []model.FoodItem{
	// Breads / rotis
	{ID: "bread_roti", Name: "Wheat Roti / Chapati (no oil)", NameHindi: "रोटी / चपाती", Category: CategoryBread, ServingSize: 1, ServingUnit: "medium (30g atta)", Nutrition: model.NutritionInfo{Calories: 75, ProteinG: 2.5, CarbsG: 15, FatG: 0.5, FiberG: 1.2}, IsVegetarian: true},
	{ID: "bread_roti_ghee", Name: "Wheat Roti (with ghee)", NameHindi: "रोटी (घी के साथ)", Category: CategoryBread, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 115, ProteinG: 2.5, CarbsG: 15, FatG: 5, FiberG: 1.2}, IsVegetarian: true},
	{ID: "bread_phulka", Name: "Phulka (puffed, no oil)", NameHindi: "फुल्का", Category: CategoryBread, ServingSize: 1, ServingUnit: "small", Nutrition: model.NutritionInfo{Calories: 60, ProteinG: 2, CarbsG: 12, FatG: 0.3, FiberG: 1.0}, IsVegetarian: true},
	{ID: "bread_paratha_plain", Name: "Plain Paratha", NameHindi: "पराठा (सादा)", Category: CategoryBread, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 165, ProteinG: 3.5, CarbsG: 22, FatG: 7, FiberG: 1.5}, IsVegetarian: true},
	{ID: "bread_paratha_aloo", Name: "Aloo Paratha", NameHindi: "आलू पराठा", Category: CategoryBread, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 220, ProteinG: 5, CarbsG: 32, FatG: 8, FiberG: 2.5}, IsVegetarian: true},
	{ID: "bread_ragi_roti", Name: "Ragi Roti", NameHindi: "रागी रोटी", Category: CategoryBread, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 90, ProteinG: 2.5, CarbsG: 18, FatG: 1, FiberG: 2.8}, IsVegetarian: true},
	{ID: "bread_bajra_roti", Name: "Bajra Roti", NameHindi: "बाजरा रोटी", Category: CategoryBread, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 105, ProteinG: 3, CarbsG: 20, FatG: 1.5, FiberG: 2.3}, IsVegetarian: true},

	// Rice
	{ID: "rice_steamed", Name: "Steamed Rice", NameHindi: "चावल", Category: CategoryRice, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3, FiberG: 0.4}, IsVegetarian: true},
	{ID: "rice_brown", Name: "Brown Rice", NameHindi: "ब्राउन चावल", Category: CategoryRice, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 110, ProteinG: 2.6, CarbsG: 23, FatG: 0.9, FiberG: 1.8}, IsVegetarian: true},
	{ID: "rice_jeera", Name: "Jeera Rice", NameHindi: "जीरा चावल", Category: CategoryRice, ServingSize: 1, ServingUnit: "katori", Nutrition: model.NutritionInfo{Calories: 185, ProteinG: 3, CarbsG: 30, FatG: 6, FiberG: 0.6}, IsVegetarian: true},
	{ID: "rice_veg_pulao", Name: "Vegetable Pulao", NameHindi: "वेज पुलाव", Category: CategoryRice, ServingSize: 1, ServingUnit: "katori", Nutrition: model.NutritionInfo{Calories: 200, ProteinG: 4.5, CarbsG: 32, FatG: 6, FiberG: 2.0}, IsVegetarian: true},

	// Dals / legumes
	{ID: "dal_moong", Name: "Moong Dal", NameHindi: "मूंग दाल", Category: CategoryDal, ServingSize: 1, ServingUnit: "katori (150g)", Nutrition: model.NutritionInfo{Calories: 105, ProteinG: 7, CarbsG: 15, FatG: 2, FiberG: 2.5}, IsVegetarian: true},
	{ID: "dal_toor", Name: "Toor Dal", NameHindi: "तूर दाल", Category: CategoryDal, ServingSize: 1, ServingUnit: "katori (150g)", Nutrition: model.NutritionInfo{Calories: 120, ProteinG: 7.5, CarbsG: 18, FatG: 2.5, FiberG: 3.0}, IsVegetarian: true},
	{ID: "dal_masoor", Name: "Masoor Dal", NameHindi: "मसूर दाल", Category: CategoryDal, ServingSize: 1, ServingUnit: "katori (150g)", Nutrition: model.NutritionInfo{Calories: 115, ProteinG: 8, CarbsG: 17, FatG: 2, FiberG: 3.5}, IsVegetarian: true},
	{ID: "dal_chana", Name: "Chana Dal", NameHindi: "चना दाल", Category: CategoryDal, ServingSize: 1, ServingUnit: "katori (150g)", Nutrition: model.NutritionInfo{Calories: 150, ProteinG: 8.5, CarbsG: 22, FatG: 3.5, FiberG: 4.5}, IsVegetarian: true},
	{ID: "dal_rajma", Name: "Rajma Curry", NameHindi: "राजमा", Category: CategoryDal, ServingSize: 1, ServingUnit: "katori (150g)", Nutrition: model.NutritionInfo{Calories: 160, ProteinG: 8, CarbsG: 24, FatG: 4, FiberG: 6.0}, IsVegetarian: true},
	{ID: "dal_chole", Name: "Chole (Chickpea Curry)", NameHindi: "छोले", Category: CategoryDal, ServingSize: 1, ServingUnit: "katori (150g)", Nutrition: model.NutritionInfo{Calories: 180, ProteinG: 8.5, CarbsG: 26, FatG: 5.5, FiberG: 6.5}, IsVegetarian: true},
	{ID: "dal_sprouts", Name: "Moong Sprouts", NameHindi: "अंकुरित मूंग", Category: CategoryDal, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 90, ProteinG: 7.5, CarbsG: 14, FatG: 0.5, FiberG: 3.8}, IsVegetarian: true},
	{ID: "dal_sambhar", Name: "Sambhar", NameHindi: "सांभर", Category: CategoryDal, ServingSize: 1, ServingUnit: "katori (150g)", Nutrition: model.NutritionInfo{Calories: 110, ProteinG: 5.5, CarbsG: 16, FatG: 3, FiberG: 3.2}, IsVegetarian: true},

	// Sabzis
	{ID: "sabzi_palak", Name: "Palak Sabzi", NameHindi: "पालक की सब्जी", Category: CategorySabzi, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 90, ProteinG: 3.5, CarbsG: 8, FatG: 5.5, FiberG: 3.0}, IsVegetarian: true},
	{ID: "sabzi_methi", Name: "Methi Sabzi", NameHindi: "मेथी की सब्जी", Category: CategorySabzi, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 95, ProteinG: 4, CarbsG: 9, FatG: 5, FiberG: 3.5}, IsVegetarian: true},
	{ID: "sabzi_bhindi", Name: "Bhindi Sabzi", NameHindi: "भिंडी की सब्जी", Category: CategorySabzi, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 110, ProteinG: 2.5, CarbsG: 10, FatG: 7, FiberG: 3.5}, IsVegetarian: true},
	{ID: "sabzi_aloo_gobi", Name: "Aloo Gobi", NameHindi: "आलू गोभी", Category: CategorySabzi, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 130, ProteinG: 3, CarbsG: 18, FatG: 5.5, FiberG: 3.0}, IsVegetarian: true},
	{ID: "sabzi_paneer_bhurji", Name: "Paneer Bhurji", NameHindi: "पनीर भुर्जी", Category: CategorySabzi, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 220, ProteinG: 12, CarbsG: 6, FatG: 17, FiberG: 1.0}, IsVegetarian: true},
	{ID: "sabzi_lauki", Name: "Lauki Sabzi", NameHindi: "लौकी की सब्जी", Category: CategorySabzi, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 70, ProteinG: 1.5, CarbsG: 8, FatG: 4, FiberG: 2.0}, IsVegetarian: true},

	// Breakfast
	{ID: "breakfast_poha", Name: "Poha", NameHindi: "पोहा", Category: CategoryBreakfast, ServingSize: 1, ServingUnit: "plate (150g)", Nutrition: model.NutritionInfo{Calories: 250, ProteinG: 5, CarbsG: 42, FatG: 7, FiberG: 2.5}, IsVegetarian: true},
	{ID: "breakfast_upma", Name: "Upma", NameHindi: "उपमा", Category: CategoryBreakfast, ServingSize: 1, ServingUnit: "plate (150g)", Nutrition: model.NutritionInfo{Calories: 230, ProteinG: 5.5, CarbsG: 36, FatG: 7.5, FiberG: 2.0}, IsVegetarian: true},
	{ID: "breakfast_idli", Name: "Idli", NameHindi: "इडली", Category: CategoryBreakfast, ServingSize: 2, ServingUnit: "pieces", Nutrition: model.NutritionInfo{Calories: 140, ProteinG: 4, CarbsG: 28, FatG: 0.8, FiberG: 1.2}, IsVegetarian: true},
	{ID: "breakfast_dosa_plain", Name: "Plain Dosa", NameHindi: "सादा डोसा", Category: CategoryBreakfast, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 170, ProteinG: 3.5, CarbsG: 28, FatG: 5, FiberG: 1.0}, IsVegetarian: true},
	{ID: "breakfast_oats_porridge", Name: "Oats Porridge (with milk)", NameHindi: "ओट्स दलिया", Category: CategoryBreakfast, ServingSize: 1, ServingUnit: "bowl (200g)", Nutrition: model.NutritionInfo{Calories: 220, ProteinG: 8.5, CarbsG: 32, FatG: 6.5, FiberG: 4.0}, IsVegetarian: true},
	{ID: "breakfast_cornflakes", Name: "Cornflakes (with milk)", NameHindi: "कॉर्नफ्लेक्स", Category: CategoryBreakfast, ServingSize: 1, ServingUnit: "bowl", Nutrition: model.NutritionInfo{Calories: 210, ProteinG: 6.5, CarbsG: 36, FatG: 4.5, FiberG: 1.5}, IsVegetarian: true},
	{ID: "breakfast_muesli", Name: "Muesli (with milk)", NameHindi: "म्यूसली", Category: CategoryBreakfast, ServingSize: 1, ServingUnit: "bowl", Nutrition: model.NutritionInfo{Calories: 260, ProteinG: 8, CarbsG: 40, FatG: 7, FiberG: 4.5}, IsVegetarian: true},

	// Dairy
	{ID: "dairy_whole_milk", Name: "Whole Milk", NameHindi: "दूध (फुल क्रीम)", Category: CategoryDairy, ServingSize: 1, ServingUnit: "glass (250ml)", Nutrition: model.NutritionInfo{Calories: 150, ProteinG: 8, CarbsG: 12, FatG: 8, FiberG: 0}, IsVegetarian: true},
	{ID: "dairy_toned_milk", Name: "Toned Milk", NameHindi: "टोन्ड दूध", Category: CategoryDairy, ServingSize: 1, ServingUnit: "glass (250ml)", Nutrition: model.NutritionInfo{Calories: 120, ProteinG: 7.5, CarbsG: 12, FatG: 4.5, FiberG: 0}, IsVegetarian: true},
	{ID: "dairy_curd", Name: "Curd (Dahi)", NameHindi: "दही", Category: CategoryDairy, ServingSize: 1, ServingUnit: "katori (100g)", Nutrition: model.NutritionInfo{Calories: 60, ProteinG: 3.1, CarbsG: 4.7, FatG: 3.3, FiberG: 0}, IsVegetarian: true},
	{ID: "dairy_paneer", Name: "Paneer", NameHindi: "पनीर", Category: CategoryDairy, ServingSize: 50, ServingUnit: "g", Nutrition: model.NutritionInfo{Calories: 130, ProteinG: 9, CarbsG: 1.5, FatG: 10, FiberG: 0}, IsVegetarian: true},
	{ID: "dairy_buttermilk", Name: "Buttermilk (Chaas)", NameHindi: "छाछ", Category: CategoryDairy, ServingSize: 1, ServingUnit: "glass (250ml)", Nutrition: model.NutritionInfo{Calories: 40, ProteinG: 2, CarbsG: 4, FatG: 1.5, FiberG: 0}, IsVegetarian: true},
	{ID: "dairy_ghee", Name: "Ghee", NameHindi: "घी", Category: CategoryDairy, ServingSize: 1, ServingUnit: "tsp (5g)", Nutrition: model.NutritionInfo{Calories: 45, ProteinG: 0, CarbsG: 0, FatG: 5, FiberG: 0}, IsVegetarian: true},

	// Fruits
	{ID: "fruit_banana", Name: "Banana", NameHindi: "केला", Category: CategoryFruit, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 105, ProteinG: 1.3, CarbsG: 27, FatG: 0.4, FiberG: 3.1}, IsVegetarian: true},
	{ID: "fruit_apple", Name: "Apple", NameHindi: "सेब", Category: CategoryFruit, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 95, ProteinG: 0.5, CarbsG: 25, FatG: 0.3, FiberG: 4.4}, IsVegetarian: true},
	{ID: "fruit_orange", Name: "Orange", NameHindi: "संतरा", Category: CategoryFruit, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 62, ProteinG: 1.2, CarbsG: 15, FatG: 0.2, FiberG: 3.1}, IsVegetarian: true},
	{ID: "fruit_guava", Name: "Guava", NameHindi: "अमरूद", Category: CategoryFruit, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 70, ProteinG: 2.6, CarbsG: 14, FatG: 1, FiberG: 5.4}, IsVegetarian: true},
	{ID: "fruit_papaya", Name: "Papaya", NameHindi: "पपीता", Category: CategoryFruit, ServingSize: 1, ServingUnit: "bowl (150g)", Nutrition: model.NutritionInfo{Calories: 65, ProteinG: 0.7, CarbsG: 16, FatG: 0.4, FiberG: 2.5}, IsVegetarian: true},
	{ID: "fruit_pomegranate", Name: "Pomegranate", NameHindi: "अनार", Category: CategoryFruit, ServingSize: 1, ServingUnit: "bowl (100g)", Nutrition: model.NutritionInfo{Calories: 83, ProteinG: 1.7, CarbsG: 19, FatG: 1.2, FiberG: 4.0}, IsVegetarian: true},

	// Nuts & seeds
	{ID: "nuts_almonds", Name: "Almonds", NameHindi: "बादाम", Category: CategoryNutsSeeds, ServingSize: 10, ServingUnit: "pieces", Nutrition: model.NutritionInfo{Calories: 70, ProteinG: 2.6, CarbsG: 2.5, FatG: 6, FiberG: 1.5}, IsVegetarian: true},
	{ID: "nuts_walnuts", Name: "Walnuts", NameHindi: "अखरोट", Category: CategoryNutsSeeds, ServingSize: 4, ServingUnit: "halves", Nutrition: model.NutritionInfo{Calories: 52, ProteinG: 1.2, CarbsG: 1.1, FatG: 5.2, FiberG: 0.5}, IsVegetarian: true},
	{ID: "nuts_flaxseeds", Name: "Flaxseeds", NameHindi: "अलसी", Category: CategoryNutsSeeds, ServingSize: 1, ServingUnit: "tbsp (10g)", Nutrition: model.NutritionInfo{Calories: 55, ProteinG: 1.9, CarbsG: 3, FatG: 4.3, FiberG: 2.8}, IsVegetarian: true},
	{ID: "nuts_chia_seeds", Name: "Chia Seeds", NameHindi: "चिया बीज", Category: CategoryNutsSeeds, ServingSize: 1, ServingUnit: "tbsp (12g)", Nutrition: model.NutritionInfo{Calories: 58, ProteinG: 2, CarbsG: 5, FatG: 3.7, FiberG: 4.1}, IsVegetarian: true},
	{ID: "nuts_peanuts", Name: "Roasted Peanuts", NameHindi: "मूंगफली", Category: CategoryNutsSeeds, ServingSize: 1, ServingUnit: "handful (30g)", Nutrition: model.NutritionInfo{Calories: 170, ProteinG: 7.5, CarbsG: 5, FatG: 14, FiberG: 2.5}, IsVegetarian: true},

	// Snacks
	{ID: "snack_makhana", Name: "Roasted Makhana", NameHindi: "मखाना", Category: CategorySnack, ServingSize: 1, ServingUnit: "bowl (30g)", Nutrition: model.NutritionInfo{Calories: 105, ProteinG: 3, CarbsG: 20, FatG: 1.5, FiberG: 2.0}, IsVegetarian: true},
	{ID: "snack_dhokla", Name: "Dhokla", NameHindi: "ढोकला", Category: CategorySnack, ServingSize: 2, ServingUnit: "pieces", Nutrition: model.NutritionInfo{Calories: 160, ProteinG: 6, CarbsG: 26, FatG: 4, FiberG: 2.5}, IsVegetarian: true},
	{ID: "snack_samosa", Name: "Samosa", NameHindi: "समोसा", Category: CategorySnack, ServingSize: 1, ServingUnit: "medium", Nutrition: model.NutritionInfo{Calories: 260, ProteinG: 4.5, CarbsG: 30, FatG: 14, FiberG: 2.0}, IsVegetarian: true},
	{ID: "snack_bhel_puri", Name: "Bhel Puri", NameHindi: "भेल पुरी", Category: CategorySnack, ServingSize: 1, ServingUnit: "plate (150g)", Nutrition: model.NutritionInfo{Calories: 220, ProteinG: 5, CarbsG: 38, FatG: 6, FiberG: 3.0}, IsVegetarian: true},

	// Drinks
	{ID: "drink_chai", Name: "Masala Chai (with sugar)", NameHindi: "मसाला चाय", Category: CategoryDrink, ServingSize: 1, ServingUnit: "cup (150ml)", Nutrition: model.NutritionInfo{Calories: 75, ProteinG: 2, CarbsG: 11, FatG: 2.5, FiberG: 0}, IsVegetarian: true},
	{ID: "drink_green_tea", Name: "Green Tea (no sugar)", NameHindi: "ग्रीन टी", Category: CategoryDrink, ServingSize: 1, ServingUnit: "cup", Nutrition: model.NutritionInfo{Calories: 2, ProteinG: 0, CarbsG: 0.5, FatG: 0, FiberG: 0}, IsVegetarian: true},
	{ID: "drink_nimbu_pani", Name: "Nimbu Pani (with sugar)", NameHindi: "नींबू पानी", Category: CategoryDrink, ServingSize: 1, ServingUnit: "glass (250ml)", Nutrition: model.NutritionInfo{Calories: 60, ProteinG: 0.2, CarbsG: 15, FatG: 0, FiberG: 0.1}, IsVegetarian: true},
	{ID: "drink_turmeric_milk", Name: "Turmeric Milk (Haldi Doodh)", NameHindi: "हल्दी दूध", Category: CategoryDrink, ServingSize: 1, ServingUnit: "glass (250ml)", Nutrition: model.NutritionInfo{Calories: 130, ProteinG: 7.5, CarbsG: 13, FatG: 5, FiberG: 0.2}, IsVegetarian: true},

	// Other
	{ID: "other_tofu", Name: "Tofu", NameHindi: "टोफू", Category: CategoryOther, ServingSize: 100, ServingUnit: "g", Nutrition: model.NutritionInfo{Calories: 76, ProteinG: 8, CarbsG: 1.9, FatG: 4.8, FiberG: 0.3}, IsVegetarian: true},
	{ID: "other_soy_chunks", Name: "Soy Chunks (cooked)", NameHindi: "सोया चंक्स", Category: CategoryOther, ServingSize: 1, ServingUnit: "katori (50g dry)", Nutrition: model.NutritionInfo{Calories: 170, ProteinG: 26, CarbsG: 15, FatG: 0.5, FiberG: 6.5}, IsVegetarian: true},
}

var foodsByID = func() map[string]model.FoodItem {
	m := make(map[string]model.FoodItem, len(Foods))
	for _, f := range Foods {
		m[f.ID] = f
	}
	return m
}()

// FoodByID returns the food with the given id by value.
func FoodByID(id string) (model.FoodItem, bool) {
	f, ok := foodsByID[id]
	return f, ok
}

// FoodsByCategory returns all foods in the given category.
func FoodsByCategory(category string) []model.FoodItem {
	out := make([]model.FoodItem, 0)
	for _, f := range Foods {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}
