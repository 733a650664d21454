package service

import "github.com/MayankSaini-Byte/Study-Edge/internal/model"

func teaTime(v string) *string { return &v }

// DefaultMenu is the week written on first start.
func DefaultMenu() []model.MessMenu {
	return []model.MessMenu{
		{Day: "monday", Breakfast: "Poha, Tea", Lunch: "Dal, Rice, Roti, Sabzi", TeaTime: teaTime("Samosa, Chai"), Dinner: "Rajma, Rice, Roti"},
		{Day: "tuesday", Breakfast: "Idli, Sambar, Chutney", Lunch: "Chole, Rice, Roti", TeaTime: teaTime("Pakora, Coffee"), Dinner: "Paneer Curry, Roti"},
		{Day: "wednesday", Breakfast: "Upma, Tea", Lunch: "Dal Fry, Rice, Roti", TeaTime: teaTime("Biscuits, Chai"), Dinner: "Veg Biryani"},
		{Day: "thursday", Breakfast: "Paratha, Curd, Pickle", Lunch: "Sambar, Rice, Roti", TeaTime: teaTime("Bread Pakora, Tea"), Dinner: "Dal Makhani, Roti"},
		{Day: "friday", Breakfast: "Aloo Puri, Tea", Lunch: "Kadhi, Rice, Roti", TeaTime: teaTime("Kachori, Chai"), Dinner: "Chicken Curry, Rice"},
		{Day: "saturday", Breakfast: "Sandwich, Tea", Lunch: "Rajma, Rice, Roti", TeaTime: teaTime("Spring Roll, Coffee"), Dinner: "Fried Rice, Manchurian"},
		{Day: "sunday", Breakfast: "Dosa, Chutney, Sambhar", Lunch: "Special Thali", TeaTime: teaTime("Jalebi, Milk Tea"), Dinner: "Pizza, Pasta"},
	}
}
