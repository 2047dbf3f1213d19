package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/config"
	"github.com/dg4329-hash/menumap/internal/database"
	"github.com/dg4329-hash/menumap/internal/model"
	"github.com/dg4329-hash/menumap/internal/repository"
)

// Seeds the nutrition store with one sample dining day so the API and the
// coach can be exercised without scraping the live dining service.
func main() {
	dbPath := flag.String("db", "menumap.db", "path to the SQLite store")
	date := flag.String("date", "", "menu date as YYYY-MM-DD (default today)")
	flag.Parse()

	day := *date
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	db, err := database.Open(ctx, config.DatabaseConfig{Path: *dbPath}, logger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repo := repository.NewMenuRepository(db, logger)

	if err := repo.UpsertLocations(ctx, sampleLocations()); err != nil {
		log.Fatalf("Failed to seed locations: %v", err)
	}

	items := sampleMenu(day)
	written, err := repo.UpsertMenuItems(ctx, items)
	if err != nil {
		log.Fatalf("Failed to seed menu items: %v", err)
	}

	fmt.Printf("Seeded %d locations and %d menu items for %s into %s\n",
		len(sampleLocations()), written, day, *dbPath)
	fmt.Println("\nTry it:")
	fmt.Println(`  curl -X POST localhost:8080/api/search -d '{"query": "high protein lunch"}'`)
	fmt.Println(`  curl localhost:8080/api/stats`)
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func sampleLocations() []model.Location {
	return []model.Location{
		{ID: "sample-downstein", Name: "NYU EATS at Downstein", Building: "Weinstein Hall"},
		{ID: "sample-palladium", Name: "Palladium", Building: "Palladium Hall"},
		{ID: "sample-kosher", Name: "Kosher Eatery", Building: "Weinstein Hall"},
	}
}

func sampleMenu(date string) []model.MenuItem {
	item := func(locID, period, category, name string) model.MenuItem {
		return model.MenuItem{
			LocationID: locID,
			Date:       date,
			Period:     period,
			Category:   category,
			Name:       name,
		}
	}

	eggs := item("sample-downstein", "Breakfast", "Homestyle", "Scrambled Eggs")
	eggs.Calories = iptr(180)
	eggs.Protein = fptr(12)
	eggs.Carbs = fptr(2)
	eggs.Fat = fptr(13)
	eggs.Cholesterol = fptr(370)
	eggs.Sodium = fptr(320)
	eggs.DietaryTags = "Vegetarian,Good Source of Protein"
	eggs.Allergens = "Egg"

	oatmeal := item("sample-downstein", "Breakfast", "Homestyle", "Steel Cut Oatmeal")
	oatmeal.Calories = iptr(150)
	oatmeal.Protein = fptr(5)
	oatmeal.Carbs = fptr(27)
	oatmeal.Fat = fptr(2.5)
	oatmeal.Fiber = fptr(4)
	oatmeal.Sugar = fptr(1)
	oatmeal.DietaryTags = "Vegan,Vegetarian"

	yogurt := item("sample-downstein", "Breakfast", "Grab & Go", "Greek Yogurt Parfait")
	yogurt.Calories = iptr(240)
	yogurt.Protein = fptr(15)
	yogurt.Carbs = fptr(32)
	yogurt.Fat = fptr(6)
	yogurt.Sugar = fptr(22)
	yogurt.Calcium = fptr(200)
	yogurt.DietaryTags = "Vegetarian,Good Source of Protein"
	yogurt.Allergens = "Milk"

	chicken := item("sample-downstein", "Lunch", "Simple Servings", "Grilled Chicken Breast")
	chicken.Calories = iptr(190)
	chicken.Protein = fptr(35)
	chicken.Carbs = fptr(0)
	chicken.Fat = fptr(4.5)
	chicken.Sodium = fptr(330)
	chicken.Potassium = fptr(310)
	chicken.DietaryTags = "Avoiding Gluten,Halal,Good Source of Protein"

	broccoli := item("sample-downstein", "Lunch", "Simple Servings", "Steamed Broccoli")
	broccoli.Calories = iptr(35)
	broccoli.Protein = fptr(2.5)
	broccoli.Carbs = fptr(6)
	broccoli.Fat = fptr(0)
	broccoli.Fiber = fptr(2.5)
	broccoli.VitaminC = fptr(50)
	broccoli.DietaryTags = "Vegan,Vegetarian,Avoiding Gluten"

	penne := item("sample-downstein", "Lunch", "Pasta e Basta", "Penne Pasta")
	penne.Calories = iptr(210)
	penne.Protein = fptr(7)
	penne.Carbs = fptr(42)
	penne.Fat = fptr(1)
	penne.Fiber = fptr(2)
	penne.DietaryTags = "Vegan,Vegetarian"
	penne.Allergens = "Wheat"

	marinara := item("sample-downstein", "Lunch", "Pasta e Basta", "Marinara Sauce")
	marinara.Calories = iptr(60)
	marinara.Protein = fptr(2)
	marinara.Carbs = fptr(10)
	marinara.Fat = fptr(1.5)
	marinara.Sodium = fptr(420)
	marinara.DietaryTags = "Vegan,Vegetarian,Avoiding Gluten"

	pizza := item("sample-downstein", "Lunch", "500 Degrees", "Cheese Pizza")
	pizza.Calories = iptr(290)
	pizza.Protein = fptr(12)
	pizza.Carbs = fptr(36)
	pizza.Fat = fptr(11)
	pizza.SaturatedFat = fptr(5)
	pizza.Sodium = fptr(640)
	pizza.DietaryTags = "Vegetarian"
	pizza.Allergens = "Milk,Wheat"

	burger := item("sample-downstein", "Lunch", "The Grill", "Double Cheeseburger")
	burger.Calories = iptr(770)
	burger.Protein = fptr(54)
	burger.Carbs = fptr(33)
	burger.Fat = fptr(47)
	burger.SaturatedFat = fptr(21)
	burger.Sodium = fptr(1200)
	burger.DietaryTags = "Good Source of Protein"
	burger.Allergens = "Milk,Wheat,Sesame"

	salmon := item("sample-downstein", "Dinner", "Simple Servings", "Roasted Salmon")
	salmon.Calories = iptr(280)
	salmon.Protein = fptr(32)
	salmon.Carbs = fptr(0)
	salmon.Fat = fptr(16)
	salmon.Sodium = fptr(260)
	salmon.VitaminD = fptr(12)
	salmon.DietaryTags = "Avoiding Gluten,Good Source of Protein"
	salmon.Allergens = "Fish"

	rice := item("sample-downstein", "Dinner", "Simple Servings", "Brown Rice")
	rice.Calories = iptr(170)
	rice.Protein = fptr(4)
	rice.Carbs = fptr(36)
	rice.Fat = fptr(1.5)
	rice.Fiber = fptr(2)
	rice.DietaryTags = "Vegan,Vegetarian,Avoiding Gluten"

	tofu := item("sample-downstein", "Dinner", "Plant Forward", "Vegan Tofu Stir Fry")
	tofu.Calories = iptr(220)
	tofu.Protein = fptr(16)
	tofu.Carbs = fptr(14)
	tofu.Fat = fptr(12)
	tofu.Fiber = fptr(3)
	tofu.Sodium = fptr(540)
	tofu.DietaryTags = "Vegan,Vegetarian,Good Source of Protein"
	tofu.Allergens = "Soy"

	tikka := item("sample-palladium", "Dinner", "Global Kitchen", "Chicken Tikka Masala")
	tikka.Calories = iptr(360)
	tikka.Protein = fptr(28)
	tikka.Carbs = fptr(12)
	tikka.Fat = fptr(22)
	tikka.Sodium = fptr(890)
	tikka.DietaryTags = "Halal,Good Source of Protein"
	tikka.Allergens = "Milk"

	naan := item("sample-palladium", "Dinner", "Global Kitchen", "Garlic Naan")
	naan.Calories = iptr(260)
	naan.Protein = fptr(8)
	naan.Carbs = fptr(45)
	naan.Fat = fptr(6)
	naan.DietaryTags = "Vegetarian"
	naan.Allergens = "Milk,Wheat"

	falafel := item("sample-kosher", "Lunch", "Main Line", "Falafel Plate")
	falafel.Calories = iptr(420)
	falafel.Protein = fptr(14)
	falafel.Carbs = fptr(48)
	falafel.Fat = fptr(20)
	falafel.Fiber = fptr(9)
	falafel.DietaryTags = "Vegan,Vegetarian,Kosher"
	falafel.Allergens = "Sesame,Wheat"

	salad := item("sample-kosher", "Lunch", "Main Line", "Israeli Salad")
	salad.Calories = iptr(70)
	salad.Protein = fptr(2)
	salad.Carbs = fptr(8)
	salad.Fat = fptr(4)
	salad.Fiber = fptr(2)
	salad.DietaryTags = "Vegan,Vegetarian,Kosher,Avoiding Gluten"

	return []model.MenuItem{
		eggs, oatmeal, yogurt,
		chicken, broccoli, penne, marinara, pizza, burger,
		salmon, rice, tofu,
		tikka, naan,
		falafel, salad,
	}
}
