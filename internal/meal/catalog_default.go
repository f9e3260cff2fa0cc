package meal

// DefaultEntries returns the built-in meal table. A catalog file, when
// configured, is overlaid on top of these entries by name.
func DefaultEntries() []Meal {
	return []Meal{
		{
			Name:          "Beef and Ale Stew",
			Protein:       ProteinBeef,
			TimeConsuming: true,
			Ingredients:   map[string]string{"Stewing Beef": "750g", "Ale": "500ml", "Carrot": "3", "Onion": "2", "Potato": "900g"},
		},
		{
			Name:        "Burgers",
			Protein:     ProteinBeef,
			Favourite:   true,
			Ingredients: map[string]string{"Beef Mince": "500g", "Burger Buns": "4", "Lettuce": "1", "Mature Cheddar": "100g"},
		},
		{
			Name:        "Chicken and Green Bean Vermicelli Noodles",
			Protein:     ProteinChicken,
			Ingredients: map[string]string{"Chicken Breast": "2", "Green Beans": "200g", "Vermicelli Noodles": "200g", "Soy Sauce": "3 tbsp"},
		},
		{
			Name:          "Chicken and Leek Pie",
			Protein:       ProteinChicken,
			TimeConsuming: true,
			Ingredients:   map[string]string{"Chicken Thigh": "6", "Leek": "2", "Puff Pastry": "1 sheet", "Double Cream": "150ml"},
		},
		{
			Name:        "Chicken Fajitas",
			Protein:     ProteinChicken,
			Favourite:   true,
			Ingredients: map[string]string{"Chicken Breast": "3", "Tortilla Wraps": "8", "Red Pepper": "2", "Onion": "1"},
		},
		{
			Name:        "Chicken Piccata",
			Protein:     ProteinChicken,
			Ingredients: map[string]string{"Chicken Breast": "2", "Lemon": "1", "Capers": "2 tbsp", "Butter": "50g"},
		},
		{
			Name:        "Chicken Soup",
			Protein:     ProteinChicken,
			Ingredients: map[string]string{"Chicken Thigh": "4", "Carrot": "2", "Celery": "2 sticks", "Chicken Stock": "1.5l"},
		},
		{
			Name:        "Chilli Chicken Thighs with Cherry Tomatoes",
			Protein:     ProteinChicken,
			Ingredients: map[string]string{"Chicken Thigh": "6", "Cherry Tomatoes": "300g", "Red Chilli": "2", "Garlic": "3 cloves"},
		},
		{
			Name:        "Chilli con Carne",
			Protein:     ProteinBeef,
			Favourite:   true,
			Ingredients: map[string]string{"Beef Mince": "500g", "Kidney Beans": "1 can", "Chopped Tomatoes": "2 cans", "Rice": "300g"},
		},
		{
			Name:          "Curry Lentils in Crock Pot",
			TimeConsuming: true,
			Ingredients:   map[string]string{"Red Lentils": "300g", "Coconut Milk": "1 can", "Curry Powder": "2 tbsp", "Spinach": "200g"},
		},
		{
			Name:          "Fish Pie",
			Protein:       ProteinFish,
			TimeConsuming: true,
			Ingredients:   map[string]string{"Smoked Haddock": "300g", "Salmon Fillet": "200g", "Potato": "1kg", "Milk": "500ml"},
		},
		{
			Name:        "Honey-Garlic Salmon",
			Protein:     ProteinFish,
			Favourite:   true,
			Ingredients: map[string]string{"Salmon Fillet": "4", "Honey": "3 tbsp", "Garlic": "4 cloves", "Soy Sauce": "2 tbsp"},
		},
		{
			Name:          "Indian Lamb with Spiced Lentils",
			Protein:       ProteinLamb,
			TimeConsuming: true,
			Ingredients:   map[string]string{"Lamb Shoulder": "600g", "Red Lentils": "200g", "Garam Masala": "2 tbsp", "Yoghurt": "150g"},
		},
		{
			Name:        "Kedgeree",
			Protein:     ProteinFish,
			Ingredients: map[string]string{"Smoked Haddock": "400g", "Rice": "300g", "Eggs": "4", "Curry Powder": "1 tbsp"},
		},
		{
			Name:          "Lasagne",
			Protein:       ProteinBeef,
			Pasta:         true,
			TimeConsuming: true,
			Ingredients:   map[string]string{"Beef Mince": "500g", "Lasagne Sheets": "12", "Chopped Tomatoes": "2 cans", "Mature Cheddar": "200g"},
		},
		{
			Name:        "Lemon Leek Linguine",
			Pasta:       true,
			Ingredients: map[string]string{"Linguine": "400g", "Leek": "2", "Lemon": "1", "Parmesan": "60g"},
		},
		{
			Name:          "Moussaka",
			Protein:       ProteinLamb,
			TimeConsuming: true,
			Ingredients:   map[string]string{"Lamb Mince": "500g", "Aubergine": "2", "Chopped Tomatoes": "1 can", "Feta": "150g"},
		},
		{
			Name:        "Parmesan Crust Baked Chicken",
			Protein:     ProteinChicken,
			Ingredients: map[string]string{"Chicken Breast": "4", "Parmesan": "80g", "Breadcrumbs": "100g"},
		},
		{
			Name:        "Pasta with Chicken and Sundried Tomatoes",
			Protein:     ProteinChicken,
			Pasta:       true,
			Ingredients: map[string]string{"Penne": "400g", "Chicken Breast": "2", "Sundried Tomatoes": "150g", "Double Cream": "200ml"},
		},
		{
			Name:        "Pizza",
			Protein:     ProteinPork,
			Favourite:   true,
			Ingredients: map[string]string{"Pizza Base": "2", "Mozzarella": "250g", "Passata": "200ml", "Pepperoni": "80g"},
		},
		{
			Name:        "Quiche Lorraine",
			Protein:     ProteinPork,
			Ingredients: map[string]string{"Shortcrust Pastry": "1 sheet", "Bacon Lardons": "200g", "Eggs": "4", "Double Cream": "250ml"},
		},
		{
			Name:        "Roast Beef",
			Protein:     ProteinBeef,
			Roast:       true,
			Ingredients: map[string]string{"Beef Joint": "1.5kg", "Potato": "1kg", "Carrot": "4", "Yorkshire Puddings": "8"},
		},
		{
			Name:        "Roast Chicken",
			Protein:     ProteinChicken,
			Roast:       true,
			Favourite:   true,
			Ingredients: map[string]string{"Whole Chicken": "1", "Potato": "1kg", "Parsnip": "3", "Gravy Granules": "1 tub"},
		},
		{
			Name:        "Roast Lamb",
			Protein:     ProteinLamb,
			Roast:       true,
			Ingredients: map[string]string{"Lamb Leg": "1.5kg", "Potato": "1kg", "Rosemary": "1 bunch", "Mint Sauce": "1 jar"},
		},
		{
			Name:        "Roast Pork",
			Protein:     ProteinPork,
			Roast:       true,
			Ingredients: map[string]string{"Pork Shoulder": "1.5kg", "Potato": "1kg", "Apple Sauce": "1 jar", "Carrot": "4"},
		},
		{
			Name:        "Saag Paneer",
			Ingredients: map[string]string{"Paneer": "250g", "Spinach": "400g", "Garam Masala": "1 tbsp", "Rice": "300g"},
		},
		{
			Name:        "Shepherds Pie",
			Protein:     ProteinBeef,
			Ingredients: map[string]string{"Beef Mince": "500g", "Potato": "1kg", "Carrot": "2", "Beef Stock": "300ml"},
		},
		{
			Name:          "Slow Cooker Beef Bourguignon",
			Protein:       ProteinBeef,
			TimeConsuming: true,
			Ingredients:   map[string]string{"Stewing Beef": "750g", "Red Wine": "400ml", "Shallot": "8", "Mushrooms": "250g"},
		},
		{
			Name:          "Slow Cooker Chicken Tikka Masala",
			Protein:       ProteinChicken,
			Favourite:     true,
			TimeConsuming: true,
			Ingredients:   map[string]string{"Chicken Thigh": "8", "Tikka Paste": "3 tbsp", "Coconut Milk": "1 can", "Rice": "300g"},
		},
		{
			Name:        "Spaghetti Bolognese",
			Protein:     ProteinBeef,
			Pasta:       true,
			Favourite:   true,
			Ingredients: map[string]string{"Spaghetti": "400g", "Beef Mince": "500g", "Chopped Tomatoes": "2 cans", "Parmesan": "60g"},
		},
		{
			Name:        "Sticky Chinese Pork Belly",
			Protein:     ProteinPork,
			Ingredients: map[string]string{"Pork Belly": "600g", "Honey": "3 tbsp", "Soy Sauce": "4 tbsp", "Rice": "300g"},
		},
		{
			Name:        "Turkey Stuffed Peppers",
			Protein:     ProteinTurkey,
			Ingredients: map[string]string{"Turkey Mince": "500g", "Red Pepper": "4", "Rice": "200g", "Mature Cheddar": "100g"},
		},
		{
			Name:        "Turkey Sweet Potato Shepherds Pie",
			Protein:     ProteinTurkey,
			Ingredients: map[string]string{"Turkey Mince": "500g", "Sweet Potato": "800g", "Carrot": "2", "Chicken Stock": "300ml"},
		},
	}
}
