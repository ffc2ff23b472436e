package services

import "golang-storefront-backend/internal/models"

// SeedCatalog is the demo product set pushed to the store backend when its
// catalog comes back empty. Static data only; the loader owns the control
// flow around it.
var SeedCatalog = []models.Product{
	// Grocery & Staples
	{Title: "Basmati Rice 5kg", Price: 12.99, Category: "Grocery", InStock: true, Description: "Premium long-grain basmati rice"},
	{Title: "Sunflower Oil 1L", Price: 3.49, Category: "Grocery", InStock: true, Description: "Refined cooking oil"},
	{Title: "Toor Dal 1kg", Price: 2.99, Category: "Grocery", InStock: true, Description: "Protein-rich lentils"},
	{Title: "Whole Wheat Atta 5kg", Price: 6.99, Category: "Grocery", InStock: true, Description: "Stone-ground chapati flour"},
	{Title: "Sugar 2kg", Price: 2.49, Category: "Grocery", InStock: true, Description: "Fine granulated sugar"},

	// Dairy & Bakery
	{Title: "Milk 1L", Price: 1.19, Category: "Dairy", InStock: true, Description: "Toned milk"},
	{Title: "Yogurt 500g", Price: 1.49, Category: "Dairy", InStock: true, Description: "Thick and creamy curd"},
	{Title: "Brown Bread", Price: 1.29, Category: "Bakery", InStock: true, Description: "High-fiber sliced bread"},

	// Fruits & Vegetables
	{Title: "Bananas (6 pcs)", Price: 1.39, Category: "Fruits", InStock: true, Description: "Ripe and fresh"},
	{Title: "Apples 1kg", Price: 2.59, Category: "Fruits", InStock: true, Description: "Crisp red apples"},
	{Title: "Tomatoes 1kg", Price: 1.19, Category: "Vegetables", InStock: true, Description: "Juicy and ripe"},
	{Title: "Onions 1kg", Price: 0.99, Category: "Vegetables", InStock: true, Description: "Kitchen essential"},

	// Snacks & Beverages
	{Title: "Potato Chips 150g", Price: 1.49, Category: "Snacks", InStock: true, Description: "Classic salted chips"},
	{Title: "Chocolate Cookies 200g", Price: 1.99, Category: "Snacks", InStock: true, Description: "Choco-chip goodness"},
	{Title: "Green Tea 25 bags", Price: 2.29, Category: "Beverages", InStock: true, Description: "Antioxidant-rich tea"},
	{Title: "Instant Coffee 100g", Price: 3.99, Category: "Beverages", InStock: true, Description: "Rich and aromatic"},

	// Personal Care & Household
	{Title: "Toothpaste 150g", Price: 1.59, Category: "Personal Care", InStock: true, Description: "Fluoride protection"},
	{Title: "Shampoo 340ml", Price: 3.49, Category: "Personal Care", InStock: true, Description: "Soft and shiny hair"},
	{Title: "Detergent Powder 2kg", Price: 4.99, Category: "Household", InStock: true, Description: "Powerful stain removal"},
	{Title: "Dishwash Liquid 500ml", Price: 1.79, Category: "Household", InStock: true, Description: "Grease cutting formula"},

	// Packaged & Frozen
	{Title: "Pasta 500g", Price: 1.09, Category: "Packaged", InStock: true, Description: "Durum wheat pasta"},
	{Title: "Tomato Ketchup 1kg", Price: 2.39, Category: "Packaged", InStock: true, Description: "No added preservatives"},
	{Title: "Frozen Peas 500g", Price: 1.69, Category: "Frozen", InStock: true, Description: "Sweet garden peas"},
	{Title: "Ice Cream 1L (Vanilla)", Price: 3.49, Category: "Frozen", InStock: true, Description: "Classic vanilla treat"},
}
