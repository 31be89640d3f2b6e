package catalog

import "github.com/The-Batman-Code/laundry-service/domain"

var seedLaundryTypes = []domain.LaundryType{
	{ID: "regular", Name: "Regular Laundry", Price: 159.9, Description: "Wash, dry, and fold service for everyday clothes"},
	{ID: "bag", Name: "Laundry Bag", Price: 249.9, Description: "Fill a bag with as many clothes as possible (up to 10kg)"},
	{ID: "shoes", Name: "Shoes Cleaning", Price: 129.9, Description: "Professional cleaning for all types of shoes"},
	{ID: "blanket", Name: "Blanket/Comforter", Price: 199.9, Description: "Cleaning service for blankets, comforters, and duvets"},
	{ID: "dry_cleaning", Name: "Dry Cleaning", Price: 299.9, Description: "Professional dry cleaning for delicate fabrics"},
	{ID: "ironing", Name: "Ironing Service", Price: 149.9, Description: "Professional ironing service for your clothes"},
}

var seedPaymentMethods = []domain.PaymentMethod{
	{ID: "credit_card", Name: "Credit Card", Description: "Pay with Visa, Mastercard, or American Express"},
	{ID: "paypal", Name: "PayPal", Description: "Pay using your PayPal account"},
	{ID: "cash", Name: "Cash", Description: "Pay with cash on pickup"},
}

// serviceItems is the per-item price table, grouped under laundry types.
// Hand-authored reference data, never persisted.
var serviceItems = []domain.ServiceItem{
	{ID: "tshirt", LaundryTypeID: "regular", Name: "T-Shirt", Price: 25},
	{ID: "shirt", LaundryTypeID: "regular", Name: "Shirt", Price: 30},
	{ID: "pants", LaundryTypeID: "regular", Name: "Pants", Price: 35},
	{ID: "shorts", LaundryTypeID: "regular", Name: "Shorts", Price: 25},
	{ID: "dress", LaundryTypeID: "regular", Name: "Dress", Price: 50},
	{ID: "jacket", LaundryTypeID: "regular", Name: "Jacket", Price: 60},

	{ID: "small_bag", LaundryTypeID: "bag", Name: "Small Bag", Price: 150},
	{ID: "medium_bag", LaundryTypeID: "bag", Name: "Medium Bag", Price: 250},
	{ID: "large_bag", LaundryTypeID: "bag", Name: "Large Bag", Price: 350},

	{ID: "sneakers", LaundryTypeID: "shoes", Name: "Sneakers", Price: 130},
	{ID: "leather_shoes", LaundryTypeID: "shoes", Name: "Leather Shoes", Price: 180},
	{ID: "boots", LaundryTypeID: "shoes", Name: "Boots", Price: 200},

	{ID: "single_blanket", LaundryTypeID: "blanket", Name: "Single Blanket", Price: 200},
	{ID: "double_blanket", LaundryTypeID: "blanket", Name: "Double Blanket", Price: 250},
	{ID: "comforter", LaundryTypeID: "blanket", Name: "Comforter", Price: 300},

	{ID: "suit", LaundryTypeID: "dry_cleaning", Name: "Suit", Price: 300},
	{ID: "coat", LaundryTypeID: "dry_cleaning", Name: "Coat", Price: 350},
	{ID: "silk_dress", LaundryTypeID: "dry_cleaning", Name: "Silk Dress", Price: 280},
	{ID: "tie", LaundryTypeID: "dry_cleaning", Name: "Tie", Price: 80},

	{ID: "iron_shirt", LaundryTypeID: "ironing", Name: "Ironed Shirt", Price: 15},
	{ID: "iron_pants", LaundryTypeID: "ironing", Name: "Ironed Pants", Price: 20},
	{ID: "iron_dress", LaundryTypeID: "ironing", Name: "Ironed Dress", Price: 30},
}

// ServiceItems returns a copy of the full item table.
func ServiceItems() []domain.ServiceItem {
	out := make([]domain.ServiceItem, len(serviceItems))
	copy(out, serviceItems)
	return out
}

// ItemsForType returns the items grouped under one laundry type.
func ItemsForType(laundryTypeID string) []domain.ServiceItem {
	var out []domain.ServiceItem
	for _, item := range serviceItems {
		if item.LaundryTypeID == laundryTypeID {
			out = append(out, item)
		}
	}
	return out
}

// FindItem looks up one item by id. The boolean reports whether it exists.
func FindItem(itemID string) (domain.ServiceItem, bool) {
	for _, item := range serviceItems {
		if item.ID == itemID {
			return item, true
		}
	}
	return domain.ServiceItem{}, false
}
