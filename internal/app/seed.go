package app

import (
	"github.com/Areeb006/FAJR/internal/api/apitest"
	"github.com/Areeb006/FAJR/internal/domain"
)

// Demo account credentials created by Seed.
const (
	DemoEmail    = "demo@fajr.example"
	DemoPassword = "demo123"
)

type productDef struct {
	title       string
	gender      string
	price       float64
	description string
	volume      string
	longevity   string
}

var demoProducts = []productDef{
	{"Oud Al Layl", "For Him", 2499, "Smoked oud over dark rose and saffron.", "100ml", "10-12 hours"},
	{"Noor", "For Her", 1899, "Jasmine and white musk with a citrus opening.", "50ml", "6-8 hours"},
	{"Sandal Mist", "Unisex", 1499, "Creamy sandalwood and cardamom.", "100ml", "8 hours"},
	{"Amber Dusk", "men", 2199, "Warm amber, tonka and vetiver.", "75ml", "10 hours"},
	{"Rose Attar", "women", 2799, "Taif rose distilled into sandalwood oil.", "12ml", "12 hours"},
	{"Citrus Dawn", "", 999, "Bergamot, neroli and green tea.", "50ml", "4 hours"},
}

// Seed fills a demo backend with a small perfume catalogue, one customer
// account with addresses, and a couple of orders.
func Seed(b *apitest.Backend) {
	products := make([]domain.Product, 0, len(demoProducts))
	for _, p := range demoProducts {
		products = append(products, domain.Product{
			Title:       p.title,
			Category:    "Perfume",
			Gender:      p.gender,
			Price:       p.price,
			Description: p.description,
			Volume:      p.volume,
			Longevity:   p.longevity,
		})
	}
	b.SeedProducts(products...)

	demo := domain.User{
		FirstName: "Demo",
		LastName:  "Customer",
		Email:     DemoEmail,
		Phone:     "9000000000",
		Gender:    "other",
	}
	userID := b.SeedUser(demo, DemoPassword)
	b.SeedAddresses(userID, domain.Address{
		Title:         "Home",
		Name:          "Demo Customer",
		StreetAddress: "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		PostalCode:    "560001",
		Country:       "India",
		Phone:         "9000000000",
		IsDefault:     true,
	})

	b.SeedOrders(
		domain.Order{
			UserID:        userID,
			UserName:      "Demo Customer",
			UserEmail:     DemoEmail,
			TotalAmount:   4398,
			PaymentMethod: "cod",
			Status:        domain.OrderShipped,
			Items: []domain.OrderItem{
				{ProductTitle: "Oud Al Layl", Quantity: 1, Price: 2499},
				{ProductTitle: "Noor", Quantity: 1, Price: 1899},
			},
		},
		domain.Order{
			UserID:        userID,
			UserName:      "Demo Customer",
			UserEmail:     DemoEmail,
			TotalAmount:   1499,
			PaymentMethod: "upi",
			Items:         []domain.OrderItem{{ProductTitle: "Sandal Mist", Quantity: 1, Price: 1499}},
		},
	)
}
