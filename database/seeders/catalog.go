package seeders

import (
	"log"

	"homeservice-booking/models/catalog"
	"homeservice-booking/models/user"

	"gorm.io/gorm"
)

// SeedCatalog inserts a few demo providers and services for local
// development. Skipped when any service already exists.
func SeedCatalog(db *gorm.DB) {
	log.Printf("🔍 Checking catalog seed data...")

	var count int64
	if err := db.Model(&catalog.Service{}).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check catalog: %v", err)
		return
	}
	if count > 0 {
		log.Printf("✅ Catalog already seeded, skipping")
		return
	}

	providers := []struct {
		user     user.User
		provider catalog.Provider
		services []catalog.Service
	}{
		{
			user: user.User{Uuid: "seed-provider-sparkle", Name: "Sparkle Cleaning", Phone: "01700000001", Role: "provider"},
			provider: catalog.Provider{
				BusinessName:      "Sparkle Cleaning Co.",
				Phone:             "01700000001",
				CallingCharge:     2000, // 20.00
				CommissionPercent: 10,
			},
			services: []catalog.Service{
				{Name: "Deep Home Cleaning", Description: "Full apartment deep clean", Price: 10000, IsActive: true},
				{Name: "Sofa Shampoo", Description: "Per seat", Price: 3000, IsActive: true},
			},
		},
		{
			user: user.User{Uuid: "seed-provider-fixit", Name: "FixIt Plumbing", Phone: "01700000002", Role: "provider"},
			provider: catalog.Provider{
				BusinessName:      "FixIt Plumbing Services",
				Phone:             "01700000002",
				CallingCharge:     5000, // 50.00
				CommissionPercent: 12.5,
			},
			services: []catalog.Service{
				{Name: "Tap Repair", Description: "Per fixture", Price: 8000, IsActive: true},
				{Name: "Drain Unclogging", Description: "Kitchen or bathroom", Price: 12000, IsActive: true},
			},
		},
	}

	for _, seed := range providers {
		u := seed.user
		if err := db.Create(&u).Error; err != nil {
			log.Printf("❌ Failed to seed provider user %s: %v", u.Name, err)
			continue
		}

		p := seed.provider
		p.UserID = u.ID
		p.IsActive = true
		if err := db.Create(&p).Error; err != nil {
			log.Printf("❌ Failed to seed provider %s: %v", p.BusinessName, err)
			continue
		}

		for _, s := range seed.services {
			s.ProviderID = p.ID
			if err := db.Create(&s).Error; err != nil {
				log.Printf("❌ Failed to seed service %s: %v", s.Name, err)
			}
		}
	}

	log.Printf("✅ Catalog seed data inserted")
}
