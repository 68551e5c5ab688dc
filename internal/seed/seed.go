package seed

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"medingen-server/internal/models"
)

const (
	demoUsername = "admin"
	demoPassword = "password"
)

// Run populates the database with demo data on first startup. It is
// idempotent: when any user already exists nothing is written. If inserting
// the sample catalog fails, the insert is rolled back but the demo user is
// still guaranteed to exist.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect users table: %w", err)
	}
	if count > 0 {
		return nil
	}

	slog.Info("Seeding demo data", "user", demoUsername)

	user := models.User{Username: demoUsername}
	if err := user.SetPassword(demoPassword); err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	if err := seedCatalog(db, &user); err != nil {
		// The demo user was committed before the catalog transaction, so
		// login still works even when the sample data is lost.
		slog.Warn("Failed to seed sample catalog, demo user only", "error", err)
	}

	return nil
}

func seedCatalog(db *gorm.DB, user *models.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		rating := 4.3
		medicine := models.Medicine{
			Name:                "UDILIV 300MG TABLET 15'S",
			Description:         "UDILIV 300MG TABLET 15'S is a medication used to treat liver conditions. It contains ursodeoxycholic acid as its active ingredient. It has been used for several decades as a therapeutic agent to manage various liver disorders.",
			Usage:               "Helps in dissolving gallstones\nHelps in treating primary biliary cholangitis (PBC)\nAids in managing other cholestatic liver disorders\nAssists in preventing liver failure\nHelps in improving liver function",
			Mechanism:           "UDILIV 300MG TABLET 15'S replaces toxic bile acids with non-toxic ursodeoxycholic acid, which increases bile flow and reduces liver damage. Dosage depends on the condition being treated and patient characteristics. Always consult a healthcare professional.",
			SideEffects:         "Nausea, Abdominal discomfort, Diarrhea, Itching, Hair loss (rare)",
			Price:               36.00,
			Rating:              &rating,
			Manufacturer:        "Zydus Pharmaceuticals",
			ChemicalComposition: "Ursodeoxycholic Acid 300mg",
			ImageURL:            "/assets/tablet.jpg",
		}
		if err := tx.Create(&medicine).Error; err != nil {
			return err
		}

		for i := 0; i < 4; i++ {
			availability := "Available"
			if i%2 == 0 {
				availability = "In Stock"
			}
			discount := 15
			altRating := 4.3
			alternative := models.GenericAlternative{
				MedicineID:   medicine.ID,
				Name:         "Dolo 650 mg",
				Price:        36.00,
				Discount:     &discount,
				Rating:       &altRating,
				Manufacturer: "Micro Labs Limited",
				ImageURL:     "/images/dolo-650.jpg",
				Availability: availability,
			}
			if err := tx.Create(&alternative).Error; err != nil {
				return err
			}
		}

		for _, r := range []int{5, 3, 4, 5} {
			review := models.Review{
				MedicineID: medicine.ID,
				UserID:     &user.ID,
				Rating:     r,
				Comment:    "The medicine is good if a lot costly when compared with the exact generic medicine",
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
		}

		faqs := []models.FAQ{
			{
				Category: "Paracetamol",
				Question: "What is Paracetamol?",
				Answer:   "Paracetamol is a pain reliever and fever reducer. It is used to treat many conditions such as headache, muscle aches, arthritis, backache, toothaches, colds, and fevers.",
			},
			{
				Category: "Paracetamol",
				Question: "How often should I take Paracetamol?",
				Answer:   "Adults may take 500-1000 mg every 4-6 hours when needed, up to a maximum of 4000 mg per day. Children's doses vary based on age and weight. Always consult your doctor or follow the package instructions for the correct dosage.",
			},
			{
				Category: "Paracetamol",
				Question: "Is Paracetamol safe for children?",
				Answer:   "Paracetamol is generally considered safe for children when used at the recommended dose. However, always consult with a healthcare provider before giving any medication to children, especially those under 2 years of age.",
			},
			{
				Category: "Paracetamol",
				Question: "Can I take Paracetamol with other medicines?",
				Answer:   "Paracetamol can interact with certain medications, including those for liver disease, anti-seizure medications, and blood-thinning medications. Always inform your doctor about all medications you are taking before starting a new one.",
			},
			{
				Category: "Paracetamol",
				Question: "Can I take Paracetamol and Ibuprofen together?",
				Answer:   "Yes, it is generally safe to take paracetamol and ibuprofen together. They work in different ways to reduce pain and fever. However, always consult your doctor if you are not sure.",
			},
		}
		// General FAQs carry no medicine id so that category filtering
		// applies to them.
		for i := range faqs {
			if err := tx.Create(&faqs[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
