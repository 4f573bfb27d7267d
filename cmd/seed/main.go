// Command seed creates a demo database with sample businesses, boats,
// customers and rentals.
// Usage: go run cmd/seed/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/selin-bardakci/waveriders/internal/config"
	"github.com/selin-bardakci/waveriders/internal/database"
	"github.com/selin-bardakci/waveriders/internal/entities"
)

const defaultDemoDatabasePath = "./demo/waveriders.db"

const demoPassword = "demo1234"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(config.Database{
		Driver: config.DriverSQLite,
		Path:   *dbPath,
	})
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	customers := seedCustomers(db, string(hash))
	businesses := seedBusinesses(db, string(hash))
	boats := seedBoats(db, businesses)
	seedRentals(db, customers, boats)
	seedFavorites(db, customers, boats)

	log.Printf("Demo database ready. All accounts use password %q.", demoPassword)
}

func seedCustomers(db *database.Database, passwordHash string) []entities.User {
	customers := []entities.User{
		{
			FirstName:   strptr("Ada"),
			LastName:    strptr("Korkmaz"),
			Email:       "ada@example.com",
			PhoneNumber: "+905551000001",
			DateOfBirth: "1995-03-14",
		},
		{
			FirstName:   strptr("Mert"),
			LastName:    strptr("Aydin"),
			Email:       "mert@example.com",
			PhoneNumber: "+905551000002",
			DateOfBirth: "1990-11-02",
		},
	}

	for i := range customers {
		customers[i].Password = passwordHash
		customers[i].AccountType = entities.AccountTypeCustomer
		if err := db.DB.Create(&customers[i]).Error; err != nil {
			log.Fatalf("Failed to seed customer %s: %v", customers[i].Email, err)
		}
		log.Printf("Saved customer: %s", customers[i].Email)
	}
	return customers
}

func seedBusinesses(db *database.Database, passwordHash string) []entities.Business {
	owners := []struct {
		email    string
		phone    string
		business string
	}{
		{"marina@example.com", "+905552000001", "Marina Charters"},
		{"aegean@example.com", "+905552000002", "Aegean Sails"},
	}

	businesses := make([]entities.Business, 0, len(owners))
	for _, o := range owners {
		user := entities.User{
			Email:       o.email,
			Password:    passwordHash,
			PhoneNumber: o.phone,
			DateOfBirth: "0000-00-00",
			AccountType: entities.AccountTypeBusiness,
		}
		if err := db.DB.Create(&user).Error; err != nil {
			log.Fatalf("Failed to seed business owner %s: %v", o.email, err)
		}

		name := o.business
		business := entities.Business{UserID: user.ID, BusinessName: &name}
		if err := db.DB.Create(&business).Error; err != nil {
			log.Fatalf("Failed to seed business %s: %v", o.business, err)
		}
		log.Printf("Saved business: %s", o.business)
		businesses = append(businesses, business)
	}
	return businesses
}

func seedBoats(db *database.Database, businesses []entities.Business) []entities.Boat {
	dayPrice := 1800.0
	boats := []entities.Boat{
		{
			BusinessID:   businesses[0].ID,
			BoatName:     "Sea Breeze",
			Description:  "Comfortable motorboat for day trips along the coast.",
			TripTypes:    "short,day",
			PricePerHour: 250,
			PricePerDay:  &dayPrice,
			Capacity:     8,
			BoatType:     "motorboat",
			Location:     "Bodrum",
			Available:    true,
			Photos:       `[]`,
		},
		{
			BusinessID:   businesses[0].ID,
			BoatName:     "Sunset Chaser",
			Description:  "Sailboat ideal for sunrise and sunset cruises.",
			TripTypes:    "sunrise,overnight",
			PricePerHour: 180,
			Capacity:     6,
			BoatType:     "sailboat",
			Location:     "Bodrum",
			Available:    true,
			Photos:       `[]`,
		},
		{
			BusinessID:   businesses[1].ID,
			BoatName:     "Meltemi",
			Description:  "Classic gulet for overnight blue voyages.",
			TripTypes:    "day,overnight",
			PricePerHour: 400,
			Capacity:     12,
			BoatType:     "gulet",
			Location:     "Fethiye",
			Available:    true,
			Photos:       `[]`,
		},
	}

	for i := range boats {
		if err := db.DB.Create(&boats[i]).Error; err != nil {
			log.Fatalf("Failed to seed boat %s: %v", boats[i].BoatName, err)
		}
		log.Printf("Saved boat: %s (%s)", boats[i].BoatName, boats[i].Location)
	}
	return boats
}

func seedRentals(db *database.Database, customers []entities.User, boats []entities.Boat) {
	base := time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour)
	rentals := []entities.Rental{
		{
			CustomerID:  customers[0].ID,
			BoatID:      boats[0].ID,
			StartDate:   base,
			EndDate:     base.AddDate(0, 0, 2),
			RentalPrice: 3600,
			Status:      entities.RentalStatusCompleted,
		},
		{
			CustomerID:  customers[1].ID,
			BoatID:      boats[2].ID,
			StartDate:   base.AddDate(0, 0, 7),
			EndDate:     base.AddDate(0, 0, 10),
			RentalPrice: 9600,
			Status:      entities.RentalStatusCompleted,
		},
	}

	for i := range rentals {
		if err := db.DB.Create(&rentals[i]).Error; err != nil {
			log.Fatalf("Failed to seed rental: %v", err)
		}
	}
	log.Printf("Saved %d rentals", len(rentals))
}

func seedFavorites(db *database.Database, customers []entities.User, boats []entities.Boat) {
	favorites := []entities.Favorite{
		{UserID: customers[0].ID, BoatID: boats[1].ID},
		{UserID: customers[1].ID, BoatID: boats[0].ID},
	}

	for i := range favorites {
		if err := db.DB.Create(&favorites[i]).Error; err != nil {
			log.Fatalf("Failed to seed favorite: %v", err)
		}
	}
	log.Printf("Saved %d favorites", len(favorites))
}

func strptr(s string) *string {
	return &s
}
