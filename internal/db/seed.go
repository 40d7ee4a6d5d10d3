package db

import (
	"database/sql"
	"fmt"
	"log"
)

type seedCelebrity struct {
	name       string
	category   string
	address    string
	popularity int
}

// Curated directory entries inserted when the celebrities table is empty.
// Addresses are publicly listed fan-mail agencies.
var seedCelebrities = []seedCelebrity{
	{"Taylor Swift", "musicians", "Taylor Swift\n13 Management\n718 Thompson Lane\nSuite 108256\nNashville, TN 37204-3923", 100},
	{"Tom Hanks", "actors", "Tom Hanks\nPlaytone\n11812 W. Olympic Blvd.\nSuite 300\nLos Angeles, CA 90064", 95},
	{"Leonardo DiCaprio", "actors", "Leonardo DiCaprio\nAppian Way Productions\n9601 Wilshire Blvd.\n3rd Floor\nBeverly Hills, CA 90210", 90},
	{"Oprah Winfrey", "influencers", "Oprah Winfrey\nHarpo Productions\n1041 N. Formosa Ave.\nWest Hollywood, CA 90046", 88},
	{"Dwayne Johnson", "actors", "Dwayne Johnson\nSeven Bucks Productions\n9601 Wilshire Blvd.\n3rd Floor\nBeverly Hills, CA 90210", 92},
	{"Beyoncé", "musicians", "Beyoncé\nParkwood Entertainment\n1230 Avenue of the Americas\nSuite 2400\nNew York, NY 10020", 98},
	{"Robert Downey Jr.", "actors", "Robert Downey Jr.\nTeam Downey\n9601 Wilshire Blvd.\n3rd Floor\nBeverly Hills, CA 90210", 85},
	{"Serena Williams", "athletes", "Serena Williams\nWilliam Morris Endeavor\n9601 Wilshire Blvd.\nBeverly Hills, CA 90210", 80},
	{"Elon Musk", "influencers", "Elon Musk\nc/o Tesla, Inc.\n3500 Deer Creek Road\nPalo Alto, CA 94304", 95},
	{"Emma Watson", "actors", "Emma Watson\nWilliam Morris Endeavor\n9601 Wilshire Blvd.\nBeverly Hills, CA 90210", 82},
	{"Drake", "musicians", "Drake\nOVO Sound\n1815 Ironstone Manor\nPickering, ON L1W 3J9\nCanada", 88},
	{"Stephen King", "authors", "Stephen King\nP.O. Box 772\nBangor, ME 04402", 85},
	{"LeBron James", "athletes", "LeBron James\nKlutch Sports Group\n8228 Sunset Blvd.\nLos Angeles, CA 90046", 90},
	{"MrBeast", "influencers", "MrBeast\nMrBeast LLC\nP.O. Box 1058\nGreenville, NC 27835", 87},
	{"JK Rowling", "authors", "J.K. Rowling\nc/o Blair Partnership\nP.O. Box 77\nHaymarket House\nLondon SW1Y 4SP\nUnited Kingdom", 86},
}

// Seed populates the celebrity directory on first run. An already-populated
// database is left untouched.
func Seed(database *sql.DB) error {
	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM celebrities`).Scan(&count); err != nil {
		return fmt.Errorf("seed: count celebrities: %w", err)
	}
	if count > 0 {
		log.Println("[db] database already has", count, "celebrities")
		return nil
	}

	log.Println("[db] seeding database with initial celebrities...")
	for _, c := range seedCelebrities {
		_, err := database.Exec(
			`INSERT OR IGNORE INTO celebrities
			 (name, category, fanmail_address, verified, popularity_score, is_public, created_by_user_id, relationship_type)
			 VALUES (?, ?, ?, 1, ?, 1, NULL, NULL)`,
			c.name, c.category, c.address, c.popularity,
		)
		if err != nil {
			return fmt.Errorf("seed: insert %s: %w", c.name, err)
		}
	}
	log.Println("[db] database seeded with", len(seedCelebrities), "celebrities")
	return nil
}
