package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"mls-listing-server/models"
	"mls-listing-server/services"
	"mls-listing-server/storage"
)

// Syncs the local city/barangay mirror from the PSGC registry.
// Barangays are only synced for cities passed as arguments (the
// registry holds 42k barangays; mirroring all of them is deliberately
// avoided).
func main() {
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	psgc := services.NewPSGCClient(storage.Redis)

	cities, err := psgc.Cities()
	if err != nil {
		log.Fatalf("Error fetching cities from PSGC registry: %v", err)
	}

	for _, city := range cities {
		record := models.City{Code: city.Code, Name: city.Name}
		result := storage.DB.Where("code = ?", city.Code).FirstOrCreate(&record)
		if result.Error != nil {
			log.Printf("⚠️ failed to upsert city %s (%s): %v", city.Name, city.Code, result.Error)
			continue
		}
		if record.Name != city.Name {
			record.Name = city.Name
			storage.DB.Save(&record)
		}
	}
	fmt.Printf("Synced %d cities.\n", len(cities))

	// Optional per-city barangay sync
	for _, cityCode := range os.Args[1:] {
		barangays, err := psgc.CityBarangays(cityCode)
		if err != nil {
			log.Printf("⚠️ failed to fetch barangays for city %s: %v", cityCode, err)
			continue
		}
		for _, barangay := range barangays {
			record := models.Barangay{Code: barangay.Code, Name: barangay.Name, CityCode: cityCode}
			result := storage.DB.Where("code = ?", barangay.Code).FirstOrCreate(&record)
			if result.Error != nil {
				log.Printf("⚠️ failed to upsert barangay %s (%s): %v", barangay.Name, barangay.Code, result.Error)
			}
		}
		fmt.Printf("Synced %d barangays for city %s.\n", len(barangays), cityCode)
	}

	fmt.Println("PSGC sync completed successfully!")
}
