package services

import (
	"fmt"
	"log"

	"mls-listing-server/models"
)

// PopulateLocationDerived recomputes the derived location fields from
// their sources: display names from PSGC codes, township from
// barangay, estate from development. Lookup misses are cosmetic and
// never fail the write; the derived field is cleared and a warning is
// logged.
func PopulateLocationDerived(listing *models.Listing, lookup LocationLookup) {
	listing.CityName = ""
	if listing.CityCode != "" {
		if name, ok := lookup.CityNameByCode(listing.CityCode); ok {
			listing.CityName = name
		} else {
			log.Printf("⚠️ city name lookup miss for PSGC code %s", listing.CityCode)
		}
	}

	listing.BarangayName = ""
	if listing.BarangayCode != "" {
		if name, ok := lookup.BarangayNameByCode(listing.BarangayCode); ok {
			listing.BarangayName = name
		} else {
			log.Printf("⚠️ barangay name lookup miss for PSGC code %s", listing.BarangayCode)
		}
	}

	listing.TownshipID = nil
	if listing.BarangayCode != "" {
		township, err := lookup.TownshipForBarangay(listing.BarangayCode)
		if err != nil {
			log.Printf("⚠️ township lookup failed for barangay %s: %v", listing.BarangayCode, err)
		} else if township != nil {
			id := township.ID
			listing.TownshipID = &id
		}
	}

	listing.EstateID = nil
	if listing.DevelopmentID != nil {
		estate, err := lookup.EstateForDevelopment(*listing.DevelopmentID)
		if err != nil {
			log.Printf("⚠️ estate lookup failed for development %d: %v", *listing.DevelopmentID, err)
		} else if estate != nil {
			id := estate.ID
			listing.EstateID = &id
		}
	}
}

// ValidateLocationHierarchy confirms the selected development belongs
// to the selected barangay. On updates, fields missing from the
// candidate fall back to the stored listing. City -> barangay
// consistency is deliberately not checked here: barangay data is
// sourced live from the PSGC registry and only partially mirrored, so
// that pairing is enforced by the client UI only.
func ValidateLocationHierarchy(candidate, existing *models.Listing, lookup LocationLookup) error {
	barangayCode := candidate.BarangayCode
	if barangayCode == "" && existing != nil {
		barangayCode = existing.BarangayCode
	}

	developmentID := candidate.DevelopmentID
	if developmentID == nil && existing != nil {
		developmentID = existing.DevelopmentID
	}

	if barangayCode == "" || developmentID == nil {
		return nil
	}

	development, err := lookup.DevelopmentByID(*developmentID)
	if err != nil {
		if IsRecordNotFound(err) {
			return &LocationError{
				Message: fmt.Sprintf("invalid development %d", *developmentID),
			}
		}
		return err
	}

	if development.BarangayCode != barangayCode {
		return &LocationError{
			Development: development.Name,
			Message:     fmt.Sprintf("development %q does not belong to the selected barangay", development.Name),
		}
	}

	return nil
}
