package services

import (
	"fmt"
	"strings"

	"mls-listing-server/models"
)

// ValidateListingTypeFields enforces the two disjoint field sets of
// resale and preselling listings: each type's required fields must be
// present and no field of the opposite type may carry a value. All
// violations found are reported together.
func ValidateListingTypeFields(listing *models.Listing, lookup RefLookup) error {
	var errs FieldErrors

	switch listing.ListingType {
	case models.ListingTypePreselling:
		errs = validatePresellingFields(listing)
	case models.ListingTypeResale:
		errs = validateResaleFields(listing, lookup)
	default:
		// unset listing type on a partial draft; nothing to enforce
		return nil
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePresellingFields(listing *models.Listing) FieldErrors {
	var errs FieldErrors

	if listing.DevelopmentID == nil {
		errs = append(errs, FieldError{Field: "development", Reason: "required for preselling listings"})
	}
	if listing.ModelName == "" {
		errs = append(errs, FieldError{Field: "modelName", Reason: "required for preselling listings"})
	}

	hasSingle := listing.IndicativePrice > 0
	hasRange := listing.IndicativePriceMin > 0 && listing.IndicativePriceMax > 0
	if !hasSingle && !hasRange {
		errs = append(errs, FieldError{
			Field:  "indicativePrice",
			Reason: "an indicative price or a full min/max price range is required",
		})
	}
	if listing.IndicativePriceMin > 0 && listing.IndicativePriceMax > 0 &&
		listing.IndicativePriceMin > listing.IndicativePriceMax {
		errs = append(errs, FieldError{
			Field:  "indicativePriceMin",
			Reason: "minimum indicative price exceeds the maximum",
		})
	}

	if listing.MinLotArea <= 0 && listing.MinFloorArea <= 0 {
		errs = append(errs, FieldError{
			Field:  "minLotArea",
			Reason: "a minimum lot area or minimum floor area is required",
		})
	}

	if forbidden := resaleOnlyFieldsSet(listing); len(forbidden) > 0 {
		errs = append(errs, FieldError{
			Reason: "resale-only fields are not allowed on preselling listings: " + strings.Join(forbidden, ", "),
		})
	}

	return errs
}

func validateResaleFields(listing *models.Listing, lookup RefLookup) FieldErrors {
	var errs FieldErrors

	if listing.Price <= 0 {
		errs = append(errs, FieldError{Field: "price", Reason: "required for resale listings"})
	}

	// Lot-based property types must state the lot area.
	if listing.PropertyTypeID != nil {
		if propertyType, err := lookup.PropertyTypeByID(*listing.PropertyTypeID); err == nil {
			name := strings.ToLower(propertyType.Name)
			if (strings.Contains(name, "lot") || strings.Contains(name, "land")) && listing.LotAreaSqm <= 0 {
				errs = append(errs, FieldError{
					Field:  "lotAreaSqm",
					Reason: fmt.Sprintf("required for %q listings", propertyType.Name),
				})
			}
		}
	}

	if forbidden := presellingOnlyFieldsSet(listing); len(forbidden) > 0 {
		errs = append(errs, FieldError{
			Reason: "preselling-only fields are not allowed on resale listings: " + strings.Join(forbidden, ", "),
		})
	}

	return errs
}

// resaleOnlyFieldsSet returns the names of resale-only fields carrying
// a value.
func resaleOnlyFieldsSet(listing *models.Listing) []string {
	var fields []string
	if listing.Price != 0 {
		fields = append(fields, "price")
	}
	if listing.PricePerSqm != 0 {
		fields = append(fields, "pricePerSqm")
	}
	if listing.FloorAreaSqm != 0 {
		fields = append(fields, "floorAreaSqm")
	}
	if listing.LotAreaSqm != 0 {
		fields = append(fields, "lotAreaSqm")
	}
	if listing.Furnishing != "" {
		fields = append(fields, "furnishing")
	}
	if listing.ConstructionYear != 0 {
		fields = append(fields, "constructionYear")
	}
	if listing.TitleStatus != "" {
		fields = append(fields, "titleStatus")
	}
	if listing.PropertyOwnerName != "" {
		fields = append(fields, "propertyOwnerName")
	}
	if listing.PropertyOwnerContact != "" {
		fields = append(fields, "propertyOwnerContact")
	}
	if listing.PropertyOwnerNotes != "" {
		fields = append(fields, "propertyOwnerNotes")
	}
	return fields
}

// presellingOnlyFieldsSet returns the names of preselling-only fields
// carrying a value.
func presellingOnlyFieldsSet(listing *models.Listing) []string {
	var fields []string
	if listing.ModelName != "" {
		fields = append(fields, "modelName")
	}
	if listing.IndicativePrice != 0 {
		fields = append(fields, "indicativePrice")
	}
	if listing.IndicativePriceMin != 0 {
		fields = append(fields, "indicativePriceMin")
	}
	if listing.IndicativePriceMax != 0 {
		fields = append(fields, "indicativePriceMax")
	}
	if listing.MinLotArea != 0 {
		fields = append(fields, "minLotArea")
	}
	if listing.MinFloorArea != 0 {
		fields = append(fields, "minFloorArea")
	}
	if listing.StandardInclusions != "" {
		fields = append(fields, "standardInclusions")
	}
	if listing.PresellingNotes != "" {
		fields = append(fields, "presellingNotes")
	}
	return fields
}
