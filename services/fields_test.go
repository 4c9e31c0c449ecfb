package services

import (
	"strings"
	"testing"

	"mls-listing-server/models"
)

func fieldsLookup() *fakeRefLookup {
	lookup := newFakeRefLookup()
	lookup.addCategory(1, "Residential")
	lookup.addType(10, "Condominium", uintPtr(1))
	lookup.addType(20, "Residential Lot", uintPtr(1))
	lookup.addType(21, "Raw Land", uintPtr(1))
	return lookup
}

func validPreselling() *models.Listing {
	return &models.Listing{
		ListingType:     models.ListingTypePreselling,
		ModelName:       "Tower A - 1BR Deluxe",
		DevelopmentID:   uintPtr(5),
		IndicativePrice: 4_500_000,
		MinFloorArea:    28,
	}
}

func validResale() *models.Listing {
	return &models.Listing{
		ListingType:    models.ListingTypeResale,
		PropertyTypeID: uintPtr(10),
		Price:          7_200_000,
		FloorAreaSqm:   45,
	}
}

func TestPresellingValidListingPasses(t *testing.T) {
	if err := ValidateListingTypeFields(validPreselling(), fieldsLookup()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestPresellingPriceRangeAccepted(t *testing.T) {
	listing := validPreselling()
	listing.IndicativePrice = 0
	listing.IndicativePriceMin = 4_000_000
	listing.IndicativePriceMax = 5_500_000
	if err := ValidateListingTypeFields(listing, fieldsLookup()); err != nil {
		t.Fatalf("expected success with full range, got %v", err)
	}
}

func TestPresellingMissingRequiredFields(t *testing.T) {
	listing := &models.Listing{ListingType: models.ListingTypePreselling}
	err := ValidateListingTypeFields(listing, fieldsLookup())
	if err == nil {
		t.Fatal("expected rejection")
	}
	fieldErrs, ok := err.(FieldErrors)
	if !ok {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	msg := fieldErrs.Error()
	for _, want := range []string{"development", "modelName", "indicativePrice", "minLotArea"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestPresellingInvertedPriceRange(t *testing.T) {
	listing := validPreselling()
	listing.IndicativePrice = 0
	listing.IndicativePriceMin = 6_000_000
	listing.IndicativePriceMax = 5_000_000
	err := ValidateListingTypeFields(listing, fieldsLookup())
	if err == nil {
		t.Fatal("expected rejection for min > max")
	}
	if !strings.Contains(err.Error(), "indicativePriceMin") {
		t.Errorf("expected range violation in %q", err.Error())
	}
}

func TestPresellingForbidsResaleFields(t *testing.T) {
	listing := validPreselling()
	listing.Price = 1_000_000
	listing.Furnishing = "semi-furnished"
	listing.PropertyOwnerName = "Juan dela Cruz"

	err := ValidateListingTypeFields(listing, fieldsLookup())
	if err == nil {
		t.Fatal("expected rejection for resale-only fields")
	}
	msg := err.Error()
	for _, want := range []string{"price", "furnishing", "propertyOwnerName"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected violating field %q reported in %q", want, msg)
		}
	}
}

func TestResaleValidListingPasses(t *testing.T) {
	if err := ValidateListingTypeFields(validResale(), fieldsLookup()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestResaleRequiresPrice(t *testing.T) {
	listing := validResale()
	listing.Price = 0
	err := ValidateListingTypeFields(listing, fieldsLookup())
	if err == nil {
		t.Fatal("expected rejection for missing price")
	}
	if !strings.Contains(err.Error(), "price") {
		t.Errorf("expected price violation in %q", err.Error())
	}
}

func TestResaleLotTypeRequiresLotArea(t *testing.T) {
	for _, typeID := range []uint{20, 21} { // "Residential Lot", "Raw Land"
		listing := validResale()
		listing.PropertyTypeID = uintPtr(typeID)
		listing.LotAreaSqm = 0

		err := ValidateListingTypeFields(listing, fieldsLookup())
		if err == nil {
			t.Fatalf("type %d: expected rejection for missing lot area", typeID)
		}
		if !strings.Contains(err.Error(), "lotAreaSqm") {
			t.Errorf("type %d: expected lotAreaSqm violation in %q", typeID, err.Error())
		}

		listing.LotAreaSqm = 120
		if err := ValidateListingTypeFields(listing, fieldsLookup()); err != nil {
			t.Errorf("type %d: expected success with lot area set, got %v", typeID, err)
		}
	}
}

func TestResaleForbidsPresellingFields(t *testing.T) {
	listing := validResale()
	listing.ModelName = "Tower B"
	listing.IndicativePriceMin = 1
	listing.StandardInclusions = "tiles, fixtures"

	err := ValidateListingTypeFields(listing, fieldsLookup())
	if err == nil {
		t.Fatal("expected rejection for preselling-only fields")
	}
	msg := err.Error()
	for _, want := range []string{"modelName", "indicativePriceMin", "standardInclusions"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected violating field %q reported in %q", want, msg)
		}
	}
}

func TestUnsetListingTypeSkipsFieldChecks(t *testing.T) {
	listing := &models.Listing{Title: "bare draft"}
	if err := ValidateListingTypeFields(listing, fieldsLookup()); err != nil {
		t.Fatalf("expected success for draft without listing type, got %v", err)
	}
}
