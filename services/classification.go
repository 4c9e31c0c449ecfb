package services

import (
	"fmt"

	"mls-listing-server/models"
)

// ValidateClassification verifies the category -> type -> subtype
// hierarchy on the candidate listing: the resolved parent of each
// selection must match the sibling selection. Absent fields are
// skipped so partial drafts can be saved.
func ValidateClassification(listing *models.Listing, lookup RefLookup) error {
	if listing.PropertyTypeID != nil && listing.PropertyCategoryID != nil {
		propertyType, err := lookup.PropertyTypeByID(*listing.PropertyTypeID)
		if err != nil {
			return &ClassificationError{
				Message: fmt.Sprintf("property type %d could not be resolved", *listing.PropertyTypeID),
			}
		}
		if propertyType.PropertyCategoryID == nil {
			return &ClassificationError{
				Message: fmt.Sprintf("property type %q has no parent category", propertyType.Name),
			}
		}
		if *propertyType.PropertyCategoryID != *listing.PropertyCategoryID {
			return &ClassificationError{
				Message: fmt.Sprintf(
					"property type %q belongs to category %q, not the selected category %q",
					propertyType.Name,
					categoryName(lookup, *propertyType.PropertyCategoryID),
					categoryName(lookup, *listing.PropertyCategoryID),
				),
			}
		}
	}

	if listing.PropertySubtypeID != nil && listing.PropertyTypeID != nil {
		subtype, err := lookup.PropertySubtypeByID(*listing.PropertySubtypeID)
		if err != nil {
			return &ClassificationError{
				Message: fmt.Sprintf("property subtype %d could not be resolved", *listing.PropertySubtypeID),
			}
		}
		if subtype.PropertyTypeID == nil {
			return &ClassificationError{
				Message: fmt.Sprintf("property subtype %q has no parent type", subtype.Name),
			}
		}
		if *subtype.PropertyTypeID != *listing.PropertyTypeID {
			return &ClassificationError{
				Message: fmt.Sprintf(
					"property subtype %q belongs to type %q, not the selected type %q",
					subtype.Name,
					typeName(lookup, *subtype.PropertyTypeID),
					typeName(lookup, *listing.PropertyTypeID),
				),
			}
		}
	}

	return nil
}

func categoryName(lookup RefLookup, id uint) string {
	if category, err := lookup.PropertyCategoryByID(id); err == nil {
		return category.Name
	}
	return fmt.Sprintf("#%d", id)
}

func typeName(lookup RefLookup, id uint) string {
	if propertyType, err := lookup.PropertyTypeByID(id); err == nil {
		return propertyType.Name
	}
	return fmt.Sprintf("#%d", id)
}
