package models

import "gorm.io/gorm"

// PropertyCategory is the top of the three-level classification
// hierarchy: category -> type -> subtype.
type PropertyCategory struct {
	gorm.Model
	Name      string `json:"name" gorm:"uniqueIndex"`
	IsActive  *bool  `json:"isActive" gorm:"default:true"`
	SortOrder int    `json:"sortOrder" gorm:"default:0"`

	Types []PropertyType `json:"types,omitempty" gorm:"foreignKey:PropertyCategoryID"`
}

type PropertyType struct {
	gorm.Model
	Name      string `json:"name" gorm:"index"`
	IsActive  *bool  `json:"isActive" gorm:"default:true"`
	SortOrder int    `json:"sortOrder" gorm:"default:0"`

	PropertyCategoryID *uint             `json:"propertyCategoryId" gorm:"column:property_category_id"`
	PropertyCategory   *PropertyCategory `json:"propertyCategory,omitempty" gorm:"foreignKey:PropertyCategoryID"`

	Subtypes []PropertySubtype `json:"subtypes,omitempty" gorm:"foreignKey:PropertyTypeID"`
}

type PropertySubtype struct {
	gorm.Model
	Name      string `json:"name" gorm:"index"`
	IsActive  *bool  `json:"isActive" gorm:"default:true"`
	SortOrder int    `json:"sortOrder" gorm:"default:0"`

	PropertyTypeID *uint         `json:"propertyTypeId" gorm:"column:property_type_id"`
	PropertyType   *PropertyType `json:"propertyType,omitempty" gorm:"foreignKey:PropertyTypeID"`
}
