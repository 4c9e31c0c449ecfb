package models

import (
	"gorm.io/gorm"
)

// Listing statuses
const (
	StatusDraft         = "draft"
	StatusSubmitted     = "submitted"
	StatusPublished     = "published"
	StatusNeedsRevision = "needs_revision"
	StatusRejected      = "rejected"
)

// Listing types
const (
	ListingTypeResale     = "resale"
	ListingTypePreselling = "preselling"
)

type Listing struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`

	// resale, preselling
	ListingType string `json:"listingType" gorm:"type:varchar(20);index"`
	// for_sale, for_rent
	TransactionType string `json:"transactionType" gorm:"type:varchar(20)"`
	// draft, submitted, published, needs_revision, rejected
	Status string `json:"status" gorm:"type:varchar(20);default:'draft';index"`

	// Resale pricing/area
	Price        float64 `json:"price"`
	PricePerSqm  float64 `json:"pricePerSqm"`
	FloorAreaSqm float64 `json:"floorAreaSqm"`
	LotAreaSqm   float64 `json:"lotAreaSqm"`

	// Resale-only details
	Furnishing           string `json:"furnishing" gorm:"type:varchar(50)"`
	ConstructionYear     int    `json:"constructionYear"`
	TitleStatus          string `json:"titleStatus" gorm:"type:varchar(50)"`
	PropertyOwnerName    string `json:"propertyOwnerName"`
	PropertyOwnerContact string `json:"propertyOwnerContact"`
	PropertyOwnerNotes   string `json:"propertyOwnerNotes" gorm:"type:text"`

	// Preselling pricing/area
	ModelName          string  `json:"modelName"`
	IndicativePrice    float64 `json:"indicativePrice"`
	IndicativePriceMin float64 `json:"indicativePriceMin"`
	IndicativePriceMax float64 `json:"indicativePriceMax"`
	MinFloorArea       float64 `json:"minFloorArea"`
	MinLotArea         float64 `json:"minLotArea"`
	StandardInclusions string  `json:"standardInclusions" gorm:"type:text"`
	PresellingNotes    string  `json:"presellingNotes" gorm:"type:text"`

	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    float32 `json:"bathrooms"`
	ParkingSlots int     `json:"parkingSlots"`

	// Classification hierarchy
	PropertyCategoryID *uint             `json:"propertyCategoryId" gorm:"column:property_category_id"`
	PropertyTypeID     *uint             `json:"propertyTypeId" gorm:"column:property_type_id"`
	PropertySubtypeID  *uint             `json:"propertySubtypeId" gorm:"column:property_subtype_id"`
	PropertyCategory   *PropertyCategory `json:"propertyCategory,omitempty" gorm:"foreignKey:PropertyCategoryID"`
	PropertyType       *PropertyType     `json:"propertyType,omitempty" gorm:"foreignKey:PropertyTypeID"`
	PropertySubtype    *PropertySubtype  `json:"propertySubtype,omitempty" gorm:"foreignKey:PropertySubtypeID"`

	// Location; city and barangay hold PSGC geographic codes, not local ids
	CityCode      string `json:"cityCode" gorm:"type:varchar(10);index"`
	BarangayCode  string `json:"barangayCode" gorm:"type:varchar(10);index"`
	DevelopmentID *uint  `json:"developmentId" gorm:"column:development_id"`

	Development *Development `json:"development,omitempty" gorm:"foreignKey:DevelopmentID"`

	// Derived location fields, recomputed on every write; never user-editable
	CityName     string `json:"cityName"`
	BarangayName string `json:"barangayName"`
	TownshipID   *uint  `json:"townshipId" gorm:"column:township_id"`
	EstateID     *uint  `json:"estateId" gorm:"column:estate_id"`

	CreatedByID uint  `json:"createdById"`
	CreatedBy   *User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID;references:ID"`
}
