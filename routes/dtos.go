package routes

type RegisterUserInput struct {
	FirstName   string `json:"firstName" validate:"required,max=256"`
	LastName    string `json:"lastName" validate:"required,max=256"`
	Email       string `json:"email" validate:"required,max=256,email"`
	Password    string `json:"password" validate:"required,min=8,max=256"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangeUserRoleInput struct {
	Role string `json:"role" validate:"required,oneof=agent approver admin"`
}

// CreateListingInput carries a new draft. Status is not accepted on
// creation; every listing starts as a draft.
type CreateListingInput struct {
	Title           string `json:"title" validate:"required,max=256"`
	Description     string `json:"description"`
	ListingType     string `json:"listingType" validate:"required,oneof=resale preselling"`
	TransactionType string `json:"transactionType" validate:"omitempty,oneof=for_sale for_rent"`

	Price        float64 `json:"price"`
	PricePerSqm  float64 `json:"pricePerSqm"`
	FloorAreaSqm float64 `json:"floorAreaSqm"`
	LotAreaSqm   float64 `json:"lotAreaSqm"`

	Furnishing           string `json:"furnishing"`
	ConstructionYear     int    `json:"constructionYear"`
	TitleStatus          string `json:"titleStatus"`
	PropertyOwnerName    string `json:"propertyOwnerName"`
	PropertyOwnerContact string `json:"propertyOwnerContact"`
	PropertyOwnerNotes   string `json:"propertyOwnerNotes"`

	ModelName          string  `json:"modelName"`
	IndicativePrice    float64 `json:"indicativePrice"`
	IndicativePriceMin float64 `json:"indicativePriceMin"`
	IndicativePriceMax float64 `json:"indicativePriceMax"`
	MinFloorArea       float64 `json:"minFloorArea"`
	MinLotArea         float64 `json:"minLotArea"`
	StandardInclusions string  `json:"standardInclusions"`
	PresellingNotes    string  `json:"presellingNotes"`

	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    float32 `json:"bathrooms"`
	ParkingSlots int     `json:"parkingSlots"`

	PropertyCategoryID uint `json:"propertyCategoryId"`
	PropertyTypeID     uint `json:"propertyTypeId"`
	PropertySubtypeID  uint `json:"propertySubtypeId"`

	CityCode      string `json:"cityCode"`
	BarangayCode  string `json:"barangayCode"`
	DevelopmentID uint   `json:"developmentId"`
}

// UpdateListingInput carries a full candidate document for an update.
// Status is the requested status; when it differs from the stored one
// the transition guard runs.
type UpdateListingInput struct {
	CreateListingInput
	Status string `json:"status" validate:"omitempty,oneof=draft submitted published needs_revision rejected"`
}

type UpdateListingStatusInput struct {
	Status  string `json:"status" validate:"required,oneof=draft submitted published needs_revision rejected"`
	Remarks string `json:"remarks"`
}

type CreateSharedLinkInput struct {
	Label   string            `json:"label" validate:"required,max=256"`
	Filters SharedLinkFilters `json:"filters"`
}

// SharedLinkFilters is the serialized filter set a shared link applies
// over published listings.
type SharedLinkFilters struct {
	ListingType        string  `json:"listingType,omitempty"`
	TransactionType    string  `json:"transactionType,omitempty"`
	PropertyCategoryID uint    `json:"propertyCategoryId,omitempty"`
	PropertyTypeID     uint    `json:"propertyTypeId,omitempty"`
	CityCode           string  `json:"cityCode,omitempty"`
	BarangayCode       string  `json:"barangayCode,omitempty"`
	DevelopmentID      uint    `json:"developmentId,omitempty"`
	PriceMin           float64 `json:"priceMin,omitempty"`
	PriceMax           float64 `json:"priceMax,omitempty"`
}
