package services

import (
	"encoding/json"
	"errors"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"mls-listing-server/models"
)

// RefLookup resolves classification references. Validators take it as
// an explicit dependency instead of reaching for a global connection.
type RefLookup interface {
	PropertyCategoryByID(id uint) (*models.PropertyCategory, error)
	PropertyTypeByID(id uint) (*models.PropertyType, error)
	PropertySubtypeByID(id uint) (*models.PropertySubtype, error)
}

// LocationLookup resolves geographic references. City and barangay are
// keyed by PSGC code; developments, townships and estates by local id.
type LocationLookup interface {
	CityNameByCode(code string) (string, bool)
	BarangayNameByCode(code string) (string, bool)
	DevelopmentByID(id uint) (*models.Development, error)
	TownshipForBarangay(code string) (*models.Township, error)
	EstateForDevelopment(developmentID uint) (*models.Estate, error)
}

// GormLookup backs both lookup interfaces with the relational store.
type GormLookup struct {
	db   *gorm.DB
	psgc *PSGCClient
}

// NewGormLookup creates a lookup over db. psgc may be nil; when set it
// serves as fallback for city/barangay names missing from the local
// mirror.
func NewGormLookup(db *gorm.DB, psgc *PSGCClient) *GormLookup {
	return &GormLookup{db: db, psgc: psgc}
}

func (l *GormLookup) PropertyCategoryByID(id uint) (*models.PropertyCategory, error) {
	var category models.PropertyCategory
	if err := l.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (l *GormLookup) PropertyTypeByID(id uint) (*models.PropertyType, error) {
	var propertyType models.PropertyType
	if err := l.db.First(&propertyType, id).Error; err != nil {
		return nil, err
	}
	return &propertyType, nil
}

func (l *GormLookup) PropertySubtypeByID(id uint) (*models.PropertySubtype, error) {
	var subtype models.PropertySubtype
	if err := l.db.First(&subtype, id).Error; err != nil {
		return nil, err
	}
	return &subtype, nil
}

func (l *GormLookup) CityNameByCode(code string) (string, bool) {
	var city models.City
	if err := l.db.Where("code = ?", code).First(&city).Error; err == nil {
		return city.Name, true
	}
	if l.psgc != nil {
		if name, err := l.psgc.CityName(code); err == nil && name != "" {
			return name, true
		}
	}
	return "", false
}

func (l *GormLookup) BarangayNameByCode(code string) (string, bool) {
	var barangay models.Barangay
	if err := l.db.Where("code = ?", code).First(&barangay).Error; err == nil {
		return barangay.Name, true
	}
	if l.psgc != nil {
		if name, err := l.psgc.BarangayName(code); err == nil && name != "" {
			return name, true
		}
	}
	return "", false
}

func (l *GormLookup) DevelopmentByID(id uint) (*models.Development, error) {
	var development models.Development
	if err := l.db.First(&development, id).Error; err != nil {
		return nil, err
	}
	return &development, nil
}

func (l *GormLookup) TownshipForBarangay(code string) (*models.Township, error) {
	var townships []models.Township
	if err := l.db.Find(&townships).Error; err != nil {
		return nil, err
	}
	for i := range townships {
		var codes []string
		if townships[i].BarangayCodes == nil {
			continue
		}
		if err := json.Unmarshal(townships[i].BarangayCodes, &codes); err != nil {
			continue
		}
		if slices.Contains(codes, code) {
			return &townships[i], nil
		}
	}
	return nil, nil
}

func (l *GormLookup) EstateForDevelopment(developmentID uint) (*models.Estate, error) {
	var estates []models.Estate
	if err := l.db.Find(&estates).Error; err != nil {
		return nil, err
	}
	for i := range estates {
		var ids []uint
		if estates[i].DevelopmentIDs == nil {
			continue
		}
		if err := json.Unmarshal(estates[i].DevelopmentIDs, &ids); err != nil {
			continue
		}
		if slices.Contains(ids, developmentID) {
			return &estates[i], nil
		}
	}
	return nil, nil
}

// IsRecordNotFound reports whether err is the store's not-found error.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
