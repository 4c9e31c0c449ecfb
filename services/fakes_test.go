package services

import (
	"gorm.io/gorm"

	"mls-listing-server/models"
)

// In-memory lookup fakes so validator tests run without a database.

type fakeRefLookup struct {
	categories map[uint]*models.PropertyCategory
	types      map[uint]*models.PropertyType
	subtypes   map[uint]*models.PropertySubtype
}

func newFakeRefLookup() *fakeRefLookup {
	return &fakeRefLookup{
		categories: map[uint]*models.PropertyCategory{},
		types:      map[uint]*models.PropertyType{},
		subtypes:   map[uint]*models.PropertySubtype{},
	}
}

func (f *fakeRefLookup) addCategory(id uint, name string) {
	category := &models.PropertyCategory{Name: name}
	category.ID = id
	f.categories[id] = category
}

func (f *fakeRefLookup) addType(id uint, name string, categoryID *uint) {
	propertyType := &models.PropertyType{Name: name, PropertyCategoryID: categoryID}
	propertyType.ID = id
	f.types[id] = propertyType
}

func (f *fakeRefLookup) addSubtype(id uint, name string, typeID *uint) {
	subtype := &models.PropertySubtype{Name: name, PropertyTypeID: typeID}
	subtype.ID = id
	f.subtypes[id] = subtype
}

func (f *fakeRefLookup) PropertyCategoryByID(id uint) (*models.PropertyCategory, error) {
	if category, ok := f.categories[id]; ok {
		return category, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefLookup) PropertyTypeByID(id uint) (*models.PropertyType, error) {
	if propertyType, ok := f.types[id]; ok {
		return propertyType, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefLookup) PropertySubtypeByID(id uint) (*models.PropertySubtype, error) {
	if subtype, ok := f.subtypes[id]; ok {
		return subtype, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeLocationLookup struct {
	cityNames     map[string]string
	barangayNames map[string]string
	developments  map[uint]*models.Development
	townships     map[string]*models.Township
	estates       map[uint]*models.Estate
}

func newFakeLocationLookup() *fakeLocationLookup {
	return &fakeLocationLookup{
		cityNames:     map[string]string{},
		barangayNames: map[string]string{},
		developments:  map[uint]*models.Development{},
		townships:     map[string]*models.Township{},
		estates:       map[uint]*models.Estate{},
	}
}

func (f *fakeLocationLookup) addDevelopment(id uint, name, barangayCode string) {
	development := &models.Development{Name: name, BarangayCode: barangayCode}
	development.ID = id
	f.developments[id] = development
}

func (f *fakeLocationLookup) addTownship(id uint, name string, barangayCodes ...string) {
	township := &models.Township{Name: name}
	township.ID = id
	for _, code := range barangayCodes {
		f.townships[code] = township
	}
}

func (f *fakeLocationLookup) addEstate(id uint, name string, developmentIDs ...uint) {
	estate := &models.Estate{Name: name}
	estate.ID = id
	for _, developmentID := range developmentIDs {
		f.estates[developmentID] = estate
	}
}

func (f *fakeLocationLookup) CityNameByCode(code string) (string, bool) {
	name, ok := f.cityNames[code]
	return name, ok
}

func (f *fakeLocationLookup) BarangayNameByCode(code string) (string, bool) {
	name, ok := f.barangayNames[code]
	return name, ok
}

func (f *fakeLocationLookup) DevelopmentByID(id uint) (*models.Development, error) {
	if development, ok := f.developments[id]; ok {
		return development, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLocationLookup) TownshipForBarangay(code string) (*models.Township, error) {
	return f.townships[code], nil
}

func (f *fakeLocationLookup) EstateForDevelopment(developmentID uint) (*models.Estate, error) {
	return f.estates[developmentID], nil
}

type fakeNotificationStore struct {
	created   []models.Notification
	failNext  bool
	reviewers []models.User
	users     map[uint]*models.User
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{users: map[uint]*models.User{}}
}

func (f *fakeNotificationStore) addUser(id uint, firstName, lastName, role string, active bool) {
	user := models.User{FirstName: firstName, LastName: lastName, Role: role, IsActive: &active}
	user.ID = id
	f.users[id] = &user
	if active && (role == models.RoleApprover || role == models.RoleAdmin) {
		f.reviewers = append(f.reviewers, user)
	}
}

func (f *fakeNotificationStore) CreateNotification(n *models.Notification) error {
	if f.failNext {
		f.failNext = false
		return gorm.ErrInvalidData
	}
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotificationStore) ActiveReviewers() ([]models.User, error) {
	return f.reviewers, nil
}

func (f *fakeNotificationStore) UserByID(id uint) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func uintPtr(v uint) *uint { return &v }
