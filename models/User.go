package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User roles
const (
	RoleAgent    = "agent"
	RoleApprover = "approver"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email" gorm:"uniqueIndex"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"-"`
	AvatarURL   string `json:"avatarURL"`

	// agent, approver, admin
	Role     string `json:"role" gorm:"type:varchar(20);default:agent;index"`
	IsActive *bool  `json:"isActive" gorm:"default:true;index"`

	LicenseNumber string `json:"licenseNumber"`

	Listings []Listing `json:"listings" gorm:"foreignKey:CreatedByID;references:ID"`

	SavedListings       datatypes.JSON `json:"savedListings"`
	AllowsNotifications *bool          `json:"allowsNotifications"`
}

// Custom JSON marshaling so the jsonb column comes out as an array
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		SavedListings []int `json:"savedListings,omitempty"`
		*Alias
	}{
		SavedListings: []int{},
		Alias:         (*Alias)(u),
	}

	if u.SavedListings != nil {
		var saved []int
		if err := json.Unmarshal(u.SavedListings, &saved); err == nil {
			aux.SavedListings = saved
		}
	}

	// Listings are excluded here to prevent circular references
	return json.Marshal(aux)
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
