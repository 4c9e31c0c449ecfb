package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// City mirrors a PSGC city/municipality record. Code is the PSGC
// geographic code, which listings reference instead of the local id.
type City struct {
	gorm.Model
	Code     string `json:"code" gorm:"type:varchar(10);uniqueIndex"`
	Name     string `json:"name"`
	Province string `json:"province"`
	Region   string `json:"region"`
}

// Barangay mirrors a PSGC barangay record. The mirror is partial:
// barangays are synced on demand, so a listing may carry a barangay
// code with no local row.
type Barangay struct {
	gorm.Model
	Code     string `json:"code" gorm:"type:varchar(10);uniqueIndex"`
	Name     string `json:"name"`
	CityCode string `json:"cityCode" gorm:"type:varchar(10);index"`
}

type Development struct {
	gorm.Model
	Name         string `json:"name"`
	Developer    string `json:"developer"`
	BarangayCode string `json:"barangayCode" gorm:"type:varchar(10);index"`
	IsActive     *bool  `json:"isActive" gorm:"default:true"`
}

// Township is a market-defined grouping spanning one or more
// barangays. BarangayCodes is a jsonb array of PSGC codes.
type Township struct {
	gorm.Model
	Name          string         `json:"name"`
	BarangayCodes datatypes.JSON `json:"barangayCodes"`
}

// Estate groups developments under one master-planned estate.
// DevelopmentIDs is a jsonb array of development ids.
type Estate struct {
	gorm.Model
	Name           string         `json:"name"`
	DevelopmentIDs datatypes.JSON `json:"developmentIds"`
}
