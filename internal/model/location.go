package model

// State → District → Taluk → Village backs the cascading location selectors.
type State struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Code      string     `json:"code" gorm:"size:10;uniqueIndex"`
	Districts []District `json:"districts,omitempty" gorm:"foreignKey:StateID"`
}

type District struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	StateID uint    `json:"state_id" gorm:"index;not null"`
	Name    string  `json:"name" gorm:"size:100;not null"`
	Taluks  []Taluk `json:"taluks,omitempty" gorm:"foreignKey:DistrictID"`
}

type Taluk struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	DistrictID uint      `json:"district_id" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"size:100;not null"`
	Villages   []Village `json:"villages,omitempty" gorm:"foreignKey:TalukID"`
}

type Village struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TalukID uint   `json:"taluk_id" gorm:"index;not null"`
	Name    string `json:"name" gorm:"size:100;not null"`
}
