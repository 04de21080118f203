package model

import "time"

// TimeSlot is one entry of the consultation calendar: a bookable half-hour
// slot on a given date.
type TimeSlot struct {
	Date time.Time `json:"data" gorm:"column:data;primaryKey;type:date"`
	Time string    `json:"hora" gorm:"column:hora;primaryKey;type:time"`
}

func (TimeSlot) TableName() string {
	return "tempo"
}
