package domain

import "time"

// Listing is a rentable property with a daily price.
type Listing struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;not null;check:chk_listings_title,length(title) > 0" json:"title"`
	Location    string    `gorm:"column:location;not null;check:chk_listings_location,length(location) > 0" json:"location"`
	PricePerDay float64   `gorm:"column:price_per_day;not null;check:chk_listings_price,price_per_day > 0" json:"price_per_day"`
	HostName    string    `gorm:"column:host_name;not null;check:chk_listings_host,length(host_name) > 0" json:"host_name"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Listing) TableName() string {
	return "Listings"
}
