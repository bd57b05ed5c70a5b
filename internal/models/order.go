// internal/models/order.go
package models

// Order rows are written exclusively by the queue consumer, never
// synchronously from a client request. Under at-least-once delivery a
// redelivered message may materialize twice; there is no dedup key.
type Order struct {
	BaseModel
	ClientEmail string `json:"client_email" gorm:"size:255;not null;index"`
	Price       int    `json:"price" gorm:"not null"`
	Items       string `json:"items" gorm:"type:text;not null"`
}
