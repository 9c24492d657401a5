package models

import "time"

// CartItem is an add-to-cart request. The cart itself lives with the client.
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=999"`
}

// ContactMessage is a submission of the contact page form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"omitempty,max=30"`
	Subject   string    `json:"subject" validate:"required,min=5,max=150"`
	Message   string    `json:"message" validate:"required,min=10,max=5000"`
	CreatedAt time.Time `json:"created_at"`
}

// NewsletterSignup is a newsletter subscription from the blog page.
type NewsletterSignup struct {
	Email string `json:"email" validate:"required,email"`
}

// Event is the envelope published to the storefront events queue.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

const (
	EventCartItemAdded        = "cart.item_added"
	EventContactSubmitted     = "contact.submitted"
	EventNewsletterSubscribed = "newsletter.subscribed"
)
