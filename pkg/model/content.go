package model

const (
	ServiceTypeSalon = "salon"
	ServiceTypeHome  = "home"
)

type Service struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title" validate:"required"`
	Description string `json:"description" bson:"description" validate:"required"`
	Image       string `json:"image" bson:"image" validate:"required"`
	Price       string `json:"price" bson:"price" validate:"required"`
	Order       int    `json:"order" bson:"order"`
	CreatedAt   string `json:"created_at" bson:"created_at"`
}

// ServiceUpdate carries only the fields present in the request body;
// nil fields are left untouched by the update.
type ServiceUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Price       *string `json:"price,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

func (u *ServiceUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Image == nil && u.Price == nil && u.Order == nil
}

type PriceItem struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Price string `json:"price" bson:"price" validate:"required"`
}

type PriceCategory struct {
	ID          string      `json:"id" bson:"id"`
	Category    string      `json:"category" bson:"category" validate:"required"`
	Items       []PriceItem `json:"items" bson:"items" validate:"required,min=1,dive"`
	Order       int         `json:"order" bson:"order"`
	ServiceType string      `json:"service_type" bson:"service_type,omitempty" validate:"omitempty,oneof=salon home"`
	CreatedAt   string      `json:"created_at" bson:"created_at"`
}

type Testimonial struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name" validate:"required"`
	Text      string `json:"text" bson:"text" validate:"required"`
	Rating    int    `json:"rating" bson:"rating" validate:"min=1,max=5"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}

type Promotion struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title" validate:"required"`
	Description string `json:"description" bson:"description" validate:"required"`
	Discount    string `json:"discount" bson:"discount" validate:"required"`
	Active      bool   `json:"active" bson:"active"`
	CreatedAt   string `json:"created_at" bson:"created_at"`
}

// PromotionUpsert is the request body for promotion writes. Active is a
// pointer so an omitted flag defaults to true while an explicit false
// still deactivates.
type PromotionUpsert struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Discount    string `json:"discount" validate:"required"`
	Active      *bool  `json:"active"`
}

func (u *PromotionUpsert) IsActive() bool {
	return u.Active == nil || *u.Active
}

type GalleryImage struct {
	ID        string `json:"id" bson:"id"`
	URL       string `json:"url" bson:"url" validate:"required"`
	Caption   string `json:"caption" bson:"caption"`
	Order     int    `json:"order" bson:"order"`
	CreatedAt string `json:"created_at" bson:"created_at"`
}
