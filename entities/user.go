package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex" json:"username"`
	Email     string    `gorm:"type:varchar(64);uniqueIndex" json:"email"`
	FirstName string    `gorm:"type:varchar(64)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(64)" json:"last_name"`
	Password  string    `json:"-"`

	Recipes []Recipe `gorm:"foreignKey:AuthorID" json:"-"`
	Timestamp
}

// Follow is a directed subscription edge. Self-follows are rejected in the
// service layer and by a check constraint added during migration.
type Follow struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SubscriberID   uuid.UUID `gorm:"type:uuid;index:idx_follow_pair,unique" json:"subscriber_id"`
	SubscribedToID uuid.UUID `gorm:"type:uuid;index:idx_follow_pair,unique" json:"subscribed_to_id"`
	CreatedAt      time.Time `gorm:"type:timestamp" json:"created_at"`

	Subscriber   *User `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
	SubscribedTo *User `gorm:"foreignKey:SubscribedToID;constraint:OnDelete:CASCADE" json:"-"`
}
