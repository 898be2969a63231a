package models

// Tier is the subscription level of a user.
type Tier string

const (
	TierFree    Tier = "free"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

type User struct {
	Base     `bson:",inline"`
	Email    string  `bson:"email" json:"email" validate:"required,email"`
	Name     *string `bson:"name" json:"name"`
	Language string  `bson:"language" json:"language" default:"es"`
	Tier     Tier    `bson:"tier" json:"tier" validate:"oneof=free pro premium" default:"free"`
}

// SubscriptionStatus is the billing state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

type Subscription struct {
	Base      `bson:",inline"`
	UserEmail string             `bson:"user_email" json:"user_email" validate:"required,email"`
	Tier      Tier               `bson:"tier" json:"tier" validate:"required,oneof=free pro premium"`
	Status    SubscriptionStatus `bson:"status" json:"status" validate:"oneof=active canceled past_due" default:"active"`
}
