package model

type Customer struct {
	TenantDoc     `bson:",inline"`
	FirstName     string  `bson:"firstName" json:"firstName"`
	LastName      string  `bson:"lastName" json:"lastName"`
	Email         string  `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string  `bson:"phone,omitempty" json:"phone,omitempty"`
	LoyaltyPoints int     `bson:"loyaltyPoints" json:"loyaltyPoints"`
	TotalSpent    float64 `bson:"totalSpent" json:"totalSpent"`
}
