package model

// Business is the tenant root, created once at registration. TaxRate is a
// percentage (8.25 = 8.25%).
type Business struct {
	Doc      `bson:",inline"`
	Name     string  `bson:"name" json:"name"`
	Email    string  `bson:"email" json:"email"`
	Phone    string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Address  string  `bson:"address,omitempty" json:"address,omitempty"`
	TaxRate  float64 `bson:"taxRate" json:"taxRate"`
	Currency string  `bson:"currency" json:"currency"`
}
