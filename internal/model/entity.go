package model

import "time"

// Doc carries the allocator-assigned identifier and creation timestamp shared
// by every persisted entity. The integer id is independent of Mongo's _id.
type Doc struct {
	ID        int64     `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (d *Doc) SetID(id int64)           { d.ID = id }
func (d *Doc) SetCreatedAt(t time.Time) { d.CreatedAt = t }

// TenantDoc is embedded by every entity that lives inside a business scope.
type TenantDoc struct {
	Doc        `bson:",inline"`
	BusinessID int64 `bson:"businessId" json:"businessId"`
}

func (t *TenantDoc) SetBusinessID(id int64) { t.BusinessID = id }
