package model

// Counter is one document per entity namespace, the source of monotonic ids.
// The namespace doubles as the Mongo _id so the increment-and-read is a single
// atomic operation on one document.
type Counter struct {
	Namespace string `bson:"_id" json:"namespace"`
	Seq       int64  `bson:"seq" json:"seq"`
}
