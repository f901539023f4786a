package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Saad200724/ZnPOS/internal/apierror"
)

// mapFindErr normalizes driver errors from single-document reads. A missing
// document and a tenant-mismatched one both come back as ErrNoDocuments, so
// the two are indistinguishable to callers.
func mapFindErr(err error, notFoundDetail string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apierror.NotFound(notFoundDetail)
	}
	return apierror.StoreUnavailable(err)
}
