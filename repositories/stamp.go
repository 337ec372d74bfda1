package repositories

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// now is replaced in tests.
var now = systemNow

func systemNow() time.Time { return time.Now().UTC() }

// stamp assigns a fresh ObjectID and, when unset, the creation date. The date
// is cut to milliseconds, the precision a BSON datetime keeps, so the record
// handed back to the caller matches the stored one.
func stamp(id *primitive.ObjectID, date *time.Time) {
	*id = primitive.NewObjectID()
	if date.IsZero() {
		*date = now()
	}
	*date = date.Truncate(time.Millisecond)
}
