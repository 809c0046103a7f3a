package mongostore

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Loaders write document numbers as strings or numbers depending on how the
// source spreadsheet typed the column.

// documentKey renders a string or numeric BSON value as a document key.
// Anything else yields "".
func documentKey(v bson.RawValue) string {
	if s, ok := v.StringValueOK(); ok {
		return strings.TrimSpace(s)
	}
	if n, ok := v.Int32OK(); ok {
		return strconv.FormatInt(int64(n), 10)
	}
	if n, ok := v.Int64OK(); ok {
		return strconv.FormatInt(n, 10)
	}
	if f, ok := v.DoubleOK(); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// documentFilter matches key as stored text and, when it is the canonical
// decimal form of a number, as a stored number of any BSON numeric type.
// "00123" only matches text, since a stored 123 reads back as "123".
func documentFilter(field, key string) bson.M {
	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != key {
		return bson.M{field: key}
	}
	return bson.M{field: bson.M{"$in": bson.A{key, n}}}
}

var movementDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// movementDate accepts BSON datetimes and the text layouts seen in the feed.
// It returns nil when the value is missing or unparseable.
func movementDate(v bson.RawValue) *time.Time {
	if ms, ok := v.DateTimeOK(); ok {
		t := time.UnixMilli(ms).UTC()
		return &t
	}
	s, ok := v.StringValueOK()
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range movementDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
