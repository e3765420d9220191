package catalog

import "time"

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.Format(dateLayout)
}

func nullableID(value *int64) any {
	if value == nil {
		return nil
	}
	return *value
}
