package numberutils

import (
	"strconv"
)

// ToPositiveInt64 converts the given string to an int64 greater than zero.
// It returns an error when the string is not a number or the number is not positive.
func ToPositiveInt64(str string) (int64, error) {
	value, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, err
	}
	if !IsInt64Positive(value) {
		return 0, strconv.ErrRange
	}
	return value, nil
}

// IsInt64Positive checks if the given int64 is positive.
func IsInt64Positive(number int64) bool {
	return number > 0
}
