package utils

import "errors"

var (
	ErrorRecordNotFound  = errors.New("record not found")
	ErrorAlreadyResolved = errors.New("alert already resolved")
	ErrorInvalidInput    = errors.New("invalid input")
)

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
