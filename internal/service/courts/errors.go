package courts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("courts: invalid input data")

	// ErrCourtNotFound возвращается, когда корт не принадлежит клубу
	ErrCourtNotFound = errors.New("courts: court not found in club")
)
