package create_recurring_event

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь не администратор клуба
	ErrAccessDenied = errors.New("create_recurring_event: only club admins can create recurring events")

	// ErrCourtNotFound возвращается, когда корт не принадлежит клубу администратора
	ErrCourtNotFound = errors.New("create_recurring_event: court not found in club")
)
