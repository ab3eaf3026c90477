package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrUserExists возвращается при занятом username или email
	ErrUserExists = errors.New("users.service: username or email already taken")

	// ErrWeakPassword возвращается, когда пароль не проходит политику
	ErrWeakPassword = errors.New("users.service: password does not meet requirements")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users.service: internal error")
)
