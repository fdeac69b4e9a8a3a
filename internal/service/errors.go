package service

import "errors"

var (
	// ErrValidation входные данные не прошли проверку
	ErrValidation = errors.New("validation failed")
	// ErrInvalidImport файл резервной копии не содержит students и lessons
	ErrInvalidImport = errors.New("invalid backup file")

	ErrStudentNotFound = errors.New("student not found")
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrTodoNotFound    = errors.New("todo not found")
	ErrEmptyTodo       = errors.New("todo text is empty")

	ErrPassphraseTooShort = errors.New("passphrase is too short")
	ErrPassphraseExists   = errors.New("passphrase already set")
	ErrNoPassphrase       = errors.New("passphrase is not set")
)
